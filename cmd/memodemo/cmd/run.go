package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/memodemo/internal/app"
	"github.com/go-drift/memodemo/pkg/engine"
	"github.com/go-drift/memodemo/pkg/widgets"
)

const runHelp = `commands:
  1   tap the 最適化前 counter
  2   tap the 最適化後 counter
  c1  tap the 最適化前 card
  c2  tap the 最適化後 card
  s   print Card build statistics
  q   quit`

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the demo interactively",
		Long: `Run the demo, reading one command per line from stdin and printing a
frame after every change.

` + runHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.start(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fmt.Fprintln(cmd.ErrOrStderr(), runHelp)
			events := make(chan engine.Event)
			go readCommands(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), s, events)

			err = s.engine.Run(ctx, events)
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
}

// readCommands turns stdin lines into engine events until quit, EOF or
// ctx ends. It closes events when done. Output is produced by the events
// themselves, so only the UI thread writes to out.
func readCommands(ctx context.Context, in io.Reader, out io.Writer, s *session, events chan<- engine.Event) {
	defer close(events)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			return
		}
		ev := parseCommand(line, s, out)
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func parseCommand(line string, s *session, out io.Writer) engine.Event {
	switch line {
	case "1":
		return engine.TapEvent(engine.MatchType[app.Parent](), engine.MatchType[widgets.Button]())
	case "2":
		return engine.TapEvent(engine.MatchType[app.ParentOptimized](), engine.MatchType[widgets.Button]())
	case "c1":
		return engine.TapEvent(engine.MatchKey(app.VariantUnoptimized))
	case "c2":
		return engine.TapEvent(engine.MatchKey(app.VariantOptimized))
	case "s", "stats":
		return engine.Event{Do: func() { writeCardStats(out, s.engine) }}
	}
	return engine.Event{Do: func() {
		fmt.Fprintf(out, "unknown command %q\n%s\n", line, runHelp)
	}}
}
