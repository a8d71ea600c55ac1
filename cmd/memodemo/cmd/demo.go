package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-drift/memodemo/internal/app"
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/engine"
	"github.com/go-drift/memodemo/pkg/widgets"
)

func newDemoCommand(opts *options) *cobra.Command {
	var clicks int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Tap both counters and report Card builds",
		Long: `Tap each counter --clicks times, then print the final frame and how
many times each Card was built or skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clicks < 0 {
				return fmt.Errorf("--clicks must not be negative (got %d)", clicks)
			}
			s, err := opts.start(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := runDemo(s.engine, clicks); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", s.engine.LastFrame())
			fmt.Fprintf(out, "after %d clicks per counter:\n", clicks)
			writeCardStats(out, s.engine)
			return nil
		},
	}
	cmd.Flags().IntVar(&clicks, "clicks", 3, "Number of taps on each counter")
	return cmd
}

// runDemo taps both counters clicks times, painting after every tap.
func runDemo(e *engine.Engine, clicks int) error {
	if _, err := e.Frame(); err != nil {
		return err
	}
	targets := [][]engine.Matcher{
		{engine.MatchType[app.Parent](), engine.MatchType[widgets.Button]()},
		{engine.MatchType[app.ParentOptimized](), engine.MatchType[widgets.Button]()},
	}
	for range clicks {
		for _, target := range targets {
			if err := e.Tap(target...); err != nil {
				return err
			}
			if _, err := e.Frame(); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeCardStats prints build and skip counts for each parent's Card.
func writeCardStats(out io.Writer, e *engine.Engine) {
	stats := e.Stats()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "variant\tcard builds\tskipped")
	for _, variant := range []string{app.VariantUnoptimized, app.VariantOptimized} {
		name := core.WidgetName(app.Card{ID: variant})
		fmt.Fprintf(w, "%s\t%d\t%d\n", variant, stats.Builds[name], stats.Skips[name])
	}
	_ = w.Flush()
}
