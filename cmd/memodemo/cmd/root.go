// Package cmd implements the memodemo CLI commands.
//
// The root command carries the flags shared by every subcommand and
// resolves them against memodemo.yaml before a subcommand starts the
// engine.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/memodemo/internal/app"
	"github.com/go-drift/memodemo/internal/config"
	"github.com/go-drift/memodemo/pkg/diagnostics"
	"github.com/go-drift/memodemo/pkg/engine"
	"github.com/go-drift/memodemo/pkg/errors"
	"github.com/go-drift/memodemo/pkg/widgets"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// options holds the persistent flags.
type options struct {
	configPath string
	logLevel   string
	width      int
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "memodemo",
		Short: "Compare a card rendered with and without memoization",
		Long: `memodemo renders two counters, each above a Card.

The first parent (最適化前) creates new card data and a new click handler on
every build, so its Card rebuilds on every tap. The second (最適化後)
memoizes both, so its Card builds once. Card builds are logged to stderr.`,
		Version:      Version,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to memodemo.yaml (default: memodemo.yaml in the project root)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides log.level)")
	flags.IntVar(&opts.width, "width", 0, "Frame width in columns (overrides render.width)")

	root.AddCommand(newRunCommand(opts), newDemoCommand(opts), newVersionCommand())
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate(fmt.Sprintf("memodemo version %s (built %s)\n", Version, BuildTime))
	return root
}

// resolve loads configuration and applies flag overrides.
func (o *options) resolve() (*config.Resolved, error) {
	var (
		cfg *config.Resolved
		err error
	)
	if o.configPath != "" {
		cfg, err = config.ResolveFile(o.configPath)
	} else {
		var dir string
		if dir, err = config.FindProjectRoot(); err == nil {
			cfg, err = config.Resolve(dir)
		}
	}
	if err != nil {
		return nil, err
	}

	if o.logLevel != "" {
		if _, err := diagnostics.ParseLevel(o.logLevel); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = o.logLevel
	}
	if o.width != 0 {
		if err := config.ValidateWidth(o.width); err != nil {
			return nil, fmt.Errorf("--width: %w", err)
		}
		cfg.Width = o.width
	}
	return cfg, nil
}

// session is an engine running the demo with a configured logger.
type session struct {
	cfg     *config.Resolved
	logger  *zap.Logger
	engine  *engine.Engine
	restore func()
}

// start resolves configuration, installs the logger and error handler,
// and mounts the demo. With frames set, every painted frame is written
// to the command's stdout.
func (o *options) start(cmd *cobra.Command, frames bool) (*session, error) {
	cfg, err := o.resolve()
	if err != nil {
		return nil, err
	}

	logger, err := diagnostics.NewLogger(diagnostics.Config{
		Level:  cfg.LogLevel,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	logger = logger.Named(cfg.AppName)
	restore := diagnostics.ReplaceGlobals(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: cfg.LogLevel == "debug"})

	engineOpts := engine.Options{
		Width:  float64(cfg.Width) * widgets.CellWidth(),
		Logger: logger,
	}
	if frames {
		engineOpts.Output = cmd.OutOrStdout()
	}
	root := app.Root{Content: app.CardData{Title: cfg.CardTitle, Description: cfg.CardDescription}}

	logger.Debug("starting",
		zap.String("config", cfg.Root),
		zap.Int("width", cfg.Width),
	)
	return &session{
		cfg:     cfg,
		logger:  logger,
		engine:  engine.New(root, engineOpts),
		restore: restore,
	}, nil
}

func (s *session) Close() {
	s.engine.Close()
	_ = s.logger.Sync()
	errors.SetHandler(nil)
	s.restore()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the memodemo version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "memodemo version %s (built %s)\n", Version, BuildTime)
		},
	}
}
