// Package cli builds the cobra commands behind the ascii, errno and signal
// binaries.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lookup/internal/config"
	"lookup/internal/logging"
	"lookup/internal/ui"
)

// Version is stamped at build time with -ldflags "-X lookup/internal/cli.Version=...".
var Version = "dev"

// options holds the flags every tool shares plus the tool-specific ones.
type options struct {
	configPath string
	verbose    bool
	simple     bool
	list       bool
	noColor    bool

	libc    bool // errno, signal
	status  bool // signal
	digit   bool // ascii
	unicode bool // ascii
}

// env is what a command needs once flags, config and logger are settled.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	styles ui.Styles
}

type runFunc func(cmd *cobra.Command, args []string, e *env) error

// newCommand wires the shared flags and the config/logger lifecycle around run.
func newCommand(base *cobra.Command, opts *options, run runFunc) *cobra.Command {
	var e env

	base.Version = Version
	base.Args = cobra.ArbitraryArgs
	base.SilenceUsage = true
	base.SilenceErrors = true

	base.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path := opts.configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlagOverrides(cmd, opts, cfg)

		logger, err := logging.NewWithWriter(cfg.Logging, opts.verbose, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.For(logger, logging.CategoryConfig).Debug("config loaded",
			zap.String("path", path),
			zap.Bool("simple", cfg.Output.Simple),
			zap.String("description_source", cfg.Description.Source),
			zap.Int("description_width", cfg.Output.DescriptionWidth))

		if cfg.Output.NoColor {
			ui.DisableColor()
		}

		e = env{cfg: cfg, logger: logger, styles: ui.DefaultStyles()}
		return nil
	}
	base.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if e.logger != nil {
			_ = e.logger.Sync()
		}
	}
	base.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, &e)
	}

	flags := base.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $LOOKUP_CONFIG or <user config dir>/lookup/config.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.BoolVar(&opts.simple, "simple", false, "Disable pretty-printing")
	flags.BoolVarP(&opts.list, "list", "l", false, "List all entries")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors and bold text")

	return base
}

// applyFlagOverrides lets explicitly set flags win over file and environment.
func applyFlagOverrides(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("simple") {
		cfg.Output.Simple = opts.simple
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = opts.noColor
	}
	if flags.Changed("libc") {
		if opts.libc {
			cfg.Description.Source = config.SourceLibc
		} else {
			cfg.Description.Source = config.SourceManPages
		}
	}
}

// Execute runs cmd, printing any error to stderr and exiting 1.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
