package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphbench/config"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	stderr io.Writer

	// persistent flags
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphbench",
		Short: "Generate benchmark graphs and aggregate solver results",
		Long: `graphbench produces graph instances of well-known families in the
"N M" + edge-lines format and folds per-run solver result records into one
tab-separated report.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "text|json|auto (overrides config)")

	root.AddCommand(a.generateCmd(), a.aggregateCmd())

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.Log.Level) // validated above
	a.cfg = cfg
	a.log = newLogger(a.stderr, level, cfg.Log.Format)
	a.log.Debug("configuration loaded", "path", a.configPath, "results_root", cfg.ResultsRoot, "inputs_root", cfg.InputsRoot)

	return nil
}

// logger is the configured logger, or a stderr text logger when setup
// never ran (flag errors, bad config).
func (a *app) logger() *slog.Logger {
	if a.log != nil {
		return a.log
	}

	return newLogger(a.stderr, slog.LevelInfo, config.LogFormatText)
}
