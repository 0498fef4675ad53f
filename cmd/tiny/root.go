package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tiny/interpreter-go/pkg/driver"
)

func newRootCommand(app *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "tiny [source]",
		Short: "Tiny language interpreter",
		Long: `tiny runs programs written in the Tiny language: variable declarations,
assignment, unsigned integer arithmetic and the print builtin.

A source is a file path, "-" for standard input, or a git reference of the
form git+<url>#<path>[@<rev>]. "tiny <source>" is shorthand for "tiny run <source>".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.configure()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return app.runSource(cmd.Context(), args[0])
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "config file (default: nearest tiny.yml, tiny.yaml or tiny.toml)")
	flags.StringVar(&app.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	flags.BoolVar(&app.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newRunCommand(app),
		newCheckCommand(app),
		newTokensCommand(app),
		newASTCommand(app),
		newBuiltinsCommand(app),
		newTestCommand(app),
		newVersionCommand(app),
	)
	return root
}

// configure loads the config and sets up logging and colours. Flags win over
// config values.
func (app *cli) configure() error {
	cfg, err := driver.ResolveConfig(app.configPath, "")
	if err != nil {
		return err
	}
	if app.logLevel != "" {
		if _, err := driver.ParseLogLevel(app.logLevel); err != nil {
			return err
		}
		cfg.LogLevel = app.logLevel
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.logger, app.runID = newLogger(app.stderr, level)
	app.palette = newPalette(app.colorEnabled())
	if cfg.Path != "" {
		app.logger.Debug("config loaded", "path", cfg.Path)
	}
	return nil
}

func (app *cli) colorEnabled() bool {
	if app.noColor {
		return false
	}
	switch app.cfg.Color {
	case driver.ColorAlways:
		return true
	case driver.ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

func newVersionCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tiny version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(app.stdout, "tiny %s\n", cliToolVersion)
			return err
		},
	}
}
