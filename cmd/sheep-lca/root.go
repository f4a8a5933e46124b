package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/sheep-lca/internal/coefficients"
	"github.com/rshade/sheep-lca/internal/config"
)

// app carries state shared by the subcommands once the root command has
// loaded the configuration.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	country    string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "sheep-lca",
		Short: "Life cycle emissions of sheep farms.",
		Long: `sheep-lca computes enteric and manure methane, direct and indirect
nitrous oxide, soil and upstream CO2, eutrophication (PO4e) and ammonia
emissions for sheep farms, using country-specific coefficient tables.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&a.country, "country", "", "coefficient country (overrides config and environment)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "console", "log format: console or json")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newTablesCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// setup loads configuration and builds the logger. Flags take precedence
// over the environment, which takes precedence over the config file.
func (a *app) setup(cmd *cobra.Command) error {
	bootstrap := a.newLogger(zerolog.WarnLevel)

	cfg, err := config.Load(a.configPath, bootstrap)
	if err != nil {
		return err
	}
	if a.country != "" {
		cfg.Country = strings.ToLower(a.country)
	}
	if a.logLevel != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(a.logLevel))
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
		}
		cfg.LogLevel = lvl.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = a.newLogger(cfg.Level()).With().Str("command", cmd.Name()).Logger()
	coefficients.SetLogger(a.logger)
	return nil
}

func (a *app) newLogger(level zerolog.Level) zerolog.Logger {
	var w io.Writer = a.stderr
	if a.logFormat != "json" {
		w = zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
