package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lemoi18/Text-Normalizer-norwegian/internal/config"
	"github.com/lemoi18/Text-Normalizer-norwegian/internal/logger"
)

// flagPaths maps command line flags onto config paths.
var flagPaths = map[string]string{
	"log-level":       "log.level",
	"log-json":        "log.json",
	"input":           "dataset.input",
	"output":          "dataset.output",
	"workers":         "dataset.workers",
	"examples":        "dataset.examples",
	"separator":       "dataset.separator",
	"default-speaker": "dataset.default_speaker",
}

// app is the state shared by all subcommands.
type app struct {
	fs  afero.Fs
	cfg config.Config
	log logger.Logger
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:           "nortext",
		Short:         "Rewrite Norwegian text into its spoken form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("log-level", defaults.Log.Level, "log level (debug, info, warn, error, disabled)")
	pf.Bool("log-json", defaults.Log.JSON, "log as JSON")
	pf.String("env-file", "", "load environment variables from this file")

	cmd.AddCommand(
		a.normalizeCmd(),
		a.datasetCmd(),
		a.explainCmd(),
	)
	return cmd
}

// setup loads the configuration and installs the default logger. Only flags given on
// the command line override the configuration.
func (a *app) setup(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}

	overrides := make(map[string]any)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if path, ok := flagPaths[f.Name]; ok {
			overrides[path] = f.Value.String()
		}
	})

	cfg, err := config.Load(config.Options{EnvFile: envFile, Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := logger.ParseLevel(cfg.Log.Level)
	logger.Init(&logger.Config{
		Level:      level,
		Output:     cmd.ErrOrStderr(),
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	a.log = logger.GetDefault()
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), a.log))
	logger.Debug("configuration loaded", "command", cmd.Name(), "env_file", envFile)
	return nil
}
