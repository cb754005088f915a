package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wealthcoach/wealthcoach/internal/calculation"
	"github.com/wealthcoach/wealthcoach/internal/config"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"github.com/wealthcoach/wealthcoach/internal/logging"
)

// app carries what PersistentPreRunE builds for the subcommands.
type app struct {
	settings *config.Settings
	log      *logrus.Logger
	engine   *calculation.ProjectionEngine
	parser   *config.InputParser
}

func newRootCmd() *cobra.Command {
	a := &app{parser: config.NewInputParser()}

	rootCmd := &cobra.Command{
		Use:   "wealthcoach",
		Short: "Long-term savings projections",
		Long: `wealthcoach projects monthly savings plans: nominal, inflation-adjusted and
indexed balances, three return scenarios, goal timing and the contribution
needed to reach a target.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "settings file (default: ./wealthcoach.yaml or ~/.wealthcoach/wealthcoach.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format override (text, json)")
	rootCmd.PersistentFlags().Bool("debug", false, "log per-plan calculation details")

	rootCmd.AddCommand(
		newProjectCmd(a),
		newBatchCmd(a),
		newSolveCmd(a),
		newServeCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	settings, err := config.LoadSettings(configFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		settings.Log.Level = lvl
	}
	if f, _ := cmd.Flags().GetString("log-format"); f != "" {
		settings.Log.Format = f
	}
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		settings.Log.Level = "debug"
	}

	log, err := logging.NewWithOutput(cmd.ErrOrStderr(), settings.Log.Level, settings.Log.Format)
	if err != nil {
		return err
	}

	engine := calculation.NewProjectionEngine()
	engine.SolverIterations = settings.Engine.SolverIterations
	engine.Concurrency = settings.Engine.Concurrency
	engine.Debug = debug
	engine.SetLogger(log)

	a.settings = settings
	a.log = log
	a.engine = engine
	return nil
}

// loadPlans reads a plan file and logs inputs outside the usual ranges.
func (a *app) loadPlans(path string) (*domain.PlanFile, error) {
	file, err := a.parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range a.parser.Warnings(file) {
		a.log.WithField("file", path).Warn(w)
	}
	return file, nil
}
