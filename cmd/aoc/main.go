package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc/internal/config"
	"aoc/internal/input"
	"aoc/internal/logging"
	"aoc/internal/puzzles/year2023"
	"aoc/internal/puzzles/year2024"
	"aoc/internal/runner"
	"aoc/internal/solver"
)

var (
	// Global flags
	configPath string
	dataDir    string
	verbose    bool

	// Root flags
	year int

	// Loaded in PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registry returns the global registry with every year's units registered.
func registry() (*solver.Registry, error) {
	registerOnce.Do(func() {
		log := logger
		if log == nil {
			log = zap.NewNop()
		}
		reg := solver.Global()
		reg.SetLogger(log)
		for _, registerAll := range []func(*solver.Registry) error{
			year2023.RegisterAll,
			year2024.RegisterAll,
		} {
			if err := registerAll(reg); err != nil {
				registerErr = fmt.Errorf("failed to register solvers: %w", err)
				return
			}
		}
		logging.Named(log, logging.CategoryRegistry).Debug("solvers loaded",
			zap.Int("count", reg.Count()),
			zap.Ints("years", reg.Years()))
	})
	return solver.Global(), registerErr
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aoc [flags] DAY",
		Short: "Run an Advent of Code solution",
		Long: `Runs the solution for one Advent of Code puzzle and reports how long it took.

DAY is the puzzle day (1-24). The year defaults to the configured default year.
Inputs are read from the data directory as <YY>-<DD>.txt.

Examples:
  aoc 5           # 2023 day 5 with the default config
  aoc -y 2024 1   # 2024 day 1`,
		Args:              cobra.ExactArgs(1),
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				logging.Sync(logger)
			}
		},
		RunE: runDay,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Input directory (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().IntVarP(&year, "year", "y", 0, "Puzzle year (default from config)")

	rootCmd.AddCommand(newListCmd())
	return rootCmd
}

// setup loads the config and builds the logger for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = dataDir
	}

	base, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return err
	}
	logger = logging.ForRun(base)
	logging.Named(logger, logging.CategoryCLI).Debug("config loaded",
		zap.String("path", configPath),
		zap.String("data_dir", cfg.DataDir),
		zap.Int("default_year", cfg.Years.Default))
	return nil
}

func runDay(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: day %q is not an integer", runner.ErrInvalidSelector, args[0])
	}
	if !cmd.Flags().Changed("year") {
		year = cfg.Years.Default
	}
	sel, err := runner.NewSelector(cfg.Years, year, day)
	if err != nil {
		return err
	}

	// Past argument validation; failures from here on are not usage errors.
	cmd.SilenceUsage = true

	reg, err := registry()
	if err != nil {
		return err
	}
	r := runner.New(runner.Options{
		Registry:  reg,
		Namespace: cfg.Namespace,
		Input:     input.NewStore(cfg),
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	})
	_, err = r.Run(cmd.Context(), sel)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
