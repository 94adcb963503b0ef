package main

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aoc/internal/input"
	"aoc/internal/logging"
	"aoc/internal/runner"
	"aoc/internal/solver"
	"aoc/internal/ui"
)

var listYear int

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered solutions and whether their inputs exist",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().IntVarP(&listYear, "year", "y", 0, "Only list this year")
	return cmd
}

// Input states shown by `aoc list`.
const (
	inputPresent    = "present"
	inputMissing    = "missing"
	inputOutOfRange = "out of range"
)

func runList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	reg, err := registry()
	if err != nil {
		return err
	}

	var units []*solver.Unit
	if cmd.Flags().Changed("year") {
		units = reg.ByYear(listYear)
	} else {
		units = reg.Units()
	}

	store := input.NewStore(cfg)
	status := make([]string, len(units))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := store.Exists(u.Key.Year, u.Key.Day)
			switch {
			case errors.Is(err, input.ErrOutOfRange):
				status[i] = inputOutOfRange
			case err != nil:
				return fmt.Errorf("failed to check input for %s: %w", u.Key, err)
			case ok:
				status[i] = inputPresent
			default:
				status[i] = inputMissing
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logging.Named(logger, logging.CategoryInput).Debug("inputs checked", zap.Int("units", len(units)))

	out := cmd.OutOrStdout()
	if len(units) == 0 {
		_, err := fmt.Fprintln(out, "No solutions registered.")
		return err
	}

	styles := ui.StylesFor(out)
	table := ui.NewTable(fmt.Sprintf("%d solutions", len(units)), "Identifier", "Day", "Title", "Input")
	for i, u := range units {
		sel := runner.Selector{Year: u.Key.Year, Day: u.Key.Day}
		table.AddRow(sel.Identifier(cfg.Namespace), strconv.Itoa(u.Key.Day), u.Title, statusStyle(styles, status[i]))
	}
	_, err = fmt.Fprint(out, table.View(styles))
	return err
}

func statusStyle(styles ui.Styles, status string) string {
	switch status {
	case inputPresent:
		return styles.Success.Render(status)
	case inputMissing:
		return styles.Warning.Render(status)
	default:
		return styles.Muted.Render(status)
	}
}
