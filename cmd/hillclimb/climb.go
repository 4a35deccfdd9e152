package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/hill"
	"github.com/katalvlaran/hillclimb/terrain"
)

// ErrNoRoute is returned when no start can reach the goal.
var ErrNoRoute = errors.New("hillclimb: no route to the goal")

// pathCmd searches from the S marker.
func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path [file]",
		Short: "Fewest steps from S to E",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Mode = config.ModeSingle
			return a.climb(cmd, args)
		},
	}
}

// anyCmd searches from every lowest cell.
func (a *app) anyCmd() *cobra.Command {
	var trim bool
	cmd := &cobra.Command{
		Use:   "any [file]",
		Short: "Fewest steps to E from any cell at the lowest height",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Mode = config.ModeAny
			if cmd.Flags().Changed("trim") {
				a.cfg.Trim = trim
			}
			return a.climb(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&trim, "trim", false, "shorten each found route at its last lowest cell")

	return cmd
}

// runCmd uses the mode from the configuration file.
func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Search in the mode named by the configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.climb,
	}
}

// climb loads the map and runs the configured search.
func (a *app) climb(cmd *cobra.Command, args []string) error {
	input := a.cfg.Input
	if len(args) == 1 {
		input = args[0]
	}
	m, err := a.loadMap(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	rows, cols := m.Size()
	a.logger.Debug("map loaded",
		zap.String("input", input),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Stringer("start", m.Start()),
		zap.Stringer("goal", m.Goal()))

	opts := []hill.Option{
		hill.WithMaxClimb(a.cfg.MaxClimb),
		hill.WithLogger(a.logger),
	}
	if a.cfg.Mode == config.ModeAny && a.cfg.Trim {
		opts = append(opts, hill.WithTrimHeight(terrain.MinHeight))
	}
	f, err := hill.NewFinder(m, m.Goal(), opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var start hill.Coord
	var route []hill.Coord
	switch a.cfg.Mode {
	case config.ModeAny:
		res, ok := f.FindFromAny(m.Lowest())
		if !ok {
			return ErrNoRoute
		}
		start, route = res.Start, res.Path
		a.logger.Info("search finished",
			zap.String("mode", a.cfg.Mode),
			zap.Int("length", res.Length),
			zap.Int("searches", res.Searches),
			zap.Int("pruned", res.Pruned))
		fmt.Fprintf(out, "The length of the shortest path is %d\n", res.Length)
	default:
		var ok bool
		start = m.Start()
		route, ok = f.FindPath(start, 0)
		if !ok {
			return ErrNoRoute
		}
		a.logger.Info("search finished",
			zap.String("mode", a.cfg.Mode),
			zap.Int("length", len(route)))
		fmt.Fprintf(out, "The length of the path is %d\n", len(route))
	}

	if a.cfg.Show {
		fmt.Fprint(out, m.Overlay(append([]hill.Coord{start}, route...)))
	}

	return nil
}

// loadMap parses input, or stdin when input is "-".
func (a *app) loadMap(stdin io.Reader, input string) (*terrain.Map, error) {
	if input == "" || input == "-" {
		return terrain.Parse(stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return terrain.Parse(f)
}
