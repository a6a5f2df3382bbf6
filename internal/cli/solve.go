package cli

import (
	"context"
	"drone-route-service/internal/adapters/distance"
	"drone-route-service/internal/adapters/gridfile"
	"drone-route-service/internal/config"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/services"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var solveMaxPoints int

var solveCmd = &cobra.Command{
	Use:   "solve [grid-file]",
	Short: "Find the optimal delivery route for a grid file",
	Long: `Find the optimal delivery route for a grid file.

The file starts with the declared row and column counts, followed by one
line of space separated cells per row. "R" marks the origin, "0" an empty
cell, and any other token a delivery point. Without an argument the file
named by GRID_FILE (default matriz.txt) is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveMaxPoints, "max-points", 0, "reject grids with more delivery points (default MAX_POINTS or 10)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()

	path := cfg.GridFile
	if len(args) == 1 {
		path = args[0]
	}
	maxPoints := cfg.MaxPoints
	if solveMaxPoints > 0 {
		maxPoints = solveMaxPoints
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "FlyFood Project: Drone Routing (%s)\n", path)

	grid, err := gridfile.ReadFile(path)
	if err != nil {
		return err
	}
	for _, w := range grid.DimensionWarnings() {
		fmt.Fprintf(out, "Note: the declared dimensions do not match the actual grid size (%s)\n", w)
	}

	plan, err := services.PlanRoute(context.Background(), grid, services.PlanRouteRequest{
		MaxPoints: maxPoints,
		Provider:  distance.NewManhattanProvider(),
	})
	if errors.Is(err, domain.ErrOriginNotFound) || errors.Is(err, domain.ErrNoDeliveryPoints) {
		return fmt.Errorf("could not find the origin point %s and/or the delivery points: %w", domain.OriginMarker, err)
	}
	if err != nil {
		return err
	}

	if err := WritePoints(out, plan); err != nil {
		return err
	}
	if err := WriteTrace(out, plan.Trace); err != nil {
		return err
	}
	return WriteReport(out, plan)
}
