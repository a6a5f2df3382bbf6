package services

import (
	"context"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/platform/obs"
	"drone-route-service/internal/ports"
	"errors"
	"fmt"
	"log"
)

// DefaultMaxPoints bounds n for the O(n!) search when the caller sets no limit.
const DefaultMaxPoints = 10

type PlanRouteRequest struct {
	MaxPoints int
	Provider  ports.DistanceProvider
}

// PlanRoute locates the origin and delivery points of grid, builds the
// distance table once and runs the exhaustive search over it.
//
// Missing origin, empty delivery set, duplicates and oversized inputs are
// rejected before any distance is computed. Dimension mismatches between the
// grid header and its cells are logged and returned as warnings.
func PlanRoute(
	ctx context.Context,
	grid *domain.Grid,
	req PlanRouteRequest,
) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "services.PlanRoute")(&err)

	if grid == nil {
		return nil, errors.New("plan route: grid must be non-nil")
	}
	if req.Provider == nil {
		return nil, errors.New("plan route: distance provider must be non-nil")
	}

	warnings := grid.DimensionWarnings()
	for _, w := range warnings {
		log.Printf("grid warning: %s", w)
	}

	origin, points, err := domain.Locate(grid)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	maxPoints := req.MaxPoints
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	if len(points) > maxPoints {
		return nil, fmt.Errorf("plan route: %d delivery points exceeds limit %d: %w", len(points), maxPoints, domain.ErrTooManyPoints)
	}

	table := BuildDistanceTable(origin, points, req.Provider)

	trace := []domain.TraceEntry{}
	res, err := ExhaustiveSearch(table, func(e domain.TraceEntry) {
		trace = append(trace, e)
	})
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	return &domain.RoutePlan{
		Origin:    origin,
		Points:    points,
		Trace:     trace,
		BestRoute: res.Route,
		BestCost:  res.Cost,
		Warnings:  warnings,
	}, nil
}

// PlanStoredRoute loads the grid stored under name and plans its route.
func PlanStoredRoute(
	ctx context.Context,
	name string,
	repo ports.GridRepository,
	req PlanRouteRequest,
) (*domain.RoutePlan, error) {
	if repo == nil {
		return nil, errors.New("plan stored route: repository must be non-nil")
	}

	grid, err := repo.GetGrid(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("plan stored route: get grid %q: %w", name, err)
	}

	plan, err := PlanRoute(ctx, grid, req)
	if err != nil {
		return nil, fmt.Errorf("plan stored route: grid %q: %w", name, err)
	}
	return plan, nil
}
