package ports

import (
	"context"
	"drone-route-service/internal/domain"
	"errors"
)

var ErrGridNotFound = errors.New("grid not found")

// Summary of a stored grid, without its cells.
type GridInfo struct {
	Name         string
	DeclaredRows int
	DeclaredCols int
}

// Port: a boundary for retrieving named input grids from a data source.
type GridRepository interface {
	// List every stored grid ordered by name.
	ListGrids(ctx context.Context) ([]GridInfo, error)
	// Return the grid stored under name, or an error wrapping ErrGridNotFound.
	GetGrid(ctx context.Context, name string) (*domain.Grid, error)
}
