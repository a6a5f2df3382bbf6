// Package gridfile reads delivery grids from their text format: a header
// line with the declared row and column counts, then one line of
// whitespace separated cell labels per row.
package gridfile

import (
	"bufio"
	"drone-route-service/internal/domain"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrInvalidHeader = errors.New("invalid grid header")
	ErrEmptyGrid     = errors.New("grid has no rows")
	ErrRaggedGrid    = errors.New("grid rows have different widths")
)

// Parse reads a grid from r. Blank lines are skipped.
//
// A declared size that disagrees with the parsed cells is not an error;
// see domain.Grid.DimensionWarnings.
func Parse(r io.Reader) (*domain.Grid, error) {
	sc := bufio.NewScanner(r)

	var (
		grid       *domain.Grid
		lineNumber int
	)
	for sc.Scan() {
		lineNumber++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if grid == nil {
			rows, cols, err := parseHeader(fields)
			if err != nil {
				return nil, fmt.Errorf("parse grid: line %d: %w", lineNumber, err)
			}
			grid = &domain.Grid{DeclaredRows: rows, DeclaredCols: cols}
			continue
		}

		if len(grid.Cells) > 0 && len(fields) != len(grid.Cells[0]) {
			return nil, fmt.Errorf(
				"parse grid: line %d has %d cells, first row has %d: %w",
				lineNumber, len(fields), len(grid.Cells[0]), ErrRaggedGrid,
			)
		}
		grid.Cells = append(grid.Cells, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse grid: read: %w", err)
	}

	if grid == nil {
		return nil, fmt.Errorf("parse grid: missing header: %w", ErrInvalidHeader)
	}
	if len(grid.Cells) == 0 {
		return nil, fmt.Errorf("parse grid: %w", ErrEmptyGrid)
	}

	return grid, nil
}

// ParseString is Parse over an in-memory grid text.
func ParseString(s string) (*domain.Grid, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile opens and parses the grid file at path.
func ReadFile(path string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read grid file %q: %w", path, err)
	}
	defer f.Close()

	grid, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read grid file %q: %w", path, err)
	}
	return grid, nil
}

func parseHeader(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 dimensions, got %d: %w", len(fields), ErrInvalidHeader)
	}

	rows, err := strconv.Atoi(fields[0])
	if err != nil || rows < 0 {
		return 0, 0, fmt.Errorf("rows %q: %w", fields[0], ErrInvalidHeader)
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil || cols < 0 {
		return 0, 0, fmt.Errorf("cols %q: %w", fields[1], ErrInvalidHeader)
	}

	return rows, cols, nil
}
