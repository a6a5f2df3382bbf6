package domain

import "fmt"

const (
	// OriginMarker labels the start/end cell of every tour.
	OriginMarker = "R"
	// EmptyMarker labels a cell with nothing to deliver.
	EmptyMarker = "0"
)

// Represents a parsed delivery grid.
// DeclaredRows and DeclaredCols come from the file header and may disagree
// with the parsed Cells; the cells are authoritative.
type Grid struct {
	DeclaredRows int
	DeclaredCols int
	Cells        [][]string
}

func (g *Grid) Rows() int { return len(g.Cells) }

// Cols returns the width of the first row, or 0 for an empty grid.
func (g *Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// DimensionWarnings reports every mismatch between the declared header and the parsed cells.
func (g *Grid) DimensionWarnings() []string {
	var warnings []string
	if g.Rows() != g.DeclaredRows {
		warnings = append(warnings, fmt.Sprintf("declared rows=%d but parsed %d", g.DeclaredRows, g.Rows()))
	}
	if g.Cols() != g.DeclaredCols {
		warnings = append(warnings, fmt.Sprintf("declared cols=%d but parsed %d", g.DeclaredCols, g.Cols()))
	}
	return warnings
}

// A labeled cell the tour must visit exactly once.
type DeliveryPoint struct {
	Label string
	Coord Coordinate
}

// Locate scans the grid in row-major order and returns the origin and the
// delivery points in discovery order.
//
// Duplicate origin markers and duplicate delivery labels are rejected rather
// than silently resolved to the last occurrence.
func Locate(g *Grid) (Coordinate, []DeliveryPoint, error) {
	if g == nil {
		return Coordinate{}, nil, fmt.Errorf("locate: %w", ErrOriginNotFound)
	}

	var (
		origin     Coordinate
		haveOrigin bool
	)
	points := []DeliveryPoint{}
	seen := make(map[string]Coordinate)

	for i, row := range g.Cells {
		for j, label := range row {
			here := Coordinate{Row: i, Col: j}
			switch label {
			case OriginMarker:
				if haveOrigin {
					return Coordinate{}, nil, fmt.Errorf("locate: at %s and %s: %w", origin, here, ErrDuplicateOrigin)
				}
				origin, haveOrigin = here, true
			case EmptyMarker:
			default:
				if prev, ok := seen[label]; ok {
					return Coordinate{}, nil, fmt.Errorf("locate: label %q at %s and %s: %w", label, prev, here, ErrDuplicateLabel)
				}
				seen[label] = here
				points = append(points, DeliveryPoint{Label: label, Coord: here})
			}
		}
	}

	if !haveOrigin {
		return Coordinate{}, nil, fmt.Errorf("locate: %w", ErrOriginNotFound)
	}
	if len(points) == 0 {
		return Coordinate{}, nil, fmt.Errorf("locate: %w", ErrNoDeliveryPoints)
	}

	return origin, points, nil
}
