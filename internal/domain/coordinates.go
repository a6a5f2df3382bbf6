package domain

import "fmt"

// Immutable grid position (row, column), both zero-based.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// Manhattan returns |a.Row - b.Row| + |a.Col - b.Col|.
func Manhattan(a, b Coordinate) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
