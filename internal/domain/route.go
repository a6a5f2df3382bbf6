package domain

import "strings"

// Ordered delivery labels of a closed tour; the origin is implicit at both ends.
type Route []string

// String renders the route as a space separated label sequence.
func (r Route) String() string { return strings.Join(r, " ") }

// Arrow renders the closed tour, e.g. "R -> A -> B -> R".
func (r Route) Arrow() string {
	parts := make([]string, 0, len(r)+2)
	parts = append(parts, OriginMarker)
	parts = append(parts, r...)
	parts = append(parts, OriginMarker)
	return strings.Join(parts, " -> ")
}

// A strict improvement observed while searching.
type TraceEntry struct {
	Route Route
	Cost  int
}

// Represents the planned tour for one grid.
// A RoutePlan is the output of the exhaustive search together with the inputs
// it was computed from and the sequence of improvements found on the way.
// Trace costs are strictly decreasing and the last one equals BestCost.
type RoutePlan struct {
	Origin    Coordinate
	Points    []DeliveryPoint
	Trace     []TraceEntry
	BestRoute Route
	BestCost  int
	Warnings  []string
}
