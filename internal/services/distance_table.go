package services

import (
	"drone-route-service/internal/domain"
	"drone-route-service/internal/ports"
)

// PointID is a dense handle for a point of the distance table.
// The origin is always OriginID; delivery points follow in discovery order.
type PointID int

const OriginID PointID = 0

// DistanceTable holds every pairwise distance between the origin and the
// delivery points. It is built once per run and read-only afterwards.
//
// Distances live in a flat (n+1)x(n+1) slice indexed by PointID, and labels
// map to handles in both directions.
type DistanceTable struct {
	size   int
	labels []string
	coords []domain.Coordinate
	ids    map[string]PointID
	dist   []int
}

// BuildDistanceTable computes the distance of every ordered pair of
// {origin} ∪ points. The diagonal is 0 without consulting the provider.
func BuildDistanceTable(
	origin domain.Coordinate,
	points []domain.DeliveryPoint,
	provider ports.DistanceProvider,
) *DistanceTable {
	size := len(points) + 1

	t := &DistanceTable{
		size:   size,
		labels: make([]string, 0, size),
		coords: make([]domain.Coordinate, 0, size),
		ids:    make(map[string]PointID, size),
		dist:   make([]int, size*size),
	}

	t.labels = append(t.labels, domain.OriginMarker)
	t.coords = append(t.coords, origin)
	t.ids[domain.OriginMarker] = OriginID
	for i, p := range points {
		t.labels = append(t.labels, p.Label)
		t.coords = append(t.coords, p.Coord)
		t.ids[p.Label] = PointID(i + 1)
	}

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i == j {
				continue
			}
			t.dist[i*size+j] = provider.Distance(t.coords[i], t.coords[j])
		}
	}

	return t
}

// Size is the number of points including the origin.
func (t *DistanceTable) Size() int { return t.size }

// PointCount is the number of delivery points.
func (t *DistanceTable) PointCount() int { return t.size - 1 }

func (t *DistanceTable) Label(id PointID) string { return t.labels[id] }

func (t *DistanceTable) Coordinate(id PointID) domain.Coordinate { return t.coords[id] }

// ID returns the handle for label, reporting whether it exists.
func (t *DistanceTable) ID(label string) (PointID, bool) {
	id, ok := t.ids[label]
	return id, ok
}

// Between returns the distance from a to b in O(1).
func (t *DistanceTable) Between(a, b PointID) int { return t.dist[int(a)*t.size+int(b)] }

// Lookup is Between keyed by labels.
func (t *DistanceTable) Lookup(from, to string) (int, bool) {
	a, ok := t.ids[from]
	if !ok {
		return 0, false
	}
	b, ok := t.ids[to]
	if !ok {
		return 0, false
	}
	return t.Between(a, b), true
}

// Route converts handles back to grid labels.
func (t *DistanceTable) Route(ids []PointID) domain.Route {
	r := make(domain.Route, len(ids))
	for i, id := range ids {
		r[i] = t.labels[id]
	}
	return r
}
