package distance

import "drone-route-service/internal/domain"

// ManhattanProvider implements DistanceProvider with grid (taxicab) distance.
// Grid content is ignored; there is no obstacle avoidance.
type ManhattanProvider struct{}

func NewManhattanProvider() ManhattanProvider { return ManhattanProvider{} }

func (ManhattanProvider) Distance(a, b domain.Coordinate) int {
	return domain.Manhattan(a, b)
}
