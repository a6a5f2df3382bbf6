package ports

import "drone-route-service/internal/domain"

// Contract for the travel cost between two grid cells.
// Implementations must be symmetric, non-negative and return 0 for a == b.
type DistanceProvider interface {
	Distance(a, b domain.Coordinate) int
}
