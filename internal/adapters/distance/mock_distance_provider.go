package distance

import "drone-route-service/internal/domain"

type MockPair struct {
	From, To domain.Coordinate
	Cost     int
}

// MockDistanceProvider serves fixed costs for known pairs, falling back to
// Manhattan distance for anything else. Pairs are registered in both directions.
type MockDistanceProvider struct {
	m     map[[2]domain.Coordinate]int
	calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[[2]domain.Coordinate]int, 2*len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinate{p.From, p.To}] = p.Cost
		m[[2]domain.Coordinate{p.To, p.From}] = p.Cost
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) Distance(a, b domain.Coordinate) int {
	p.calls++
	if c, ok := p.m[[2]domain.Coordinate{a, b}]; ok {
		return c
	}
	return domain.Manhattan(a, b)
}

// Calls reports how many distances were requested.
func (p *MockDistanceProvider) Calls() int { return p.calls }
