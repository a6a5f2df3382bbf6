package services

import (
	"drone-route-service/internal/domain"
	"math/rand"
)

// scenarioGrid is the 3x3 grid with R at (0,0), A at (1,2) and B at (2,1).
func scenarioGrid() *domain.Grid {
	return &domain.Grid{
		DeclaredRows: 3,
		DeclaredCols: 3,
		Cells: [][]string{
			{"R", "0", "0"},
			{"0", "0", "A"},
			{"0", "B", "0"},
		},
	}
}

// randomPoints places n uniquely labeled points on a size x size board, away from origin.
func randomPoints(rng *rand.Rand, n, size int) (domain.Coordinate, []domain.DeliveryPoint) {
	origin := domain.Coordinate{Row: rng.Intn(size), Col: rng.Intn(size)}
	used := map[domain.Coordinate]bool{origin: true}

	points := make([]domain.DeliveryPoint, 0, n)
	for len(points) < n {
		c := domain.Coordinate{Row: rng.Intn(size), Col: rng.Intn(size)}
		if used[c] {
			continue
		}
		used[c] = true
		points = append(points, domain.DeliveryPoint{Label: string(rune('A' + len(points))), Coord: c})
	}
	return origin, points
}

// bruteForceMin enumerates tours recursively over coordinates, independent of
// the table and the permutation generator.
func bruteForceMin(origin domain.Coordinate, points []domain.DeliveryPoint) int {
	used := make([]bool, len(points))
	best := -1

	var walk func(at domain.Coordinate, depth, cost int)
	walk = func(at domain.Coordinate, depth, cost int) {
		if depth == len(points) {
			total := cost + domain.Manhattan(at, origin)
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for i, p := range points {
			if used[i] {
				continue
			}
			used[i] = true
			walk(p.Coord, depth+1, cost+domain.Manhattan(at, p.Coord))
			used[i] = false
		}
	}
	walk(origin, 0, 0)

	return best
}
