package services

import (
	"drone-route-service/internal/adapters/distance"
	"drone-route-service/internal/domain"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(n int) [][]int {
	out := [][]int{}
	for p := range Permutations(n) {
		out = append(out, slices.Clone(p))
	}
	return out
}

func TestPermutationsLexicographicOrder(t *testing.T) {
	want := [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}
	require.Equal(t, want, collect(3))
}

func TestPermutationsCountAndUniqueness(t *testing.T) {
	factorial := 1
	for n := 1; n <= 6; n++ {
		factorial *= n

		perms := collect(n)
		require.Len(t, perms, factorial)

		seen := map[string]bool{}
		for _, p := range perms {
			key := domain.Route(toLabels(p)).String()
			require.False(t, seen[key], "duplicate permutation %v", p)
			seen[key] = true
		}
	}

	// 0! = 1: a single empty ordering.
	assert.Equal(t, [][]int{{}}, collect(0))
}

func TestPermutationsRestartAndEarlyStop(t *testing.T) {
	seq := Permutations(4)

	count := 0
	for range seq {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)

	first := [][]int{}
	for p := range seq {
		first = append(first, slices.Clone(p))
	}
	assert.Len(t, first, 24)
	assert.Equal(t, []int{0, 1, 2, 3}, first[0])
}

func toLabels(p []int) []string {
	out := make([]string, len(p))
	for i, v := range p {
		out[i] = string(rune('a' + v))
	}
	return out
}

func TestExhaustiveSearchScenario(t *testing.T) {
	origin, points, err := domain.Locate(scenarioGrid())
	require.NoError(t, err)
	table := BuildDistanceTable(origin, points, distance.NewManhattanProvider())

	var trace []domain.TraceEntry
	res, err := ExhaustiveSearch(table, func(e domain.TraceEntry) { trace = append(trace, e) })
	require.NoError(t, err)

	assert.Equal(t, 8, res.Cost)
	assert.Equal(t, domain.Route{"A", "B"}, res.Route)

	// The reverse tour ties and must not be reported.
	require.Len(t, trace, 1)
	assert.Equal(t, "R -> A -> B -> R", trace[0].Route.Arrow())
}

func TestExhaustiveSearchSinglePoint(t *testing.T) {
	g := &domain.Grid{Cells: [][]string{
		{"0", "0", "0"},
		{"0", "R", "0"},
		{"0", "0", "X"},
	}}
	origin, points, err := domain.Locate(g)
	require.NoError(t, err)
	table := BuildDistanceTable(origin, points, distance.NewManhattanProvider())

	res, err := ExhaustiveSearch(table, nil)
	require.NoError(t, err)

	leg, _ := table.Lookup("R", "X")
	assert.Equal(t, domain.Route{"X"}, res.Route)
	assert.Equal(t, 2*leg, res.Cost)
}

func TestExhaustiveSearchNoPoints(t *testing.T) {
	table := BuildDistanceTable(domain.Coordinate{}, nil, distance.NewManhattanProvider())

	_, err := ExhaustiveSearch(table, nil)
	require.ErrorIs(t, err, domain.ErrNoDeliveryPoints)
}

func TestExhaustiveSearchMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2026))

	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 5; trial++ {
			origin, points := randomPoints(rng, n, 9)
			table := BuildDistanceTable(origin, points, distance.NewManhattanProvider())

			var trace []domain.TraceEntry
			res, err := ExhaustiveSearch(table, func(e domain.TraceEntry) { trace = append(trace, e) })
			require.NoError(t, err)

			require.Equal(t, bruteForceMin(origin, points), res.Cost, "n=%d trial=%d", n, trial)
			require.Equal(t, res.Cost, RouteCost(res.Route, table))
			require.Len(t, res.Route, n)

			require.NotEmpty(t, trace)
			for i := 1; i < len(trace); i++ {
				require.Less(t, trace[i].Cost, trace[i-1].Cost)
			}
			last := trace[len(trace)-1]
			require.Equal(t, res.Cost, last.Cost)
			require.Equal(t, res.Route, last.Route)
		}
	}
}

func TestExhaustiveSearchFirstOptimumWins(t *testing.T) {
	// A square around the origin: several tours tie at the optimum.
	g := &domain.Grid{Cells: [][]string{
		{"A", "0", "B"},
		{"0", "R", "0"},
		{"D", "0", "C"},
	}}
	origin, points, err := domain.Locate(g)
	require.NoError(t, err)
	table := BuildDistanceTable(origin, points, distance.NewManhattanProvider())

	res, err := ExhaustiveSearch(table, nil)
	require.NoError(t, err)

	var first domain.Route
	ids := make([]PointID, len(points))
	for perm := range Permutations(len(points)) {
		for i, p := range perm {
			ids[i] = PointID(p + 1)
		}
		if table.TourCost(ids) == res.Cost {
			first = table.Route(ids)
			break
		}
	}
	assert.Equal(t, first, res.Route)
	assert.Equal(t, domain.Route{"A", "B", "C", "D"}, res.Route)
}

func TestExhaustiveSearchDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	origin, points := randomPoints(rng, 6, 8)
	table := BuildDistanceTable(origin, points, distance.NewManhattanProvider())

	first, err := ExhaustiveSearch(table, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := ExhaustiveSearch(table, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
