package services

import (
	"drone-route-service/internal/domain"
	"fmt"
	"iter"
	"math"
	"slices"
)

// Result of an exhaustive route search.
type SearchResult struct {
	Route domain.Route
	Cost  int
}

// Permutations yields every permutation of 0..n-1 in lexicographic order,
// starting from the identity. The yielded slice is reused between steps;
// callers that keep it must copy it. Each range over the sequence starts over.
func Permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}

		for {
			if !yield(p) {
				return
			}

			i := n - 2
			for i >= 0 && p[i] >= p[i+1] {
				i--
			}
			if i < 0 {
				return
			}

			j := n - 1
			for p[j] <= p[i] {
				j--
			}
			p[i], p[j] = p[j], p[i]
			slices.Reverse(p[i+1:])
		}
	}
}

// ExhaustiveSearch evaluates every ordering of the table's delivery points and
// returns the cheapest closed tour.
//
// A candidate replaces the best only when strictly cheaper, so among equal
// optima the first permutation in generation order wins. onImprove, if set,
// is called with each new best as it is found.
func ExhaustiveSearch(table *DistanceTable, onImprove func(domain.TraceEntry)) (SearchResult, error) {
	n := table.PointCount()
	if n == 0 {
		return SearchResult{}, fmt.Errorf("exhaustive search: %w", domain.ErrNoDeliveryPoints)
	}

	ids := make([]PointID, n)
	best := make([]PointID, n)
	bestCost := math.MaxInt
	found := false

	for perm := range Permutations(n) {
		for i, p := range perm {
			ids[i] = PointID(p + 1)
		}

		cost := table.TourCost(ids)
		if cost >= bestCost {
			continue
		}

		bestCost = cost
		copy(best, ids)
		found = true

		if onImprove != nil {
			onImprove(domain.TraceEntry{Route: table.Route(best), Cost: cost})
		}
	}

	if !found {
		return SearchResult{}, fmt.Errorf("exhaustive search: no route improved on the initial bound")
	}

	return SearchResult{Route: table.Route(best), Cost: bestCost}, nil
}
