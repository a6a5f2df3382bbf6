package services

import (
	"drone-route-service/internal/domain"
	"fmt"
)

// TourCost returns origin->ids[0] + consecutive legs + ids[last]->origin.
// An empty tour costs 0.
func (t *DistanceTable) TourCost(ids []PointID) int {
	if len(ids) == 0 {
		return 0
	}

	cost := t.Between(OriginID, ids[0])
	for i := 0; i < len(ids)-1; i++ {
		cost += t.Between(ids[i], ids[i+1])
	}
	cost += t.Between(ids[len(ids)-1], OriginID)

	return cost
}

// RouteCost is TourCost for a labeled route.
// Every label must exist in the table; an unknown label panics.
func RouteCost(route domain.Route, table *DistanceTable) int {
	ids := make([]PointID, len(route))
	for i, label := range route {
		id, ok := table.ID(label)
		if !ok {
			panic(fmt.Sprintf("route cost: label %q is not in the distance table", label))
		}
		ids[i] = id
	}
	return table.TourCost(ids)
}
