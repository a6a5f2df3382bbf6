package cli

import (
	"drone-route-service/internal/domain"
	"fmt"
	"io"
	"strings"
)

// errWriter keeps the first write error so rendering code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteTrace renders the progress table: header, column header, separator,
// then one row per strict improvement.
func WriteTrace(w io.Writer, trace []domain.TraceEntry) error {
	ew := &errWriter{w: w}

	ew.printf("\n--- Optimization: Best Route Progress ---\n")
	ew.printf("%-35s | %18s\n", "Current Best Route (R -> ... -> R)", "Total Cost")
	ew.printf("%s\n", strings.Repeat("-", 63))
	for _, e := range trace {
		ew.printf("%-35s | %25d\n", e.Route.Arrow(), e.Cost)
	}

	return ew.err
}

// WritePoints prints the origin and the delivery points in discovery order.
func WritePoints(w io.Writer, plan *domain.RoutePlan) error {
	ew := &errWriter{w: w}

	parts := make([]string, 0, len(plan.Points))
	for _, p := range plan.Points {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Label, p.Coord))
	}

	ew.printf("Origin Point (%s): %s\n", domain.OriginMarker, plan.Origin)
	ew.printf("Delivery Points: {%s}\n", strings.Join(parts, ", "))

	return ew.err
}

// WriteReport prints the final best cost and delivery sequence.
func WriteReport(w io.Writer, plan *domain.RoutePlan) error {
	ew := &errWriter{w: w}

	ew.printf("\n--- Final Optimal Result ---\n")
	ew.printf("Lowest Cost Found: %d\n", plan.BestCost)
	ew.printf("Delivery Sequence: %s\n", plan.BestRoute)

	return ew.err
}
