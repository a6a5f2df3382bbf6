package handlers

import (
	"drone-route-service/internal/adapters/gridfile"
	"drone-route-service/internal/api/dto"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/ports"
	"drone-route-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 20

type RouteHandler struct {
	Repo      ports.GridRepository
	Provider  ports.DistanceProvider
	MaxPoints int
}

// Plan computes the optimal closed tour for an inline or stored grid.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	inline := strings.TrimSpace(req.Grid) != ""
	name := strings.TrimSpace(req.GridName)
	if inline == (name != "") {
		writeError(w, r, http.StatusBadRequest, "exactly one of grid or grid_name is required")
		return
	}

	maxPoints := h.MaxPoints
	if req.MaxPoints != 0 {
		if req.MaxPoints < 1 || (h.MaxPoints > 0 && req.MaxPoints > h.MaxPoints) {
			writeError(w, r, http.StatusBadRequest, "max_points must be between 1 and the server limit")
			return
		}
		maxPoints = req.MaxPoints
	}

	svcReq := services.PlanRouteRequest{
		MaxPoints: maxPoints,
		Provider:  h.Provider,
	}

	var (
		plan *domain.RoutePlan
		err  error
	)
	if inline {
		grid, perr := gridfile.ParseString(req.Grid)
		if perr != nil {
			writeError(w, r, http.StatusBadRequest, perr.Error())
			return
		}
		plan, err = services.PlanRoute(r.Context(), grid, svcReq)
	} else {
		plan, err = services.PlanStoredRoute(r.Context(), name, h.Repo, svcReq)
	}
	if err != nil {
		status, msg := planErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("plan route failed: %v", err)
		}
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(plan))
}

func planErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ports.ErrGridNotFound):
		return http.StatusNotFound, "grid not found"
	case errors.Is(err, gridfile.ErrInvalidHeader),
		errors.Is(err, gridfile.ErrEmptyGrid),
		errors.Is(err, gridfile.ErrRaggedGrid):
		return http.StatusUnprocessableEntity, "stored grid is malformed"
	case errors.Is(err, domain.ErrOriginNotFound),
		errors.Is(err, domain.ErrDuplicateOrigin),
		errors.Is(err, domain.ErrNoDeliveryPoints),
		errors.Is(err, domain.ErrDuplicateLabel),
		errors.Is(err, domain.ErrTooManyPoints):
		return http.StatusUnprocessableEntity, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

func toRouteResponse(p *domain.RoutePlan) dto.RouteResponse {
	res := dto.RouteResponse{
		Origin:    dto.CoordinateResponse{Row: p.Origin.Row, Col: p.Origin.Col},
		Points:    make([]dto.PointResponse, 0, len(p.Points)),
		Trace:     make([]dto.TraceEntryResponse, 0, len(p.Trace)),
		BestRoute: []string(p.BestRoute),
		BestCost:  p.BestCost,
		Warnings:  p.Warnings,
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}

	for _, pt := range p.Points {
		res.Points = append(res.Points, dto.PointResponse{
			Label: pt.Label,
			Coord: dto.CoordinateResponse{Row: pt.Coord.Row, Col: pt.Coord.Col},
		})
	}
	for _, e := range p.Trace {
		res.Trace = append(res.Trace, dto.TraceEntryResponse{Route: e.Route.Arrow(), Cost: e.Cost})
	}

	return res
}
