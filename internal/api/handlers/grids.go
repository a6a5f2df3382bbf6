package handlers

import (
	"drone-route-service/internal/api/dto"
	"drone-route-service/internal/ports"
	"log"
	"net/http"
)

// GridHandler exposes read-only grid listing.
type GridHandler struct {
	Repo ports.GridRepository
}

func (h *GridHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	grids, err := h.Repo.ListGrids(r.Context())
	if err != nil {
		log.Printf("list grids failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListGridsResponse{
		Grids: make([]dto.GridResponse, 0, len(grids)),
	}
	for _, g := range grids {
		res.Grids = append(res.Grids, dto.GridResponse{
			Name:         g.Name,
			DeclaredRows: g.DeclaredRows,
			DeclaredCols: g.DeclaredCols,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
