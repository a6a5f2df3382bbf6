package api

import (
	"drone-route-service/internal/api/handlers"
	"drone-route-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.GridRepository, provider ports.DistanceProvider, maxPoints int) http.Handler {
	mux := http.NewServeMux()

	gridHandler := &handlers.GridHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{
		Repo:      repo,
		Provider:  provider,
		MaxPoints: maxPoints,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/grids", gridHandler.List)
	mux.HandleFunc("/routes", routeHandler.Plan)

	return loggingMiddleware(mux)
}
