package main

import (
	"context"
	"database/sql"
	"drone-route-service/internal/adapters/distance"
	"drone-route-service/internal/adapters/repositories"
	"drone-route-service/internal/api"
	"drone-route-service/internal/config"
	"drone-route-service/internal/platform/db"
	"drone-route-service/internal/ports"
	"fmt"
	"log"
	"net/http"
	"time"
)

// main is the application composition root.
// It wires the grid repository (Postgres when DATABASE_URL is set, SQLite
// otherwise) and the Manhattan distance oracle, then starts the HTTP server.
func main() {
	cfg := config.Load()

	conn, repo, err := openRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	router := api.NewRouter(repo, distance.NewManhattanProvider(), cfg.MaxPoints)

	// Exhaustive search is CPU bound; the write timeout caps a single planning request.
	log.Printf("Server listening addr=:%s max_points=%d", cfg.Port, cfg.MaxPoints)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRepository(cfg config.Config) (*sql.DB, ports.GridRepository, error) {
	ctx := context.Background()

	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewSQLGridRepository(conn), nil
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	// Initialize schema and seed demo grids on startup for local runs.
	if err := initAndSeed(ctx, conn, cfg.SeedPath); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, repositories.NewSqliteGridRepository(conn), nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(ctx, conn, repositories.SQLite, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
