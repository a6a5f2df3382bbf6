package main

import (
	"context"
	"database/sql"
	"drone-route-service/internal/adapters/repositories"
	"drone-route-service/internal/config"
	"drone-route-service/internal/platform/db"
	"fmt"
	"log"
)

// dbtool prepares the Postgres grid store used by the server.
func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), conn, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding grids from %s...", seedPath)
	if err := repositories.SeedFromJSON(ctx, conn, repositories.Postgres, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
