package repositories

import (
	"context"
	"database/sql"
	"drone-route-service/internal/adapters/gridfile"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Dialect selects the SQL flavor for statements that differ between engines.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Initialize the grids schema. The DDL is portable across both dialects.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGridsQuery := `
	CREATE TABLE IF NOT EXISTS grids (
		name TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		declared_rows INTEGER NOT NULL,
		declared_cols INTEGER NOT NULL
	);
	`

	statements := []string{
		createGridsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type GridSeed struct {
	Name string `json:"name"`
	Grid string `json:"grid"`
}

type gridRow struct {
	name       string
	body       string
	rows, cols int
}

// Populate the database with grids from a JSON file.
// Every grid must parse; dimension mismatches are stored as declared.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed grids: read %q: %w", jsonPath, err)
	}

	var data []GridSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed grids: parse json: %w", err)
	}

	rows := make([]gridRow, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed grids: item at index %d: name cannot be empty", i+1)
		}

		g, err := gridfile.ParseString(item.Grid)
		if err != nil {
			return fmt.Errorf("seed grids: grid %q: %w", name, err)
		}
		rows = append(rows, gridRow{name: name, body: item.Grid, rows: g.DeclaredRows, cols: g.DeclaredCols})
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed grids: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertGridQuery(dialect))
	if err != nil {
		return fmt.Errorf("seed grids: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.name, r.body, r.rows, r.cols); err != nil {
			return fmt.Errorf("seed grids: insert name=%q: %w", r.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed grids: commit tx: %w", err)
	}

	return nil
}

func upsertGridQuery(dialect Dialect) string {
	if dialect == Postgres {
		return `
	INSERT INTO grids (name, body, declared_rows, declared_cols)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (name) DO UPDATE
	SET body = EXCLUDED.body,
		declared_rows = EXCLUDED.declared_rows,
		declared_cols = EXCLUDED.declared_cols;
	`
	}

	return `
	INSERT OR REPLACE INTO grids (
		name,
		body,
		declared_rows,
		declared_cols
	)
	VALUES (?, ?, ?, ?);
	`
}
