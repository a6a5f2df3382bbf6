package repositories

import (
	"context"
	"database/sql"
	"drone-route-service/internal/adapters/gridfile"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/ports"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the GridRepository port.
type SqliteGridRepository struct{ DB *sql.DB }

func NewSqliteGridRepository(db *sql.DB) *SqliteGridRepository {
	return &SqliteGridRepository{DB: db}
}

// Return all stored grids ordered by name.
func (s *SqliteGridRepository) ListGrids(ctx context.Context) ([]ports.GridInfo, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite grid repository: DB is nil")
	}

	query := `
	SELECT
		name,
		declared_rows,
		declared_cols
	FROM grids
	ORDER BY name;
	`
	return listGrids(ctx, s.DB, query)
}

// Return the parsed grid stored under name.
func (s *SqliteGridRepository) GetGrid(ctx context.Context, name string) (*domain.Grid, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite grid repository: DB is nil")
	}

	return getGrid(ctx, s.DB, `SELECT body FROM grids WHERE name = ?;`, name)
}

func listGrids(ctx context.Context, db *sql.DB, query string) ([]ports.GridInfo, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list grids: query grids table: %w", err)
	}
	defer rows.Close()

	grids := make([]ports.GridInfo, 0, 16)
	for rows.Next() {
		var info ports.GridInfo
		if err := rows.Scan(&info.Name, &info.DeclaredRows, &info.DeclaredCols); err != nil {
			return nil, fmt.Errorf("list grids: scan row: %w", err)
		}
		grids = append(grids, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list grids: row iteration: %w", err)
	}

	return grids, nil
}

func getGrid(ctx context.Context, db *sql.DB, query, name string) (*domain.Grid, error) {
	var body string
	err := db.QueryRowContext(ctx, query, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get grid %q: %w", name, ports.ErrGridNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get grid %q: query grids table: %w", name, err)
	}

	g, err := gridfile.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("get grid %q: %w", name, err)
	}
	return g, nil
}
