package repositories

import (
	"context"
	"database/sql"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/platform/obs"
	"drone-route-service/internal/ports"
	"errors"
)

// SQLGridRepository is a Postgres-backed GridRepository (pgx stdlib driver).
type SQLGridRepository struct {
	DB *sql.DB
}

func NewSQLGridRepository(db *sql.DB) *SQLGridRepository {
	return &SQLGridRepository{DB: db}
}

func (s *SQLGridRepository) ListGrids(ctx context.Context) (_ []ports.GridInfo, err error) {
	defer obs.Time(ctx, "grids.ListGrids")(&err)

	if s.DB == nil {
		return nil, errors.New("sql grid repository: db is nil")
	}

	return listGrids(ctx, s.DB, `
	SELECT name, declared_rows, declared_cols
	FROM grids
	ORDER BY name;
	`)
}

func (s *SQLGridRepository) GetGrid(ctx context.Context, name string) (_ *domain.Grid, err error) {
	defer obs.Time(ctx, "grids.GetGrid")(&err)

	if s.DB == nil {
		return nil, errors.New("sql grid repository: db is nil")
	}

	return getGrid(ctx, s.DB, `SELECT body FROM grids WHERE name = $1;`, name)
}
