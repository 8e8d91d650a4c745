package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"staybook/internal/infra"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"
)

type CategoryReadStore struct {
	pool *pgxpool.Pool
}

func NewCategoryReadStore(pool *pgxpool.Pool) *CategoryReadStore {
	return &CategoryReadStore{pool: pool}
}

const categoryViewSQL = `
SELECT id, name, description, created_at, updated_at
FROM categories`

func (s *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	row := s.pool.QueryRow(ctx, categoryViewSQL+" WHERE id = $1", pgconv.UUIDToPgtype(id))
	view, err := scanCategoryView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category", err)
	}
	return view, nil
}

func (s *CategoryReadStore) FindAll(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := s.pool.Query(ctx, categoryViewSQL+" ORDER BY name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query categories", err)
	}
	defer rows.Close()

	views := make([]*queries.CategoryView, 0)
	for rows.Next() {
		view, err := scanCategoryView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read categories", err)
	}
	return views, nil
}

func scanCategoryView(row pgx.Row) (*queries.CategoryView, error) {
	var (
		view                 queries.CategoryView
		id                   pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &view.Name, &view.Description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.ID = uuid.UUID(id.Bytes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
