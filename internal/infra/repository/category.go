package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"staybook/internal/domain/category"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

const insertCategorySQL = `
INSERT INTO categories (id, name, description)
VALUES ($1, $2, $3)
RETURNING id`

func (r *CategoryRepository) Create(ctx context.Context, dbtx db.DBTX, cat *category.Category) (uuid.UUID, error) {
	var id pgtype.UUID
	row := dbtx.QueryRow(ctx, insertCategorySQL,
		pgconv.UUIDToPgtype(cat.ID()),
		cat.Name(),
		cat.Description(),
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err, classify(err))
	}
	return uuid.UUID(id.Bytes), nil
}

const updateCategorySQL = `
UPDATE categories SET name = $2, description = $3, updated_at = now() WHERE id = $1`

func (r *CategoryRepository) Update(ctx context.Context, dbtx db.DBTX, cat *category.Category) error {
	tag, err := dbtx.Exec(ctx, updateCategorySQL,
		pgconv.UUIDToPgtype(cat.ID()),
		cat.Name(),
		cat.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteCategorySQL = `DELETE FROM categories WHERE id = $1`

func (r *CategoryRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteCategorySQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
