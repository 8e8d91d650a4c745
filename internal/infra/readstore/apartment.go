package readstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"staybook/internal/infra"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"
)

type ApartmentReadStore struct {
	pool *pgxpool.Pool
}

func NewApartmentReadStore(pool *pgxpool.Pool) *ApartmentReadStore {
	return &ApartmentReadStore{pool: pool}
}

const apartmentViewSQL = `
SELECT a.id, a.title, a.location, a.description, a.price_cents,
       a.bedrooms, a.bathrooms, a.capacity, a.category_id, c.name,
       a.amenities, a.features, a.images, a.main_image, a.is_available,
       a.created_at, a.updated_at
FROM apartments a
JOIN categories c ON c.id = a.category_id`

func (s *ApartmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ApartmentView, error) {
	row := s.pool.QueryRow(ctx, apartmentViewSQL+" WHERE a.id = $1", pgconv.UUIDToPgtype(id))
	view, err := scanApartmentView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("apartment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find apartment", err)
	}
	return view, nil
}

func (s *ApartmentReadStore) FindAll(ctx context.Context, filter queries.ApartmentFilter) ([]*queries.ApartmentView, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CategoryID != nil {
		args = append(args, pgconv.UUIDToPgtype(*filter.CategoryID))
		conds = append(conds, "a.category_id = $"+strconv.Itoa(len(args)))
	}
	if filter.IsAvailable != nil {
		args = append(args, *filter.IsAvailable)
		conds = append(conds, "a.is_available = $"+strconv.Itoa(len(args)))
	}

	sql := apartmentViewSQL
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY a.created_at DESC"

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query apartments", err)
	}
	defer rows.Close()

	views := make([]*queries.ApartmentView, 0)
	for rows.Next() {
		view, err := scanApartmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan apartment", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read apartments", err)
	}
	return views, nil
}

func scanApartmentView(row pgx.Row) (*queries.ApartmentView, error) {
	var (
		view                 queries.ApartmentView
		id, categoryID       pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &view.Title, &view.Location, &view.Description, &view.PriceCents,
		&view.Bedrooms, &view.Bathrooms, &view.Capacity, &categoryID, &view.CategoryName,
		&view.Amenities, &view.Features, &view.Images, &view.MainImage, &view.IsAvailable,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	view.CategoryID = uuid.UUID(categoryID.Bytes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
