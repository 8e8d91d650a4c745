package readstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"staybook/internal/infra"
	"staybook/internal/usecase/queries"
)

type SearchReadStore struct {
	pool *pgxpool.Pool
}

func NewSearchReadStore(pool *pgxpool.Pool) *SearchReadStore {
	return &SearchReadStore{pool: pool}
}

// Sortable columns are whitelisted; anything else falls back to created_at.
var searchSortColumns = map[string]string{
	"price":      "a.price_cents",
	"bedrooms":   "a.bedrooms",
	"capacity":   "a.capacity",
	"title":      "a.title",
	"created_at": "a.created_at",
}

func (s *SearchReadStore) Search(ctx context.Context, params queries.SearchParams) (*queries.SearchResult, error) {
	whereClause, args := buildSearchFilter(params)

	var total int64
	countSQL := "SELECT count(*) FROM apartments a JOIN categories c ON c.id = a.category_id" + whereClause
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count search results", err)
	}

	sql := apartmentViewSQL + whereClause + buildSearchOrder(params)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)
	sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search apartments", err)
	}
	defer rows.Close()

	views := make([]queries.ApartmentView, 0)
	for rows.Next() {
		view, err := scanApartmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan search result", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read search results", err)
	}

	return &queries.SearchResult{
		Count:      len(views),
		Total:      total,
		Apartments: views,
	}, nil
}

// buildSearchFilter renders the WHERE clause and its positional arguments.
// Kept separate from Search so the SQL generation is testable without a
// database.
func buildSearchFilter(params queries.SearchParams) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if params.Query != "" {
		add("(a.title ILIKE $%[1]d OR a.description ILIKE $%[1]d)", "%"+params.Query+"%")
	}
	if params.Location != "" {
		add("a.location ILIKE $%d", "%"+params.Location+"%")
	}
	if params.Category != "" {
		// The category filter takes either a category id or a name.
		if id, err := uuid.Parse(params.Category); err == nil {
			add("a.category_id = $%d", id)
		} else {
			add("c.name ILIKE $%d", params.Category)
		}
	}
	if params.MinPrice != nil {
		add("a.price_cents >= $%d", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		add("a.price_cents <= $%d", *params.MaxPrice)
	}
	if params.Bedrooms != nil {
		add("a.bedrooms >= $%d", *params.Bedrooms)
	}
	if params.Bathrooms != nil {
		add("a.bathrooms >= $%d", *params.Bathrooms)
	}
	if params.MinCapacity != nil {
		add("a.capacity >= $%d", *params.MinCapacity)
	}
	if params.MaxCapacity != nil {
		add("a.capacity <= $%d", *params.MaxCapacity)
	}
	if params.IsAvailable != nil {
		add("a.is_available = $%d", *params.IsAvailable)
	}
	if len(params.Amenities) > 0 {
		add("a.amenities @> $%d", params.Amenities)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildSearchOrder(params queries.SearchParams) string {
	col, ok := searchSortColumns[params.SortBy]
	if !ok {
		col = "a.created_at"
	}
	dir := "ASC"
	if strings.EqualFold(params.SortOrder, "desc") || (params.SortBy == "" && params.SortOrder == "") {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir
}
