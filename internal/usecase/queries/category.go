package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCategoryNotFound = errs.New("category not found")

type CategoryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	List(ctx context.Context) ([]*CategoryView, error)
}

type CategoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	FindAll(ctx context.Context) ([]*CategoryView, error)
}

type categoryQueriesImpl struct {
	store CategoryReadStore
}

func NewCategoryQueries(store CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{store: store}
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]*CategoryView, error) {
	return q.store.FindAll(ctx)
}
