package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrApartmentNotFound = errs.New("apartment not found")

type ApartmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error)
	List(ctx context.Context, filter ApartmentFilter) ([]*ApartmentView, error)
}

type ApartmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error)
	FindAll(ctx context.Context, filter ApartmentFilter) ([]*ApartmentView, error)
}

type apartmentQueriesImpl struct {
	store ApartmentReadStore
}

func NewApartmentQueries(store ApartmentReadStore) ApartmentQueries {
	return &apartmentQueriesImpl{store: store}
}

func (q *apartmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *apartmentQueriesImpl) List(ctx context.Context, filter ApartmentFilter) ([]*ApartmentView, error) {
	return q.store.FindAll(ctx, filter)
}
