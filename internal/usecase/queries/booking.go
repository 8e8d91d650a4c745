package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListForGuest returns bookings matching the guest's own contact info.
	// Email takes precedence; when both are empty the result is empty rather
	// than leaking the full ledger.
	ListForGuest(ctx context.Context, email, phone string) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuestEmail(ctx context.Context, email string) ([]*BookingView, error)
	FindByGuestPhone(ctx context.Context, phone string) ([]*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForGuest(ctx context.Context, email, phone string) ([]*BookingView, error) {
	switch {
	case email != "":
		return q.store.FindByGuestEmail(ctx, email)
	case phone != "":
		return q.store.FindByGuestPhone(ctx, phone)
	default:
		return []*BookingView{}, nil
	}
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.store.FindAll(ctx)
}
