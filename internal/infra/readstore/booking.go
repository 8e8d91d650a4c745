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

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewSQL = `
SELECT b.id, b.apartment_id, a.title, a.location, b.user_id,
       b.check_in, b.check_out, b.guests, b.nights, b.total_cents,
       b.guest_name, b.guest_email, b.guest_phone, b.status,
       b.created_at, b.updated_at
FROM bookings b
JOIN apartments a ON a.id = b.apartment_id`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.pool.QueryRow(ctx, bookingViewSQL+" WHERE b.id = $1", pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByGuestEmail(ctx context.Context, email string) ([]*queries.BookingView, error) {
	return s.findMany(ctx, bookingViewSQL+" WHERE b.guest_email = $1 ORDER BY b.created_at DESC", email)
}

func (s *BookingReadStore) FindByGuestPhone(ctx context.Context, phone string) ([]*queries.BookingView, error) {
	return s.findMany(ctx, bookingViewSQL+" WHERE b.guest_phone = $1 ORDER BY b.created_at DESC", phone)
}

func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	return s.findMany(ctx, bookingViewSQL+" ORDER BY b.created_at DESC")
}

func (s *BookingReadStore) findMany(ctx context.Context, sql string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view                 queries.BookingView
		id, apartmentID      pgtype.UUID
		userID               pgtype.UUID
		checkIn, checkOut    pgtype.Date
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &apartmentID, &view.ApartmentTitle, &view.ApartmentLocation, &userID,
		&checkIn, &checkOut, &view.Guests, &view.Nights, &view.TotalCents,
		&view.GuestName, &view.GuestEmail, &view.GuestPhone, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	view.ApartmentID = uuid.UUID(apartmentID.Bytes)
	view.UserID = pgconv.UUIDPtrFromPgtype(userID)
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
