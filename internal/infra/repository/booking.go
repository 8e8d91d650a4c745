package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingSQL = `
INSERT INTO bookings (
    id, apartment_id, user_id, check_in, check_out,
    guests, nights, total_cents, guest_name, guest_email, guest_phone, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, bk *booking.Booking) (uuid.UUID, error) {
	var id pgtype.UUID
	row := dbtx.QueryRow(ctx, insertBookingSQL,
		pgconv.UUIDToPgtype(bk.ID()),
		pgconv.UUIDToPgtype(bk.ApartmentID()),
		pgconv.UUIDPtrToPgtype(bk.UserID()),
		pgconv.DateToPgtype(bk.Stay().CheckIn()),
		pgconv.DateToPgtype(bk.Stay().CheckOut()),
		bk.Guests(),
		bk.Nights(),
		bk.TotalPrice().Cents(),
		bk.Guest().Name(),
		bk.Guest().Email(),
		bk.Guest().Phone(),
		bk.Status().String(),
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, classify(err))
	}
	return uuid.UUID(id.Bytes), nil
}

const findOverlappingSQL = `
SELECT id, apartment_id, user_id, check_in, check_out,
       guests, nights, total_cents, guest_name, guest_email, guest_phone, status
FROM bookings
WHERE apartment_id = $1
  AND status <> 'cancelled'
  AND check_in < $3
  AND check_out > $2`

func (r *BookingRepository) FindOverlapping(
	ctx context.Context,
	dbtx db.DBTX,
	apartmentID uuid.UUID,
	stay booking.StayRange,
) ([]shared.BookingSnapshot, error) {
	rows, err := dbtx.Query(ctx, findOverlappingSQL,
		pgconv.UUIDToPgtype(apartmentID),
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	defer rows.Close()

	var snapshots []shared.BookingSnapshot
	for rows.Next() {
		snap, err := scanBookingSnapshot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping booking", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overlapping bookings", err)
	}
	return snapshots, nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusSQL, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteBookingSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBookingSnapshot(row pgx.Row) (shared.BookingSnapshot, error) {
	var (
		id, apartmentID    pgtype.UUID
		userID             pgtype.UUID
		checkIn, checkOut  pgtype.Date
		guests, nights     int
		totalCents         int64
		name, email, phone string
		status             string
	)
	err := row.Scan(
		&id, &apartmentID, &userID, &checkIn, &checkOut,
		&guests, &nights, &totalCents, &name, &email, &phone, &status,
	)
	if err != nil {
		return shared.BookingSnapshot{}, err
	}

	return shared.BookingSnapshot{
		ID:          uuid.UUID(id.Bytes),
		ApartmentID: uuid.UUID(apartmentID.Bytes),
		UserID:      pgconv.UUIDPtrFromPgtype(userID),
		CheckIn:     pgconv.DateFromPgtype(checkIn),
		CheckOut:    pgconv.DateFromPgtype(checkOut),
		Guests:      guests,
		Nights:      nights,
		TotalCents:  totalCents,
		GuestName:   name,
		GuestEmail:  email,
		GuestPhone:  phone,
		Status:      status,
	}, nil
}
