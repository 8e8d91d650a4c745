package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"staybook/internal/domain/apartment"
	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"
)

type ApartmentRepository struct{}

func NewApartmentRepository() *ApartmentRepository {
	return &ApartmentRepository{}
}

const insertApartmentSQL = `
INSERT INTO apartments (
    id, title, location, description, price_cents, bedrooms, bathrooms,
    capacity, category_id, amenities, features, images, main_image, is_available
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

func (r *ApartmentRepository) Create(ctx context.Context, dbtx db.DBTX, apt *apartment.Apartment) (uuid.UUID, error) {
	var id pgtype.UUID
	row := dbtx.QueryRow(ctx, insertApartmentSQL,
		pgconv.UUIDToPgtype(apt.ID()),
		apt.Title(),
		apt.Location(),
		apt.Description(),
		apt.PriceCents(),
		apt.Bedrooms(),
		apt.Bathrooms(),
		apt.Capacity(),
		pgconv.UUIDToPgtype(apt.CategoryID()),
		apt.Amenities(),
		apt.Features(),
		apt.Images(),
		apt.MainImage(),
		apt.IsAvailable(),
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create apartment", err, classify(err))
	}
	return uuid.UUID(id.Bytes), nil
}

const updateApartmentSQL = `
UPDATE apartments SET
    title = $2, location = $3, description = $4, price_cents = $5,
    bedrooms = $6, bathrooms = $7, capacity = $8, category_id = $9,
    amenities = $10, features = $11, images = $12, main_image = $13,
    is_available = $14, updated_at = now()
WHERE id = $1`

func (r *ApartmentRepository) Update(ctx context.Context, dbtx db.DBTX, apt *apartment.Apartment) error {
	tag, err := dbtx.Exec(ctx, updateApartmentSQL,
		pgconv.UUIDToPgtype(apt.ID()),
		apt.Title(),
		apt.Location(),
		apt.Description(),
		apt.PriceCents(),
		apt.Bedrooms(),
		apt.Bathrooms(),
		apt.Capacity(),
		pgconv.UUIDToPgtype(apt.CategoryID()),
		apt.Amenities(),
		apt.Features(),
		apt.Images(),
		apt.MainImage(),
		apt.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update apartment", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("apartment not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteApartmentSQL = `DELETE FROM apartments WHERE id = $1`

func (r *ApartmentRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteApartmentSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete apartment", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("apartment not found", nil, infra.KindNotFound)
	}
	return nil
}

const lockApartmentSQL = `
SELECT id, title, location, description, price_cents, bedrooms, bathrooms,
       capacity, category_id, amenities, features, images, main_image,
       is_available, created_at, updated_at
FROM apartments
WHERE id = $1
FOR UPDATE`

// LockByID serializes admissions per apartment: concurrent transactions on
// the same row queue on the lock and observe each other's committed writes.
func (r *ApartmentRepository) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ApartmentSnapshot, error) {
	var (
		aptID                pgtype.UUID
		categoryID           pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
		snap                 shared.ApartmentSnapshot
	)
	err := dbtx.QueryRow(ctx, lockApartmentSQL, pgconv.UUIDToPgtype(id)).Scan(
		&aptID, &snap.Title, &snap.Location, &snap.Description, &snap.PriceCents,
		&snap.Bedrooms, &snap.Bathrooms, &snap.Capacity, &categoryID,
		&snap.Amenities, &snap.Features, &snap.Images, &snap.MainImage,
		&snap.IsAvailable, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("apartment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock apartment", err)
	}

	snap.ID = uuid.UUID(aptID.Bytes)
	snap.CategoryID = uuid.UUID(categoryID.Bytes)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

const bookedDatesSQL = `
SELECT check_in, check_out
FROM apartment_booked_dates
WHERE apartment_id = $1
ORDER BY check_in`

func (r *ApartmentRepository) BookedDates(ctx context.Context, dbtx db.DBTX, apartmentID uuid.UUID) ([]booking.StayRange, error) {
	rows, err := dbtx.Query(ctx, bookedDatesSQL, pgconv.UUIDToPgtype(apartmentID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked dates", err)
	}
	defer rows.Close()

	var ranges []booking.StayRange
	for rows.Next() {
		var checkIn, checkOut pgtype.Date
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked dates", err)
		}
		stay, err := booking.NewStayRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
		if err != nil {
			return nil, infra.WrapRepoErr("stored booked range is invalid", err)
		}
		ranges = append(ranges, stay)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked dates", err)
	}
	return ranges, nil
}

const appendBookedDatesSQL = `
INSERT INTO apartment_booked_dates (booking_id, apartment_id, check_in, check_out)
VALUES ($1, $2, $3, $4)`

func (r *ApartmentRepository) AppendBookedDates(
	ctx context.Context,
	dbtx db.DBTX,
	apartmentID, bookingID uuid.UUID,
	stay booking.StayRange,
) error {
	_, err := dbtx.Exec(ctx, appendBookedDatesSQL,
		pgconv.UUIDToPgtype(bookingID),
		pgconv.UUIDToPgtype(apartmentID),
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append booked dates", err, classify(err))
	}
	return nil
}

const releaseBookedDatesSQL = `DELETE FROM apartment_booked_dates WHERE booking_id = $1`

// ReleaseBookedDates is idempotent: releasing an already-released booking
// is not an error.
func (r *ApartmentRepository) ReleaseBookedDates(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, releaseBookedDatesSQL, pgconv.UUIDToPgtype(bookingID))
	if err != nil {
		return infra.WrapRepoErr("failed to release booked dates", err)
	}
	return nil
}
