package shared

import (
	"context"

	"staybook/internal/domain/apartment"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/category"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command reads for validation outside
	// transactions
	CommandReads() CommandReads
}

type Tx interface {
	Apartments() ApartmentRepository
	Bookings() BookingRepository
	Categories() CategoryRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ApartmentByID(ctx context.Context, id uuid.UUID) (*ApartmentSnapshot, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ApartmentHasActiveBookings(ctx context.Context, apartmentID uuid.UUID) (bool, error)
	CategoryInUse(ctx context.Context, categoryID uuid.UUID) (bool, error)
}

type ApartmentRepository interface {
	Create(ctx context.Context, db db.DBTX, apt *apartment.Apartment) (uuid.UUID, error)
	Update(ctx context.Context, db db.DBTX, apt *apartment.Apartment) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
	// LockByID reads the apartment row FOR UPDATE, serializing concurrent
	// admissions per apartment.
	LockByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*ApartmentSnapshot, error)
	BookedDates(ctx context.Context, db db.DBTX, apartmentID uuid.UUID) ([]booking.StayRange, error)
	AppendBookedDates(ctx context.Context, db db.DBTX, apartmentID, bookingID uuid.UUID, stay booking.StayRange) error
	ReleaseBookedDates(ctx context.Context, db db.DBTX, bookingID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, bk *booking.Booking) (uuid.UUID, error)
	// FindOverlapping returns non-cancelled bookings on the apartment whose
	// half-open ranges intersect the given stay.
	FindOverlapping(ctx context.Context, db db.DBTX, apartmentID uuid.UUID, stay booking.StayRange) ([]BookingSnapshot, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, db db.DBTX, cat *category.Category) (uuid.UUID, error)
	Update(ctx context.Context, db db.DBTX, cat *category.Category) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
}
