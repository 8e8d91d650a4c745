package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes; the
// admission path takes its own row lock on the apartment.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	apartmentRepo *repository.ApartmentRepository
	bookingRepo   *repository.BookingRepository
	categoryRepo  *repository.CategoryRepository
	userRepo      *repository.UserRepository
	commandReads  shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Apartments() shared.ApartmentRepository {
	if t.apartmentRepo == nil {
		t.apartmentRepo = repository.NewApartmentRepository()
	}
	return t.apartmentRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Categories() shared.CategoryRepository {
	if t.categoryRepo == nil {
		t.categoryRepo = repository.NewCategoryRepository()
	}
	return t.categoryRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads serves write-side validation lookups. Inside a transaction it
// runs on the transaction's connection and sees uncommitted writes.
type commandReads struct {
	dbtx db.DBTX
}

const apartmentSnapshotSQL = `
SELECT id, title, location, description, price_cents, bedrooms, bathrooms,
       capacity, category_id, amenities, features, images, main_image,
       is_available, created_at, updated_at
FROM apartments
WHERE id = $1`

func (r *commandReads) ApartmentByID(ctx context.Context, id uuid.UUID) (*shared.ApartmentSnapshot, error) {
	var (
		aptID, categoryID    pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
		snap                 shared.ApartmentSnapshot
	)
	err := r.dbtx.QueryRow(ctx, apartmentSnapshotSQL, pgconv.UUIDToPgtype(id)).Scan(
		&aptID, &snap.Title, &snap.Location, &snap.Description, &snap.PriceCents,
		&snap.Bedrooms, &snap.Bathrooms, &snap.Capacity, &categoryID,
		&snap.Amenities, &snap.Features, &snap.Images, &snap.MainImage,
		&snap.IsAvailable, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("apartment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read apartment", err)
	}
	snap.ID = uuid.UUID(aptID.Bytes)
	snap.CategoryID = uuid.UUID(categoryID.Bytes)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

const categorySnapshotSQL = `
SELECT id, name, description, created_at, updated_at
FROM categories
WHERE id = $1`

func (r *commandReads) CategoryByID(ctx context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	var (
		catID                pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
		snap                 shared.CategorySnapshot
	)
	err := r.dbtx.QueryRow(ctx, categorySnapshotSQL, pgconv.UUIDToPgtype(id)).Scan(
		&catID, &snap.Name, &snap.Description, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read category", err)
	}
	snap.ID = uuid.UUID(catID.Bytes)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

const bookingSnapshotSQL = `
SELECT id, apartment_id, user_id, check_in, check_out,
       guests, nights, total_cents, guest_name, guest_email, guest_phone, status
FROM bookings
WHERE id = $1`

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		bkID, apartmentID pgtype.UUID
		userID            pgtype.UUID
		checkIn, checkOut pgtype.Date
		snap              shared.BookingSnapshot
	)
	err := r.dbtx.QueryRow(ctx, bookingSnapshotSQL, pgconv.UUIDToPgtype(id)).Scan(
		&bkID, &apartmentID, &userID, &checkIn, &checkOut,
		&snap.Guests, &snap.Nights, &snap.TotalCents,
		&snap.GuestName, &snap.GuestEmail, &snap.GuestPhone, &snap.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking", err)
	}
	snap.ID = uuid.UUID(bkID.Bytes)
	snap.ApartmentID = uuid.UUID(apartmentID.Bytes)
	snap.UserID = pgconv.UUIDPtrFromPgtype(userID)
	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	return &snap, nil
}

const apartmentHasActiveBookingsSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE apartment_id = $1 AND status <> 'cancelled' AND check_out > CURRENT_DATE
)`

func (r *commandReads) ApartmentHasActiveBookings(ctx context.Context, apartmentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.dbtx.QueryRow(ctx, apartmentHasActiveBookingsSQL, pgconv.UUIDToPgtype(apartmentID)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active bookings", err)
	}
	return exists, nil
}

const categoryInUseSQL = `
SELECT EXISTS (SELECT 1 FROM apartments WHERE category_id = $1)`

func (r *commandReads) CategoryInUse(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var exists bool
	err := r.dbtx.QueryRow(ctx, categoryInUseSQL, pgconv.UUIDToPgtype(categoryID)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check category usage", err)
	}
	return exists, nil
}
