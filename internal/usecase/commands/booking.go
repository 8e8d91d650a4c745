package commands

import (
	"context"

	"staybook/internal/domain/booking"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrApartmentNotFound    = errs.New("apartment not found")
	ErrApartmentUnavailable = errs.New("apartment is not available for booking")
	ErrInvalidDateRange     = errs.New("invalid date range")
	ErrCapacityExceeded     = errs.New("guest count exceeds apartment capacity")
	ErrMissingGuestInfo     = errs.New("guest contact info is missing or invalid")
	ErrDateConflict         = errs.New("requested dates conflict with an existing booking")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrInvalidStatusValue   = errs.New("invalid booking status")
	ErrDomainValidation     = errs.New("domain validation error")
	ErrStoreFailure         = errs.New("database operation failed")
)

type BookingCommands interface {
	// Admit runs the full booking admission: validation, nights/price
	// computation, overlap checks and persistence, all inside one
	// transaction that locks the apartment row.
	Admit(ctx context.Context, req reqdto.CreateBookingRequest, userID *uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
	}
}

func (c *bookingCommandsImpl) Admit(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID *uuid.UUID,
) (*queries.BookingView, error) {
	var bookingID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		apt, err := tx.Apartments().LockByID(ctx, tx.DB(), req.Apartment)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrApartmentNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		if !apt.IsAvailable {
			return ErrApartmentUnavailable
		}

		stay, err := req.Stay()
		if err != nil {
			return errs.Mark(err, ErrInvalidDateRange)
		}

		aptEntity := apt.ToDomain()
		if !aptEntity.CanHost(req.Guests) {
			return ErrCapacityExceeded
		}

		guest, err := booking.NewGuestInfo(req.GuestName, req.GuestEmail, req.GuestPhone)
		if err != nil {
			return errs.Mark(err, ErrMissingGuestInfo)
		}

		// Cached ranges on the apartment first, then the ledger as a
		// backstop against writers that bypassed the cache.
		booked, err := tx.Apartments().BookedDates(ctx, tx.DB(), apt.ID)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		for _, r := range booked {
			if r.Overlaps(stay) {
				return ErrDateConflict
			}
		}

		overlapping, err := tx.Bookings().FindOverlapping(ctx, tx.DB(), apt.ID, stay)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if len(overlapping) > 0 {
			return ErrDateConflict
		}

		entity, err := c.factory.CreateBooking(aptEntity, userID, stay, req.Guests, guest, req.TotalPrice)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDateConflict
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		if err := tx.Apartments().AppendBookedDates(ctx, tx.DB(), apt.ID, id, stay); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (c *bookingCommandsImpl) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status string,
) (*queries.BookingView, error) {
	newStatus, err := booking.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusValue)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		// No legal-transition checking: any status may move to any status.
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, newStatus); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDateConflict
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		wasCancelled := booking.Status(current.Status).IsCancelled()
		switch {
		case newStatus.IsCancelled() && !wasCancelled:
			// Cancellation frees the range for new admissions.
			if err := tx.Apartments().ReleaseBookedDates(ctx, tx.DB(), id); err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
		case !newStatus.IsCancelled() && wasCancelled:
			// Reactivation reclaims the range; the overlap constraint on the
			// ledger has already rejected the update if the range was taken.
			stay, err := booking.NewStayRange(current.CheckIn, current.CheckOut)
			if err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
			if err := tx.Apartments().AppendBookedDates(ctx, tx.DB(), current.ApartmentID, id, stay); err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BookingByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		if err := tx.Apartments().ReleaseBookedDates(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if err := tx.Bookings().Delete(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
}
