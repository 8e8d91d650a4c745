package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount = errors.New("at least 1 guest is required")
	ErrCapacityExceeded  = errors.New("guest count exceeds apartment capacity")
	ErrNegativePrice     = errors.New("total price cannot be negative")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

type Booking struct {
	id          uuid.UUID
	apartmentID uuid.UUID
	userID      *uuid.UUID
	stay        StayRange
	guests      int
	nights      int
	totalPrice  Money
	guest       GuestInfo
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructBooking(
	id, apartmentID uuid.UUID,
	userID *uuid.UUID,
	stay StayRange,
	guests, nights int,
	totalPrice Money,
	guest GuestInfo,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		apartmentID: apartmentID,
		userID:      userID,
		stay:        stay,
		guests:      guests,
		nights:      nights,
		totalPrice:  totalPrice,
		guest:       guest,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Occupies reports whether the booking still claims its date range. Cancelled
// bookings release the range.
func (b *Booking) Occupies() bool {
	return b.status != StatusCancelled
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ApartmentID() uuid.UUID { return b.apartmentID }
func (b *Booking) UserID() *uuid.UUID     { return b.userID }
func (b *Booking) Stay() StayRange        { return b.stay }
func (b *Booking) Guests() int            { return b.guests }
func (b *Booking) Nights() int            { return b.nights }
func (b *Booking) TotalPrice() Money      { return b.totalPrice }
func (b *Booking) Guest() GuestInfo       { return b.guest }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
