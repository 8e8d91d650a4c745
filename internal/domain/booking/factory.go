package booking

import (
	"staybook/internal/domain/apartment"

	"github.com/google/uuid"
)

// Factory builds admitted bookings. It owns the nights and price computation;
// overlap checks happen in the admission use case against the stores.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// CreateBooking validates the request against the apartment and returns a
// pending booking. priceOverride, when set, replaces the computed total.
func (f *Factory) CreateBooking(
	apt *apartment.Apartment,
	userID *uuid.UUID,
	stay StayRange,
	guests int,
	guest GuestInfo,
	priceOverride *int64,
) (*Booking, error) {
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if !apt.CanHost(guests) {
		return nil, ErrCapacityExceeded
	}

	nights := stay.Nights()
	totalCents := apt.PriceCents() * int64(nights)
	if priceOverride != nil {
		totalCents = *priceOverride
	}
	if totalCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:          uuid.New(),
		apartmentID: apt.ID(),
		userID:      userID,
		stay:        stay,
		guests:      guests,
		nights:      nights,
		totalPrice:  NewMoney(totalCents),
		guest:       guest,
		status:      StatusPending,
	}, nil
}
