//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	dombooking "staybook/internal/domain/booking"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"
)

type BookingBuilder struct {
	ID                uuid.UUID
	ApartmentID       uuid.UUID
	ApartmentTitle    string
	ApartmentLocation string
	UserID            *uuid.UUID
	CheckIn           time.Time
	CheckOut          time.Time
	Guests            int
	GuestName         string
	GuestEmail        string
	GuestPhone        string
	TotalPrice        *int64
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:                uuid.New(),
		ApartmentID:       uuid.New(),
		ApartmentTitle:    "Sunny Two-Bedroom Flat",
		ApartmentLocation: "14 Harbour Street, Lisbon",
		CheckIn:           time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:          time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC),
		Guests:            2,
		GuestName:         "Maria Silva",
		GuestEmail:        "maria@example.com",
		GuestPhone:        "+351-912-000-111",
		Status:            dombooking.StatusPending.String(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildStay() (dombooking.StayRange, error) {
	return dombooking.NewStayRange(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) BuildGuestInfo() (dombooking.GuestInfo, error) {
	return dombooking.NewGuestInfo(b.GuestName, b.GuestEmail, b.GuestPhone)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Apartment:  b.ApartmentID,
		CheckIn:    b.CheckIn.Format("2006-01-02"),
		CheckOut:   b.CheckOut.Format("2006-01-02"),
		Guests:     b.Guests,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		TotalPrice: b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildSnapshot() shared.BookingSnapshot {
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return shared.BookingSnapshot{
		ID:          b.ID,
		ApartmentID: b.ApartmentID,
		UserID:      b.UserID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Guests:      b.Guests,
		Nights:      nights,
		TotalCents:  int64(nights) * 15000,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		GuestPhone:  b.GuestPhone,
		Status:      b.Status,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &queries.BookingView{
		ID:                b.ID,
		ApartmentID:       b.ApartmentID,
		ApartmentTitle:    b.ApartmentTitle,
		ApartmentLocation: b.ApartmentLocation,
		UserID:            b.UserID,
		CheckIn:           b.CheckIn,
		CheckOut:          b.CheckOut,
		Guests:            b.Guests,
		Nights:            nights,
		TotalCents:        int64(nights) * 15000,
		GuestName:         b.GuestName,
		GuestEmail:        b.GuestEmail,
		GuestPhone:        b.GuestPhone,
		Status:            b.Status,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
