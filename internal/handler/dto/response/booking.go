package response

import (
	"time"

	"github.com/google/uuid"

	"staybook/internal/usecase/queries"
)

type BookingResponse struct {
	ID                uuid.UUID  `json:"id"`
	ApartmentID       uuid.UUID  `json:"apartmentId"`
	ApartmentTitle    string     `json:"apartmentTitle"`
	ApartmentLocation string     `json:"apartmentLocation"`
	UserID            *uuid.UUID `json:"userId,omitempty"`
	CheckIn           time.Time  `json:"checkIn"`
	CheckOut          time.Time  `json:"checkOut"`
	Guests            int        `json:"guests"`
	Nights            int        `json:"nights"`
	TotalPrice        int64      `json:"totalPrice"`
	GuestName         string     `json:"guestName"`
	GuestEmail        string     `json:"guestEmail"`
	GuestPhone        string     `json:"guestPhone"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                rm.ID,
		ApartmentID:       rm.ApartmentID,
		ApartmentTitle:    rm.ApartmentTitle,
		ApartmentLocation: rm.ApartmentLocation,
		UserID:            rm.UserID,
		CheckIn:           rm.CheckIn,
		CheckOut:          rm.CheckOut,
		Guests:            rm.Guests,
		Nights:            rm.Nights,
		TotalPrice:        rm.TotalCents,
		GuestName:         rm.GuestName,
		GuestEmail:        rm.GuestEmail,
		GuestPhone:        rm.GuestPhone,
		Status:            rm.Status,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	responses := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromBookingView(rm)
	}
	return responses
}
