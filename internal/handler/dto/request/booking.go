package request

import (
	"errors"
	"strings"
	"time"

	"staybook/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrUnparsableDate = errors.New("date must be YYYY-MM-DD or RFC 3339")

// Date layouts accepted on the wire, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

type CreateBookingRequest struct {
	Apartment uuid.UUID `json:"apartment" binding:"required"`
	// Both legacy and current field names are accepted; the *Date variants
	// win only when the short names are absent.
	CheckIn      string `json:"checkIn,omitempty"`
	CheckInDate  string `json:"checkInDate,omitempty"`
	CheckOut     string `json:"checkOut,omitempty"`
	CheckOutDate string `json:"checkOutDate,omitempty"`
	Guests       int    `json:"guests"`
	GuestName    string `json:"guestName"`
	GuestEmail   string `json:"guestEmail"`
	GuestPhone   string `json:"guestPhone"`
	TotalPrice   *int64 `json:"totalPrice,omitempty"`
}

// Stay resolves the date fields into a normalized half-open stay range.
func (r CreateBookingRequest) Stay() (booking.StayRange, error) {
	checkIn, err := parseDate(firstNonEmpty(r.CheckIn, r.CheckInDate))
	if err != nil {
		return booking.StayRange{}, err
	}
	checkOut, err := parseDate(firstNonEmpty(r.CheckOut, r.CheckOutDate))
	if err != nil {
		return booking.StayRange{}, err
	}
	return booking.NewStayRange(checkIn, checkOut)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparsableDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparsableDate
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
