package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidStayRange  = errors.New("check-out must be after check-in")
	ErrMissingGuestName  = errors.New("guest name is required")
	ErrGuestNameTooShort = errors.New("guest name must be at least 2 characters")
	ErrGuestNameTooLong  = errors.New("guest name cannot exceed 100 characters")
	ErrMissingGuestEmail = errors.New("guest email is required")
	ErrInvalidGuestEmail = errors.New("guest email is not a valid email address")
	ErrMissingGuestPhone = errors.New("guest phone is required")
)

const (
	MinGuestNameLength = 2
	MaxGuestNameLength = 100
)

// StayRange is a half-open day range [checkIn, checkOut): the check-out day
// is not occupied, so back-to-back stays may share a turnover day.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange normalizes both instants to midnight UTC and requires the
// normalized check-out to fall strictly after the normalized check-in.
func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := NormalizeDay(checkIn)
	out := NormalizeDay(checkOut)

	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}

	return StayRange{checkIn: in, checkOut: out}, nil
}

// NormalizeDay strips the time-of-day component, anchoring the date at
// midnight UTC regardless of the input's zone.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

// Nights is the count of occupied nights, always at least 1 for a valid range.
func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night.
// Abutting ranges (one's check-out equals the other's check-in) do not overlap.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

func (r StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format("2006-01-02"), r.checkOut.Format("2006-01-02"))
}

var guestEmailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// GuestInfo carries the contact details required on every booking.
type GuestInfo struct {
	name  string
	email string
	phone string
}

func NewGuestInfo(name, email, phone string) (GuestInfo, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)

	switch {
	case name == "":
		return GuestInfo{}, ErrMissingGuestName
	case len(name) < MinGuestNameLength:
		return GuestInfo{}, ErrGuestNameTooShort
	case len(name) > MaxGuestNameLength:
		return GuestInfo{}, ErrGuestNameTooLong
	case email == "":
		return GuestInfo{}, ErrMissingGuestEmail
	case !guestEmailRegex.MatchString(email):
		return GuestInfo{}, ErrInvalidGuestEmail
	case phone == "":
		return GuestInfo{}, ErrMissingGuestPhone
	}

	return GuestInfo{name: name, email: email, phone: phone}, nil
}

func (g GuestInfo) Name() string  { return g.name }
func (g GuestInfo) Email() string { return g.email }
func (g GuestInfo) Phone() string { return g.phone }

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}
