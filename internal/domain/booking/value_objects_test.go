//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/booking"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, in, out time.Time) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange(in, out)
	require.NoError(t, err)
	return stay
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := booking.NewStayRange(day(2026, 1, 10), day(2026, 1, 13))
		require.NoError(t, err)
		assert.Equal(t, day(2026, 1, 10), stay.CheckIn())
		assert.Equal(t, day(2026, 1, 13), stay.CheckOut())
	})

	t.Run("normalizes time of day to midnight UTC", func(t *testing.T) {
		in := time.Date(2026, 1, 10, 15, 30, 45, 0, time.UTC)
		out := time.Date(2026, 1, 13, 9, 5, 0, 0, time.UTC)

		stay, err := booking.NewStayRange(in, out)
		require.NoError(t, err)
		assert.Equal(t, day(2026, 1, 10), stay.CheckIn())
		assert.Equal(t, day(2026, 1, 13), stay.CheckOut())
	})

	t.Run("normalizes zones before comparing", func(t *testing.T) {
		zone := time.FixedZone("UTC+5", 5*3600)
		in := time.Date(2026, 1, 10, 2, 0, 0, 0, zone) // still Jan 9 in UTC

		stay, err := booking.NewStayRange(in, day(2026, 1, 13))
		require.NoError(t, err)
		assert.Equal(t, day(2026, 1, 9), stay.CheckIn())
	})

	t.Run("check-out equal to check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(day(2026, 1, 10), day(2026, 1, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(day(2026, 1, 13), day(2026, 1, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("same day different hours collapses to empty range", func(t *testing.T) {
		in := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
		out := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
		_, err := booking.NewStayRange(in, out)
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})
}

func TestStayRangeNights(t *testing.T) {
	cases := []struct {
		name   string
		in     time.Time
		out    time.Time
		nights int
	}{
		{"single night", day(2026, 1, 10), day(2026, 1, 11), 1},
		{"three nights", day(2026, 1, 10), day(2026, 1, 13), 3},
		{"across month boundary", day(2026, 1, 30), day(2026, 2, 2), 3},
		{"across a leap day", day(2028, 2, 28), day(2028, 3, 1), 2},
		{"full year", day(2026, 1, 1), day(2027, 1, 1), 365},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.nights, mustStay(t, tc.in, tc.out).Nights())
		})
	}
}

func TestStayRangeOverlaps(t *testing.T) {
	base := mustStay(t, day(2026, 2, 10), day(2026, 2, 15))

	cases := []struct {
		name     string
		other    booking.StayRange
		overlaps bool
	}{
		{"identical range", mustStay(t, day(2026, 2, 10), day(2026, 2, 15)), true},
		{"fully inside", mustStay(t, day(2026, 2, 11), day(2026, 2, 13)), true},
		{"fully surrounding", mustStay(t, day(2026, 2, 8), day(2026, 2, 20)), true},
		{"overlapping the start", mustStay(t, day(2026, 2, 8), day(2026, 2, 11)), true},
		{"overlapping the end", mustStay(t, day(2026, 2, 14), day(2026, 2, 18)), true},
		{"sharing one night", mustStay(t, day(2026, 2, 14), day(2026, 2, 15)), true},
		{"abutting before", mustStay(t, day(2026, 2, 5), day(2026, 2, 10)), false},
		{"abutting after", mustStay(t, day(2026, 2, 15), day(2026, 2, 20)), false},
		{"disjoint before", mustStay(t, day(2026, 2, 1), day(2026, 2, 5)), false},
		{"disjoint after", mustStay(t, day(2026, 2, 20), day(2026, 2, 25)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			// Overlap is symmetric
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}

func TestStayRangeString(t *testing.T) {
	stay := mustStay(t, day(2026, 1, 10), day(2026, 1, 13))
	assert.Equal(t, "[2026-01-10,2026-01-13)", stay.String())
}

func TestNewGuestInfo(t *testing.T) {
	t.Run("valid guest info", func(t *testing.T) {
		guest, err := booking.NewGuestInfo("Maria Silva", "maria@example.com", "+351-912-000-111")
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", guest.Name())
		assert.Equal(t, "maria@example.com", guest.Email())
		assert.Equal(t, "+351-912-000-111", guest.Phone())
	})

	t.Run("email is lowercased and trimmed", func(t *testing.T) {
		guest, err := booking.NewGuestInfo("Maria Silva", "  Maria@Example.COM ", "+351-912-000-111")
		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", guest.Email())
	})

	cases := []struct {
		name  string
		guest string
		email string
		phone string
		errIs error
	}{
		{"missing name", "", "maria@example.com", "123", booking.ErrMissingGuestName},
		{"whitespace-only name", "   ", "maria@example.com", "123", booking.ErrMissingGuestName},
		{"name too short", "M", "maria@example.com", "123", booking.ErrGuestNameTooShort},
		{"name too long", string(make([]byte, booking.MaxGuestNameLength+1)), "maria@example.com", "123", booking.ErrGuestNameTooLong},
		{"missing email", "Maria Silva", "", "123", booking.ErrMissingGuestEmail},
		{"malformed email", "Maria Silva", "not-an-email", "123", booking.ErrInvalidGuestEmail},
		{"email without domain dot", "Maria Silva", "maria@example", "123", booking.ErrInvalidGuestEmail},
		{"missing phone", "Maria Silva", "maria@example.com", "", booking.ErrMissingGuestPhone},
		{"whitespace-only phone", "Maria Silva", "maria@example.com", "  ", booking.ErrMissingGuestPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewGuestInfo(tc.guest, tc.email, tc.phone)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestStatus(t *testing.T) {
	t.Run("all declared statuses are valid", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.StatusPending,
			booking.StatusConfirmed,
			booking.StatusCheckedIn,
			booking.StatusCheckedOut,
			booking.StatusCancelled,
		} {
			assert.True(t, s.IsValid(), s.String())
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := booking.NewStatus("archived")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("only cancelled reports cancelled", func(t *testing.T) {
		assert.True(t, booking.StatusCancelled.IsCancelled())
		assert.False(t, booking.StatusPending.IsCancelled())
		assert.False(t, booking.StatusCheckedOut.IsCancelled())
	})
}
