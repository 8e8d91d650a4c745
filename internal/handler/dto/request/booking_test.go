//go:build unit

package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/booking"
)

func TestCreateBookingRequestStay(t *testing.T) {
	t.Run("parses plain dates", func(t *testing.T) {
		req := CreateBookingRequest{CheckIn: "2026-01-10", CheckOut: "2026-01-13"}

		stay, err := req.Stay()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), stay.CheckIn())
		assert.Equal(t, time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC), stay.CheckOut())
	})

	t.Run("accepts RFC 3339 timestamps and truncates to the day", func(t *testing.T) {
		req := CreateBookingRequest{
			CheckIn:  "2026-01-10T15:04:05Z",
			CheckOut: "2026-01-13T09:30:00Z",
		}

		stay, err := req.Stay()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), stay.CheckIn())
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("legacy date field names are honored", func(t *testing.T) {
		req := CreateBookingRequest{CheckInDate: "2026-01-10", CheckOutDate: "2026-01-13"}

		stay, err := req.Stay()
		require.NoError(t, err)
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("short names win over legacy names", func(t *testing.T) {
		req := CreateBookingRequest{
			CheckIn:      "2026-01-10",
			CheckInDate:  "2026-02-01",
			CheckOut:     "2026-01-13",
			CheckOutDate: "2026-02-04",
		}

		stay, err := req.Stay()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), stay.CheckIn())
	})

	t.Run("missing dates are unparsable", func(t *testing.T) {
		_, err := CreateBookingRequest{CheckOut: "2026-01-13"}.Stay()
		assert.ErrorIs(t, err, ErrUnparsableDate)

		_, err = CreateBookingRequest{CheckIn: "2026-01-10"}.Stay()
		assert.ErrorIs(t, err, ErrUnparsableDate)
	})

	t.Run("garbage dates are unparsable", func(t *testing.T) {
		req := CreateBookingRequest{CheckIn: "10/01/2026", CheckOut: "2026-01-13"}
		_, err := req.Stay()
		assert.ErrorIs(t, err, ErrUnparsableDate)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		req := CreateBookingRequest{CheckIn: "2026-01-13", CheckOut: "2026-01-10"}
		_, err := req.Stay()
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		req := CreateBookingRequest{CheckIn: " 2026-01-10 ", CheckOut: "2026-01-13"}
		stay, err := req.Stay()
		require.NoError(t, err)
		assert.Equal(t, 3, stay.Nights())
	})
}
