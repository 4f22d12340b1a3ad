package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	booking "github.com/develtlab/barber-booking/internal/domain/booking"
	"github.com/develtlab/barber-booking/internal/models"
)

func bookingAt(t *testing.T, day time.Time, hour, minute int) models.Booking {
	t.Helper()
	return models.Booking{
		Date:   time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()),
		Status: string(booking.StatusConfirmed),
	}
}

func TestTimeCatalog(t *testing.T) {
	assert.Len(t, booking.TimeCatalog, 21)
	assert.Equal(t, "08:00", booking.TimeCatalog[0])
	assert.Equal(t, "18:00", booking.TimeCatalog[len(booking.TimeCatalog)-1])
}

func TestParseLabel(t *testing.T) {
	hour, minute, ok := booking.ParseLabel("09:30")
	require.True(t, ok)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 30, minute)

	for _, bad := range []string{"", "9h30", "25:00", "10:75", "10"} {
		_, _, ok := booking.ParseLabel(bad)
		assert.False(t, ok, "label %q", bad)
	}
}

func TestAvailableSlots(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	now := time.Date(2026, time.March, 10, 14, 5, 0, 0, loc)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("future day keeps the whole catalog", func(t *testing.T) {
		slots := booking.AvailableSlots(booking.TimeCatalog, nil, tomorrow, now)
		assert.Equal(t, booking.TimeCatalog, slots)
	})

	t.Run("today drops slots before the current instant", func(t *testing.T) {
		slots := booking.AvailableSlots(booking.TimeCatalog, nil, today, now)

		assert.Equal(t, []string{
			"14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00",
		}, slots)
	})

	t.Run("slot equal to now is kept", func(t *testing.T) {
		exact := time.Date(2026, time.March, 10, 14, 30, 0, 0, loc)
		slots := booking.AvailableSlots(booking.TimeCatalog, nil, today, exact)
		assert.Contains(t, slots, "14:30")
		assert.NotContains(t, slots, "14:00")
	})

	t.Run("booked slot is excluded and nothing else", func(t *testing.T) {
		bookings := []models.Booking{bookingAt(t, tomorrow, 9, 0)}

		slots := booking.AvailableSlots(booking.TimeCatalog, bookings, tomorrow, now)

		assert.NotContains(t, slots, "09:00")
		assert.Contains(t, slots, "09:30")
		assert.Len(t, slots, len(booking.TimeCatalog)-1)
	})

	t.Run("duplicate bookings at the same slot exclude it once", func(t *testing.T) {
		bookings := []models.Booking{
			bookingAt(t, tomorrow, 10, 30),
			bookingAt(t, tomorrow, 10, 30),
		}

		slots := booking.AvailableSlots(booking.TimeCatalog, bookings, tomorrow, now)

		assert.NotContains(t, slots, "10:30")
		assert.Len(t, slots, len(booking.TimeCatalog)-1)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		bookings := []models.Booking{
			bookingAt(t, today, 15, 0),
			bookingAt(t, today, 17, 30),
		}

		first := booking.AvailableSlots(booking.TimeCatalog, bookings, today, now)
		second := booking.AvailableSlots(booking.TimeCatalog, bookings, today, now)

		assert.Equal(t, first, second)
	})

	t.Run("output is an order-preserving subsequence of the catalog", func(t *testing.T) {
		bookings := []models.Booking{
			bookingAt(t, tomorrow, 8, 0),
			bookingAt(t, tomorrow, 12, 30),
			bookingAt(t, tomorrow, 18, 0),
		}

		slots := booking.AvailableSlots(booking.TimeCatalog, bookings, tomorrow, now)

		idx := 0
		for _, label := range slots {
			found := false
			for ; idx < len(booking.TimeCatalog); idx++ {
				if booking.TimeCatalog[idx] == label {
					found = true
					idx++
					break
				}
			}
			require.True(t, found, "label %q out of catalog order", label)
		}
	})

	t.Run("fully past day is not rejected by the filter itself", func(t *testing.T) {
		yesterday := today.AddDate(0, 0, -1)

		slots := booking.AvailableSlots(booking.TimeCatalog, nil, yesterday, now)

		// a recusa de dias passados é responsabilidade do caso de uso
		assert.Equal(t, booking.TimeCatalog, slots)
	})

	t.Run("booking timezone is normalized before comparing", func(t *testing.T) {
		// 12:00 UTC == 09:00 em São Paulo nessa data
		utcBooking := models.Booking{
			Date: time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC),
		}

		slots := booking.AvailableSlots(booking.TimeCatalog, []models.Booking{utcBooking}, tomorrow, now)

		assert.NotContains(t, slots, "09:00")
	})
}
