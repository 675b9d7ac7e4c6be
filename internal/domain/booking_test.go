package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_OccupiedHours_Hourly(t *testing.T) {
	booking := &Booking{
		BookingType:   BookingHourly,
		StartHour:     10,
		DurationHours: 3,
		Status:        StatusConfirmed,
	}

	assert.Equal(t, []int{10, 11, 12}, booking.OccupiedHours())
}

func TestBooking_OccupiedHours_DailyBlocksWholeWindow(t *testing.T) {
	booking := &Booking{
		BookingType: BookingDaily,
		StartHour:   OpenHour,
		Status:      StatusConfirmed,
	}

	hours := booking.OccupiedHours()

	assert.Len(t, hours, SlotsPerDay)
	assert.Equal(t, OpenHour, hours[0])
	assert.Equal(t, CloseHour-1, hours[len(hours)-1])
}

func TestBooking_OccupiedHours_CancelledTakesNothing(t *testing.T) {
	booking := &Booking{
		BookingType:   BookingHourly,
		StartHour:     10,
		DurationHours: 3,
		Status:        StatusCancelled,
	}

	assert.Empty(t, booking.OccupiedHours())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	cancelledAt := time.Now()

	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled, CancelledAt: &cancelledAt}).CanBeCancelled())
}

func TestGenerateConfirmationCode_Format(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateConfirmationCode()

		assert.NoError(t, err)
		assert.True(t, IsValidConfirmationCode(code), "unexpected code format: %q", code)
	}
}
