package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

func hourlyBooking(startHour, durationHours int) *domain.Booking {
	return &domain.Booking{
		SpaceType:     domain.SpacePrivateOffice4,
		BookingType:   domain.BookingHourly,
		StartHour:     startHour,
		DurationHours: durationHours,
		Status:        domain.StatusConfirmed,
	}
}

func TestAvailableIntervals_EmptyDay(t *testing.T) {
	intervals := availableIntervals(nil, 1, domain.OpenHour)

	require.Len(t, intervals, domain.SlotsPerDay)
	assert.Equal(t, domain.OpenHour, intervals[0].StartHour)
	assert.Equal(t, domain.CloseHour-1, intervals[len(intervals)-1].StartHour)
}

func TestAvailableIntervals_SkipsOccupiedRuns(t *testing.T) {
	// Занято 10:00-13:00
	bookings := []*domain.Booking{hourlyBooking(10, 3)}

	intervals := availableIntervals(bookings, 2, domain.OpenHour)

	// Допустимые старты двухчасового интервала: 8 и 13..18
	starts := make([]int, 0, len(intervals))
	for _, interval := range intervals {
		starts = append(starts, interval.StartHour)
	}
	assert.Equal(t, []int{8, 13, 14, 15, 16, 17, 18}, starts)
}

func TestAvailableIntervals_Ascending(t *testing.T) {
	bookings := []*domain.Booking{hourlyBooking(12, 1)}

	intervals := availableIntervals(bookings, 1, domain.OpenHour)

	for i := 1; i < len(intervals); i++ {
		assert.Less(t, intervals[i-1].StartHour, intervals[i].StartHour)
	}
}

func TestAvailableIntervals_DailyBookingBlocksEverything(t *testing.T) {
	bookings := []*domain.Booking{
		{
			BookingType: domain.BookingDaily,
			StartHour:   domain.OpenHour,
			Status:      domain.StatusConfirmed,
		},
	}

	assert.Empty(t, availableIntervals(bookings, 1, domain.OpenHour))
}

func TestAvailableIntervals_CancelledBookingFreesSlots(t *testing.T) {
	cancelled := hourlyBooking(10, 3)
	cancelled.Status = domain.StatusCancelled

	intervals := availableIntervals([]*domain.Booking{cancelled}, 1, domain.OpenHour)

	assert.Len(t, intervals, domain.SlotsPerDay)
}

func TestAvailableIntervals_DurationLongerThanWindow(t *testing.T) {
	assert.Empty(t, availableIntervals(nil, domain.SlotsPerDay+1, domain.OpenHour))
}

func TestAvailableIntervals_FullWindowFits(t *testing.T) {
	intervals := availableIntervals(nil, domain.SlotsPerDay, domain.OpenHour)

	require.Len(t, intervals, 1)
	assert.Equal(t, domain.OpenHour, intervals[0].StartHour)
	assert.Equal(t, domain.CloseHour, intervals[0].EndHour)
}

func TestAvailableIntervals_FromHourCutsEarlierStarts(t *testing.T) {
	intervals := availableIntervals(nil, 1, 14)

	require.Len(t, intervals, 6)
	assert.Equal(t, 14, intervals[0].StartHour)
}

func TestFirstCandidateHour(t *testing.T) {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	// Будущая дата - окно открыто целиком
	now := time.Date(2026, 2, 9, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, domain.OpenHour, firstCandidateHour(date, now))

	// Сегодня до открытия - результат ниже OpenHour, availableIntervals
	// поднимает его до начала рабочего окна
	now = time.Date(2026, 2, 10, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, firstCandidateHour(date, now))
	assert.Len(t, availableIntervals(nil, 1, firstCandidateHour(date, now)), domain.SlotsPerDay)

	// Сегодня в середине дня - уже начавшиеся часы исключены
	now = time.Date(2026, 2, 10, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, 14, firstCandidateHour(date, now))
}

func TestCapacityStatus(t *testing.T) {
	space := &domain.Space{
		Type:     domain.SpaceSharedCoworking,
		Capacity: 3,
	}

	bookings := []*domain.Booking{
		{BookingType: domain.BookingDaily, Status: domain.StatusConfirmed},
		{BookingType: domain.BookingDaily, Status: domain.StatusPending},
		{BookingType: domain.BookingDaily, Status: domain.StatusCancelled},
	}

	status := capacityStatus(space, bookings)

	assert.True(t, status.Available)
	assert.Equal(t, 1, status.RemainingSpots)
	assert.Equal(t, 3, status.Capacity)
}

func TestCapacityStatus_Full(t *testing.T) {
	space := &domain.Space{
		Type:     domain.SpaceSharedCoworking,
		Capacity: 1,
	}

	bookings := []*domain.Booking{
		{BookingType: domain.BookingDaily, Status: domain.StatusConfirmed},
	}

	status := capacityStatus(space, bookings)

	assert.False(t, status.Available)
	assert.Equal(t, 0, status.RemainingSpots)
}
