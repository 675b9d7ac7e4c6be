package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSpace() *Space {
	return &Space{
		ID:          1,
		Type:        SpacePrivateOffice4,
		Name:        "Office 4",
		Capacity:    4,
		HourlyPrice: 1200,
		DailyPrice:  6000,
		IsActive:    true,
	}
}

func TestPriceFor_Hourly(t *testing.T) {
	space := testSpace()

	assert.Equal(t, 1200.0, PriceFor(space, BookingHourly, 1, false))
	assert.Equal(t, 3600.0, PriceFor(space, BookingHourly, 3, false))
	assert.Equal(t, 14400.0, PriceFor(space, BookingHourly, 12, false))
}

func TestPriceFor_Daily(t *testing.T) {
	space := testSpace()

	// Дневная ставка не зависит от длительности
	assert.Equal(t, 6000.0, PriceFor(space, BookingDaily, 0, false))
	assert.Equal(t, 6000.0, PriceFor(space, BookingDaily, 5, false))
}

func TestPriceFor_Monthly(t *testing.T) {
	space := testSpace()

	assert.Equal(t, 6000.0*MonthlyDayMultiplier, PriceFor(space, BookingMonthly, 0, false))
}

func TestPriceFor_PassRedemptionIsFree(t *testing.T) {
	space := testSpace()

	assert.Equal(t, 0.0, PriceFor(space, BookingHourly, 3, true))
	assert.Equal(t, 0.0, PriceFor(space, BookingDaily, 0, true))
	assert.Equal(t, 0.0, PriceFor(space, BookingMonthly, 0, true))
}

func TestPriceFor_UnknownTypeIsZero(t *testing.T) {
	space := testSpace()

	assert.Equal(t, 0.0, PriceFor(space, BookingType("weekly"), 2, false))
}
