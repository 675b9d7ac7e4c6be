package domain

// PriceFor computes the price of a booking. Pass redemptions are always free
// at booking time: the cost was paid when the pass was purchased. Monthly
// bookings are billed as a fixed number of daily rates.
func PriceFor(space *Space, bookingType BookingType, durationHours int, passUsed bool) float64 {
	if passUsed {
		return 0
	}

	switch bookingType {
	case BookingHourly:
		if durationHours < 0 {
			return 0
		}
		return space.HourlyPrice * float64(durationHours)
	case BookingDaily:
		return space.DailyPrice
	case BookingMonthly:
		return space.DailyPrice * MonthlyDayMultiplier
	default:
		return 0
	}
}
