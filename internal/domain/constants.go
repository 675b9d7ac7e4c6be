package domain

// Operating window: twelve one-hour slots per day, from 08:00 up to
// (but not including) 20:00.
const (
	OpenHour    = 8
	CloseHour   = 20
	SlotsPerDay = CloseHour - OpenHour
)

// Pricing constants
const (
	// MonthlyDayMultiplier fixed number of billable days in a monthly
	// booking. Not calendar-aware.
	MonthlyDayMultiplier = 20
)

// Business validation constants
const (
	MinDurationHours            = 1
	MaxDurationHours            = SlotsPerDay
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxGuestsPerBooking         = 20
	ConfirmationCodeLength      = 6
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слоты и вместимость
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, учитываемых при расчёте доступности
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
