package domain

import "fmt"

// Interval is a bookable run of consecutive hour slots, [StartHour, EndHour)
type Interval struct {
	StartHour int
	EndHour   int
}

// Label returns the interval formatted for display, e.g. "08:00 - 11:00"
func (i Interval) Label() string {
	return fmt.Sprintf("%s - %s", FormatHour(i.StartHour), FormatHour(i.EndHour))
}

// CapacityStatus is the availability answer for capacity-based spaces
type CapacityStatus struct {
	Available      bool
	RemainingSpots int
	Capacity       int
}

// FormatHour formats an integer hour as "HH:00"
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
