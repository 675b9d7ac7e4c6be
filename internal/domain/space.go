package domain

import "time"

// Space represents a bookable coworking space
type Space struct {
	ID          int64
	Type        SpaceType
	Name        string
	Description *string
	Capacity    int // seats; availability limit for shared coworking
	HourlyPrice float64
	DailyPrice  float64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RemainingSpots returns how many same-day bookings still fit into the
// space's capacity
func (s *Space) RemainingSpots(activeBookingsCount int) int {
	remaining := s.Capacity - activeBookingsCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// HasCapacityFor returns true if one more same-day booking fits
func (s *Space) HasCapacityFor(activeBookingsCount int) bool {
	return activeBookingsCount < s.Capacity
}
