package domain

import "time"

// ServiceBalance is a bundle of service quotas carried by a pass
type ServiceBalance struct {
	DayPasses          int `json:"day_passes"`
	PrivateOfficeHours int `json:"private_office_hours"`
	MeetingRoomHours   int `json:"meeting_room_hours"`
}

// IsZero returns true when every quota is exhausted
func (b ServiceBalance) IsZero() bool {
	return b.DayPasses == 0 && b.PrivateOfficeHours == 0 && b.MeetingRoomHours == 0
}

// Pass represents a purchasable plan from the admin-managed catalog
type Pass struct {
	ID               int64
	Type             string
	Name             string
	Description      *string
	Price            float64
	ValidityDays     int
	ServicesIncluded ServiceBalance
	Features         []string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ActivePass is a user's live instance of a purchased pass
type ActivePass struct {
	Type              string         `json:"type"`
	ServicesRemaining ServiceBalance `json:"services_remaining"`
	ExpiresAt         time.Time      `json:"expires_at"`
}

// IsExpired returns true if the pass validity window has ended.
// Expiry is time-based only; a zero balance never expires a pass.
func (p ActivePass) IsExpired(now time.Time) bool {
	return p.ExpiresAt.Before(dateOnly(now))
}

// EligiblePasses returns the passes whose remaining balance suffices for a
// booking of the given space type and duration. Expired passes are skipped.
// Pure function: the input slice is not modified.
func EligiblePasses(passes []ActivePass, spaceType SpaceType, durationHours int, now time.Time) []ActivePass {
	eligible := make([]ActivePass, 0, len(passes))

	for _, pass := range passes {
		if pass.IsExpired(now) {
			continue
		}
		if passCovers(pass, spaceType, durationHours) {
			eligible = append(eligible, pass)
		}
	}

	return eligible
}

func passCovers(pass ActivePass, spaceType SpaceType, durationHours int) bool {
	if spaceType == SpaceSharedCoworking {
		return pass.ServicesRemaining.DayPasses > 0
	}
	return pass.ServicesRemaining.PrivateOfficeHours >= durationHours
}

// DebitPasses returns a new pass list where the first pass matching passType
// is decremented for a redemption: one day pass for shared coworking, or the
// full booked duration in office hours. Balances never go below zero and
// non-matching passes pass through unchanged. A pass is never removed here,
// even at zero balance.
func DebitPasses(passes []ActivePass, passType string, spaceType SpaceType, durationHours int) []ActivePass {
	updated := make([]ActivePass, len(passes))
	debited := false

	for i, pass := range passes {
		updated[i] = pass
		if debited || pass.Type != passType {
			continue
		}

		if spaceType == SpaceSharedCoworking {
			updated[i].ServicesRemaining.DayPasses = floorAtZero(pass.ServicesRemaining.DayPasses - 1)
		} else {
			updated[i].ServicesRemaining.PrivateOfficeHours = floorAtZero(pass.ServicesRemaining.PrivateOfficeHours - durationHours)
		}
		debited = true
	}

	return updated
}

// ResidualAfterUpfrontSchedule computes the balance left on a freshly
// purchased pass after the buyer scheduled some day passes and office hours
// upfront. Meeting-room hours are never scheduled at purchase time and carry
// over untouched.
func ResidualAfterUpfrontSchedule(pass *Pass, scheduledDays, scheduledHours int) ServiceBalance {
	return ServiceBalance{
		DayPasses:          floorAtZero(pass.ServicesIncluded.DayPasses - scheduledDays),
		PrivateOfficeHours: floorAtZero(pass.ServicesIncluded.PrivateOfficeHours - scheduledHours),
		MeetingRoomHours:   pass.ServicesIncluded.MeetingRoomHours,
	}
}

// PruneExpiredPasses drops passes whose validity window has ended.
// Zero-balance passes are kept: pruning is time-based only.
func PruneExpiredPasses(passes []ActivePass, now time.Time) []ActivePass {
	kept := make([]ActivePass, 0, len(passes))
	for _, pass := range passes {
		if pass.IsExpired(now) {
			continue
		}
		kept = append(kept, pass)
	}
	return kept
}

func floorAtZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
