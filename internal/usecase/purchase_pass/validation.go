package purchase_pass

import (
	"fmt"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PassType == "" {
		return fmt.Errorf("%w: passType is required", ErrInvalidInput)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i, day := range req.ScheduledDays {
		if day.IsZero() {
			return fmt.Errorf("%w: scheduled day #%d has no date", ErrInvalidInput, i+1)
		}
		if day.Before(today) {
			return fmt.Errorf("%w: scheduled day #%d must not be in the past", ErrInvalidInput, i+1)
		}
	}

	for i, slot := range req.ScheduledSlots {
		if err := validateSlot(slot, today); err != nil {
			return fmt.Errorf("%w: scheduled slot #%d: %v", ErrInvalidInput, i+1, err)
		}
	}

	return nil
}

func validateSlot(slot OfficeSlot, today time.Time) error {
	if !slot.SpaceType.IsOffice() {
		return fmt.Errorf("space type %q is not a private office", slot.SpaceType)
	}
	if slot.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if slot.Date.Before(today) {
		return fmt.Errorf("date must not be in the past")
	}
	if slot.DurationHours < domain.MinDurationHours || slot.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("durationHours must be between %d and %d",
			domain.MinDurationHours, domain.MaxDurationHours)
	}
	if slot.StartHour < domain.OpenHour || slot.StartHour+slot.DurationHours > domain.CloseHour {
		return fmt.Errorf("slot must fit into operating hours %02d:00-%02d:00",
			domain.OpenHour, domain.CloseHour)
	}
	return nil
}

// validateQuotas проверяет, что запланированные визиты не превышают
// квоты покупаемого тарифа
func validateQuotas(pass *domain.Pass, req *Request) error {
	if len(req.ScheduledDays) > pass.ServicesIncluded.DayPasses {
		return fmt.Errorf("%w: %d days scheduled, pass includes %d",
			ErrQuotaExceeded, len(req.ScheduledDays), pass.ServicesIncluded.DayPasses)
	}

	totalHours := 0
	for _, slot := range req.ScheduledSlots {
		totalHours += slot.DurationHours
	}
	if totalHours > pass.ServicesIncluded.PrivateOfficeHours {
		return fmt.Errorf("%w: %d office hours scheduled, pass includes %d",
			ErrQuotaExceeded, totalHours, pass.ServicesIncluded.PrivateOfficeHours)
	}

	return nil
}

// scheduledOfficeHours суммарная длительность запланированных визитов в офисы
func scheduledOfficeHours(slots []OfficeSlot) int {
	total := 0
	for _, slot := range slots {
		total += slot.DurationHours
	}
	return total
}
