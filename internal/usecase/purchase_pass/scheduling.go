package purchase_pass

import (
	"context"
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// maxCodeAttempts максимум попыток сгенерировать уникальный код
const maxCodeAttempts = 5

// uniqueConfirmationCode генерирует код подтверждения, отсутствующий в базе
func uniqueConfirmationCode(ctx context.Context, repo BookingRepository) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := domain.GenerateConfirmationCode()
		if err != nil {
			return "", err
		}

		exists, err := repo.ExistsByConfirmationCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check confirmation code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("no unique confirmation code after %d attempts", maxCodeAttempts)
}

// ensureDayFits проверяет вместимость общего коворкинга на дату
func ensureDayFits(space *domain.Space, bookings []*domain.Booking) error {
	active := 0
	for _, booking := range bookings {
		if booking.IsActive() {
			active++
		}
	}
	if !space.HasCapacityFor(active) {
		return ErrSlotNotAvailable
	}
	return nil
}

// ensureSlotFits проверяет, что почасовой визит в офис не пересекается
// с существующими бронированиями
func ensureSlotFits(slot OfficeSlot, bookings []*domain.Booking) error {
	occupied := make(map[int]struct{}, domain.SlotsPerDay)
	for _, booking := range bookings {
		for _, hour := range booking.OccupiedHours() {
			occupied[hour] = struct{}{}
		}
	}

	for hour := slot.StartHour; hour < slot.StartHour+slot.DurationHours; hour++ {
		if _, busy := occupied[hour]; busy {
			return ErrSlotNotAvailable
		}
	}
	return nil
}
