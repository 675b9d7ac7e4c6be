package get_availability

import (
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationHours < domain.MinDurationHours {
		return fmt.Errorf("%w: durationHours must be at least %d", ErrInvalidInput, domain.MinDurationHours)
	}

	return nil
}
