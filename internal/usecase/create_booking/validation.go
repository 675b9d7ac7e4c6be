package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// now используется для проверки, что дата бронирования не в прошлом.
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if !req.BookingType.IsValid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.BookingType)
	}

	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	// Бронировать можно начиная с сегодняшнего дня
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.BookingDate.Before(today) {
		return fmt.Errorf("%w: bookingDate must not be in the past", ErrInvalidInput)
	}

	if req.BookingType == domain.BookingHourly {
		if err := validateHourly(req); err != nil {
			return err
		}
	}

	if len(req.Guests) > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: at most %d guests per booking", ErrInvalidInput, domain.MaxGuestsPerBooking)
	}

	for i, guest := range req.Guests {
		if guest.Name == "" {
			return fmt.Errorf("%w: guest #%d has empty name", ErrInvalidInput, i+1)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateHourly проверяет параметры почасового бронирования:
// интервал должен целиком помещаться в рабочее окно
func validateHourly(req *Request) error {
	if req.StartHour == nil {
		return fmt.Errorf("%w: startHour is required for hourly bookings", ErrInvalidInput)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be between %d and %d",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	start := *req.StartHour
	if start < domain.OpenHour || start+req.DurationHours > domain.CloseHour {
		return fmt.Errorf("%w: booking must fit into operating hours %02d:00-%02d:00",
			ErrInvalidInput, domain.OpenHour, domain.CloseHour)
	}

	return nil
}
