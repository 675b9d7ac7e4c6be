package get_availability

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	getAvailability "github.com/m04kA/CWS-BookingService/internal/usecase/get_availability"
)

// IntervalResponse свободный интервал для почасового бронирования
type IntervalResponse struct {
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Label     string `json:"label"` // "08:00 - 11:00"
}

// CapacityResponse доступность по вместимости (общий коворкинг)
type CapacityResponse struct {
	Available      bool `json:"available"`
	RemainingSpots int  `json:"remainingSpots"`
	Capacity       int  `json:"capacity"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SpaceID       int64              `json:"spaceId"`
	SpaceType     string             `json:"spaceType"`
	Date          string             `json:"date"`
	DurationHours int                `json:"durationHours"`
	Intervals     []IntervalResponse `json:"intervals,omitempty"`
	Capacity      *CapacityResponse  `json:"capacity,omitempty"`
}

// ToUseCaseRequest формирует запрос use case (с парсингом даты)
func ToUseCaseRequest(userID, spaceID int64, dateStr string, durationHours int) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		UserID:        userID,
		SpaceID:       spaceID,
		Date:          date,
		DurationHours: durationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		SpaceID:       resp.SpaceID,
		SpaceType:     string(resp.SpaceType),
		Date:          resp.Date.Format(domain.DateFormat),
		DurationHours: resp.DurationHours,
	}

	for _, interval := range resp.Intervals {
		out.Intervals = append(out.Intervals, IntervalResponse{
			StartHour: interval.StartHour,
			EndHour:   interval.EndHour,
			Label:     interval.Label(),
		})
	}

	if resp.Capacity != nil {
		out.Capacity = &CapacityResponse{
			Available:      resp.Capacity.Available,
			RemainingSpots: resp.Capacity.RemainingSpots,
			Capacity:       resp.Capacity.Capacity,
		}
	}

	return out
}
