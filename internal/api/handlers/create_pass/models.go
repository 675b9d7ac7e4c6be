package create_pass

import (
	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/catalog/models"
)

// ServicesIncludedRequest квоты услуг тарифа
type ServicesIncludedRequest struct {
	DayPasses          int `json:"dayPasses"`
	PrivateOfficeHours int `json:"privateOfficeHours"`
	MeetingRoomHours   int `json:"meetingRoomHours"`
}

// CreatePassRequest HTTP request model
type CreatePassRequest struct {
	Type             string                  `json:"type"`
	Name             string                  `json:"name"`
	Description      *string                 `json:"description,omitempty"`
	Price            float64                 `json:"price"`
	ValidityDays     int                     `json:"validityDays"`
	ServicesIncluded ServicesIncludedRequest `json:"servicesIncluded"`
	Features         []string                `json:"features,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreatePassRequest) ToServiceRequest(userID int64) *models.CreatePassRequest {
	return &models.CreatePassRequest{
		UserID:       userID,
		Type:         r.Type,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		ValidityDays: r.ValidityDays,
		ServicesIncluded: domain.ServiceBalance{
			DayPasses:          r.ServicesIncluded.DayPasses,
			PrivateOfficeHours: r.ServicesIncluded.PrivateOfficeHours,
			MeetingRoomHours:   r.ServicesIncluded.MeetingRoomHours,
		},
		Features: r.Features,
	}
}
