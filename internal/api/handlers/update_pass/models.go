package update_pass

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

// UpdatePassRequest HTTP request model
type UpdatePassRequest struct {
	Name             *string                  `json:"name,omitempty"`
	Description      *string                  `json:"description,omitempty"`
	Price            *float64                 `json:"price,omitempty"`
	ValidityDays     *int                     `json:"validityDays,omitempty"`
	ServicesIncluded *ServicesIncludedRequest `json:"servicesIncluded,omitempty"`
	Features         []string                 `json:"features,omitempty"`
	IsActive         *bool                    `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePassRequest) ToServiceRequest(userID int64) *models.UpdatePassRequest {
	req := &models.UpdatePassRequest{
		UserID:       userID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		ValidityDays: r.ValidityDays,
		Features:     r.Features,
		IsActive:     r.IsActive,
	}

	if r.ServicesIncluded != nil {
		req.ServicesIncluded = &domain.ServiceBalance{
			DayPasses:          r.ServicesIncluded.DayPasses,
			PrivateOfficeHours: r.ServicesIncluded.PrivateOfficeHours,
			MeetingRoomHours:   r.ServicesIncluded.MeetingRoomHours,
		}
	}

	return req
}
