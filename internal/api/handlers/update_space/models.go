package update_space

import (
	"github.com/m04kA/CWS-BookingService/internal/service/catalog/models"
)

// UpdateSpaceRequest HTTP request model
type UpdateSpaceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	HourlyPrice *float64 `json:"hourlyPrice,omitempty"`
	DailyPrice  *float64 `json:"dailyPrice,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSpaceRequest) ToServiceRequest(userID int64) *models.UpdateSpaceRequest {
	return &models.UpdateSpaceRequest{
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		HourlyPrice: r.HourlyPrice,
		DailyPrice:  r.DailyPrice,
		IsActive:    r.IsActive,
	}
}
