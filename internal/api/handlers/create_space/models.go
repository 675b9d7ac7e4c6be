package create_space

import (
	"github.com/m04kA/CWS-BookingService/internal/service/catalog/models"
)

// CreateSpaceRequest HTTP request model
type CreateSpaceRequest struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Capacity    int     `json:"capacity"`
	HourlyPrice float64 `json:"hourlyPrice"`
	DailyPrice  float64 `json:"dailyPrice"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSpaceRequest) ToServiceRequest(userID int64) *models.CreateSpaceRequest {
	return &models.CreateSpaceRequest{
		UserID:      userID,
		Type:        r.Type,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		HourlyPrice: r.HourlyPrice,
		DailyPrice:  r.DailyPrice,
	}
}
