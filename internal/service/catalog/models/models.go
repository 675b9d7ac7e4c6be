package models

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// Request модели

// CreateSpaceRequest запрос на создание пространства
type CreateSpaceRequest struct {
	UserID      int64   `json:"userId"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Capacity    int     `json:"capacity"`
	HourlyPrice float64 `json:"hourlyPrice"`
	DailyPrice  float64 `json:"dailyPrice"`
}

// UpdateSpaceRequest запрос на обновление пространства.
// Обновляются только переданные поля.
type UpdateSpaceRequest struct {
	UserID      int64    `json:"userId"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	HourlyPrice *float64 `json:"hourlyPrice,omitempty"`
	DailyPrice  *float64 `json:"dailyPrice,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// CreatePassRequest запрос на создание тарифа
type CreatePassRequest struct {
	UserID           int64                 `json:"userId"`
	Type             string                `json:"type"`
	Name             string                `json:"name"`
	Description      *string               `json:"description,omitempty"`
	Price            float64               `json:"price"`
	ValidityDays     int                   `json:"validityDays"`
	ServicesIncluded domain.ServiceBalance `json:"servicesIncluded"`
	Features         []string              `json:"features,omitempty"`
}

// UpdatePassRequest запрос на обновление тарифа.
// Обновляются только переданные поля.
type UpdatePassRequest struct {
	UserID           int64                  `json:"userId"`
	Name             *string                `json:"name,omitempty"`
	Description      *string                `json:"description,omitempty"`
	Price            *float64               `json:"price,omitempty"`
	ValidityDays     *int                   `json:"validityDays,omitempty"`
	ServicesIncluded *domain.ServiceBalance `json:"servicesIncluded,omitempty"`
	Features         []string               `json:"features,omitempty"`
	IsActive         *bool                  `json:"isActive,omitempty"`
}

// Response модели

// SpaceResponse ответ с данными пространства
type SpaceResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	HourlyPrice float64   `json:"hourlyPrice"`
	DailyPrice  float64   `json:"dailyPrice"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SpaceListResponse ответ со списком пространств
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// PassResponse ответ с данными тарифа
type PassResponse struct {
	ID               int64                 `json:"id"`
	Type             string                `json:"type"`
	Name             string                `json:"name"`
	Description      *string               `json:"description,omitempty"`
	Price            float64               `json:"price"`
	ValidityDays     int                   `json:"validityDays"`
	ServicesIncluded domain.ServiceBalance `json:"servicesIncluded"`
	Features         []string              `json:"features,omitempty"`
	IsActive         bool                  `json:"isActive"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// PassListResponse ответ со списком тарифов
type PassListResponse struct {
	Passes []PassResponse `json:"passes"`
}

// Методы конвертации

// FromDomainSpace конвертирует domain модель в DTO
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	if s == nil {
		return nil
	}

	return &SpaceResponse{
		ID:          s.ID,
		Type:        string(s.Type),
		Name:        s.Name,
		Description: s.Description,
		Capacity:    s.Capacity,
		HourlyPrice: s.HourlyPrice,
		DailyPrice:  s.DailyPrice,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, 0, len(spaces)),
	}

	for _, space := range spaces {
		if spaceResp := FromDomainSpace(space); spaceResp != nil {
			resp.Spaces = append(resp.Spaces, *spaceResp)
		}
	}

	return resp
}

// FromDomainPass конвертирует domain модель в DTO
func FromDomainPass(p *domain.Pass) *PassResponse {
	if p == nil {
		return nil
	}

	return &PassResponse{
		ID:               p.ID,
		Type:             p.Type,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		ValidityDays:     p.ValidityDays,
		ServicesIncluded: p.ServicesIncluded,
		Features:         p.Features,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// FromDomainPassList конвертирует список domain моделей в DTO
func FromDomainPassList(passes []*domain.Pass) *PassListResponse {
	resp := &PassListResponse{
		Passes: make([]PassResponse, 0, len(passes)),
	}

	for _, pass := range passes {
		if passResp := FromDomainPass(pass); passResp != nil {
			resp.Passes = append(resp.Passes, *passResp)
		}
	}

	return resp
}
