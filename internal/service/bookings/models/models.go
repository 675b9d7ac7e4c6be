package models

import (
	"errors"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID       int64   `json:"userId"`       // Кто запрашивает
	TargetUserID int64   `json:"targetUserId"` // Чью историю запрашивают
	Status       *string `json:"status,omitempty"`
}

// SearchBookingsRequest запрос на поиск бронирований (админ)
type SearchBookingsRequest struct {
	UserID           int64      `json:"userId"`
	TargetUserID     *int64     `json:"targetUserId,omitempty"`     // Фильтр по пользователю (опционально)
	SpaceType        *string    `json:"spaceType,omitempty"`        // Фильтр по типу пространства (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	ConfirmationCode *string    `json:"confirmationCode,omitempty"` // Поиск по коду подтверждения (опционально)
	IncludeInactive  bool       `json:"includeInactive,omitempty"`  // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *SearchBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		UserID:           r.TargetUserID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		ConfirmationCode: r.ConfirmationCode,
		IncludeInactive:  r.IncludeInactive,
	}

	if r.SpaceType != nil {
		spaceType := domain.SpaceType(*r.SpaceType)
		if !spaceType.IsValid() {
			return filter, errors.New("invalid space type")
		}
		filter.SpaceType = &spaceType
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"userId"`
	SpaceType        string         `json:"spaceType"`
	BookingType      string         `json:"bookingType"`
	BookingDate      string         `json:"bookingDate"` // "2026-01-15"
	StartHour        int            `json:"startHour"`
	DurationHours    int            `json:"durationHours,omitempty"`
	Price            float64        `json:"price"`
	Status           string         `json:"status"`
	PassUsed         *string        `json:"passUsed,omitempty"`
	ConfirmationCode string         `json:"confirmationCode"`
	Guests           []domain.Guest `json:"guests,omitempty"`
	Notes            *string        `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		SpaceType:          string(b.SpaceType),
		BookingType:        string(b.BookingType),
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartHour:          b.StartHour,
		DurationHours:      b.DurationHours,
		Price:              b.Price,
		Status:             string(b.Status),
		PassUsed:           b.PassUsed,
		ConfirmationCode:   b.ConfirmationCode,
		Guests:             b.Guests,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
