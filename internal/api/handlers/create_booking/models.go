package create_booking

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	createBooking "github.com/m04kA/CWS-BookingService/internal/usecase/create_booking"
)

// GuestRequest гость бронирования
type GuestRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	IsExternal bool   `json:"isExternal,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SpaceID       int64          `json:"spaceId"`
	BookingType   string         `json:"bookingType"` // hourly | daily | monthly
	BookingDate   string         `json:"bookingDate"` // "2026-01-15"
	StartHour     *int           `json:"startHour,omitempty"`
	DurationHours int            `json:"durationHours,omitempty"`
	UsePass       bool           `json:"usePass,omitempty"`
	Guests        []GuestRequest `json:"guests,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"userId"`
	SpaceType        string         `json:"spaceType"`
	BookingType      string         `json:"bookingType"`
	BookingDate      string         `json:"bookingDate"`
	StartHour        int            `json:"startHour"`
	DurationHours    int            `json:"durationHours,omitempty"`
	Price            float64        `json:"price"`
	Status           string         `json:"status"`
	PassUsed         *string        `json:"passUsed,omitempty"`
	ConfirmationCode string         `json:"confirmationCode"`
	Guests           []GuestRequest `json:"guests,omitempty"`
	Notes            *string        `json:"notes,omitempty"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	guests := make([]domain.Guest, 0, len(r.Guests))
	for _, guest := range r.Guests {
		guests = append(guests, domain.Guest{
			Name:       guest.Name,
			Email:      guest.Email,
			IsExternal: guest.IsExternal,
		})
	}

	return &createBooking.Request{
		UserID:        userID,
		SpaceID:       r.SpaceID,
		BookingType:   domain.BookingType(r.BookingType),
		BookingDate:   bookingDate,
		StartHour:     r.StartHour,
		DurationHours: r.DurationHours,
		UsePass:       r.UsePass,
		Guests:        guests,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	booking := resp.Booking

	out := &BookingResponse{
		ID:               booking.ID,
		UserID:           booking.UserID,
		SpaceType:        string(booking.SpaceType),
		BookingType:      string(booking.BookingType),
		BookingDate:      booking.BookingDate.Format(domain.DateFormat),
		StartHour:        booking.StartHour,
		DurationHours:    booking.DurationHours,
		Price:            booking.Price,
		Status:           string(booking.Status),
		PassUsed:         booking.PassUsed,
		ConfirmationCode: booking.ConfirmationCode,
		Notes:            booking.Notes,
		CreatedAt:        booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        booking.UpdatedAt.Format(time.RFC3339),
	}

	for _, guest := range booking.Guests {
		out.Guests = append(out.Guests, GuestRequest{
			Name:       guest.Name,
			Email:      guest.Email,
			IsExternal: guest.IsExternal,
		})
	}

	return out
}
