package create_booking

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// Request запрос на создание бронирования
type Request struct {
	UserID        int64
	SpaceID       int64
	BookingType   domain.BookingType
	BookingDate   time.Time
	StartHour     *int // обязателен для hourly, игнорируется для daily/monthly
	DurationHours int  // только для hourly
	UsePass       bool // оплатить бронирование абонементом
	Guests        []domain.Guest
	Notes         *string
}

// Response результат создания бронирования
type Response struct {
	Booking *domain.Booking
}
