package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetWithFilter получает бронирования по типу пространства и дате
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
