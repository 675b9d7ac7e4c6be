package stats

import (
	"context"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountAll(ctx context.Context, onlyActive bool) (int64, error)
	CountByDate(ctx context.Context, date time.Time, onlyActive bool) (int64, error)
}

// SpaceRepository интерфейс репозитория пространств (расчет дневной емкости)
type SpaceRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Space, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	TotalCompletedAmount(ctx context.Context) (float64, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
