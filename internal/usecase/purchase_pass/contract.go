package purchase_pass

import (
	"context"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// PassRepository интерфейс каталога тарифов
type PassRepository interface {
	GetByType(ctx context.Context, passType string) (*domain.Pass, error)
}

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	GetByType(ctx context.Context, spaceType domain.SpaceType) (*domain.Space, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetWithFilter внутри транзакции блокирует строки выборки (FOR UPDATE)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ExistsByConfirmationCode(ctx context.Context, code string) (bool, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	// GetByID внутри транзакции блокирует строку пользователя (FOR UPDATE)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// ApplyPurchase атомарно записывает новый список абонементов
	// и увеличивает total_spent на сумму покупки
	ApplyPurchase(ctx context.Context, id int64, passes []domain.ActivePass, amount float64) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
