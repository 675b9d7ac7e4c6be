package catalog

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Space, error)
	Update(ctx context.Context, space *domain.Space) error
	Delete(ctx context.Context, id int64) error
}

// PassRepository интерфейс каталога тарифов
type PassRepository interface {
	Create(ctx context.Context, pass *domain.Pass) (*domain.Pass, error)
	GetByID(ctx context.Context, id int64) (*domain.Pass, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Pass, error)
	Update(ctx context.Context, pass *domain.Pass) error
}

// UserRepository интерфейс репозитория пользователей (проверка ролей)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
