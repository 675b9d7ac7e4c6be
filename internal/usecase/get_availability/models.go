package get_availability

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// Request модель запроса на получение доступности пространства
type Request struct {
	UserID        int64     // ID пользователя (для логирования, не влияет на результат)
	SpaceID       int64     // ID пространства
	Date          time.Time // Дата, на которую запрашивается доступность (без времени)
	DurationHours int       // Длительность интервала в часах (для офисов)
}

// Response модель ответа.
// Для офисов заполняется Intervals, для shared coworking - Capacity.
type Response struct {
	SpaceID       int64
	SpaceType     domain.SpaceType
	Date          time.Time
	DurationHours int

	Intervals []domain.Interval      // Свободные интервалы (офисы)
	Capacity  *domain.CapacityStatus // Статус вместимости (shared coworking)
}
