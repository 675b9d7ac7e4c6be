package purchase_pass

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// OfficeSlot почасовой визит в офис, планируемый при покупке тарифа
type OfficeSlot struct {
	SpaceType     domain.SpaceType
	Date          time.Time
	StartHour     int
	DurationHours int
}

// Request запрос на покупку абонемента.
// Покупатель может сразу запланировать часть включенных услуг:
// дни в общем коворкинге и почасовые визиты в офисы.
type Request struct {
	UserID         int64
	PassType       string
	ScheduledDays  []time.Time
	ScheduledSlots []OfficeSlot
}

// Response результат покупки абонемента
type Response struct {
	Payment  *domain.Payment
	Bookings []*domain.Booking
	// Pass остаток абонемента, зачисленный пользователю.
	// nil, когда все включенные услуги запланированы сразу.
	Pass *domain.ActivePass
}
