package create_booking

import (
	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// ensureAvailable проверяет, что запрошенное бронирование помещается в снимок
// активных бронирований на дату. Для shared coworking проверяется вместимость,
// для офисов - свобода почасовых слотов.
func ensureAvailable(space *domain.Space, bookings []*domain.Booking, req *Request) error {
	active := 0
	occupied := make(map[int]struct{}, domain.SlotsPerDay)

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		active++
		for _, hour := range booking.OccupiedHours() {
			occupied[hour] = struct{}{}
		}
	}

	if space.Type == domain.SpaceSharedCoworking {
		if !space.HasCapacityFor(active) {
			return ErrSlotNotAvailable
		}
		return nil
	}

	// Daily и monthly бронирования занимают всё рабочее окно:
	// любой занятый час в этот день блокирует их
	if req.BookingType != domain.BookingHourly {
		if len(occupied) > 0 {
			return ErrSlotNotAvailable
		}
		return nil
	}

	start := *req.StartHour
	for hour := start; hour < start+req.DurationHours; hour++ {
		if _, busy := occupied[hour]; busy {
			return ErrSlotNotAvailable
		}
	}

	return nil
}
