package get_availability

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// buildOccupiedHours строит множество занятых часовых слотов дня из
// активных бронирований на эту дату и тип пространства.
// Daily и monthly бронирования занимают всё рабочее окно целиком,
// hourly - duration_hours последовательных слотов от своего start_hour.
func buildOccupiedHours(bookings []*domain.Booking) map[int]struct{} {
	occupied := make(map[int]struct{})

	for _, booking := range bookings {
		for _, hour := range booking.OccupiedHours() {
			occupied[hour] = struct{}{}
		}
	}

	return occupied
}

// availableIntervals возвращает свободные интервалы длиной durationHours
// в порядке возрастания часа начала. Кандидат [h, h+durationHours) доступен,
// только если ни один из его часов не занят и h не раньше fromHour.
// При durationHours больше рабочего окна результат пуст: нет допустимого
// часа начала.
func availableIntervals(bookings []*domain.Booking, durationHours, fromHour int) []domain.Interval {
	occupied := buildOccupiedHours(bookings)

	if fromHour < domain.OpenHour {
		fromHour = domain.OpenHour
	}

	intervals := make([]domain.Interval, 0, domain.SlotsPerDay)

	for start := fromHour; start <= domain.CloseHour-durationHours; start++ {
		free := true
		for i := 0; i < durationHours; i++ {
			if _, busy := occupied[start+i]; busy {
				free = false
				break
			}
		}

		if free {
			intervals = append(intervals, domain.Interval{
				StartHour: start,
				EndHour:   start + durationHours,
			})
		}
	}

	return intervals
}

// firstCandidateHour возвращает первый допустимый час начала интервала.
// Для сегодняшней даты уже начавшиеся часы недоступны, для будущих дат
// окно открыто с OpenHour.
func firstCandidateHour(date, now time.Time) int {
	if date.Year() != now.Year() || date.YearDay() != now.YearDay() {
		return domain.OpenHour
	}
	return now.Hour() + 1
}

// capacityStatus считает доступность capacity-based пространства:
// количество активных бронирований дня против вместимости
func capacityStatus(space *domain.Space, bookings []*domain.Booking) *domain.CapacityStatus {
	count := 0
	for _, booking := range bookings {
		if booking.IsActive() {
			count++
		}
	}

	return &domain.CapacityStatus{
		Available:      space.HasCapacityFor(count),
		RemainingSpots: space.RemainingSpots(count),
		Capacity:       space.Capacity,
	}
}
