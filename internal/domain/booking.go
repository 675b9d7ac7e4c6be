package domain

import "time"

// SpaceType represents the kind of bookable space
type SpaceType string

const (
	SpaceSharedCoworking SpaceType = "shared_coworking"
	SpacePrivateOffice4  SpaceType = "private_office_4"
	SpacePrivateOffice6  SpaceType = "private_office_6"
)

// IsValid returns true if the space type is one of the known values
func (t SpaceType) IsValid() bool {
	return t == SpaceSharedCoworking || t == SpacePrivateOffice4 || t == SpacePrivateOffice6
}

// IsOffice returns true for private offices (slot-based availability).
// Shared coworking is capacity-based instead.
func (t SpaceType) IsOffice() bool {
	return t == SpacePrivateOffice4 || t == SpacePrivateOffice6
}

// BookingType represents the billing granularity of a booking
type BookingType string

const (
	BookingHourly  BookingType = "hourly"
	BookingDaily   BookingType = "daily"
	BookingMonthly BookingType = "monthly"
)

// IsValid returns true if the booking type is one of the known values
func (t BookingType) IsValid() bool {
	return t == BookingHourly || t == BookingDaily || t == BookingMonthly
}

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled || s == StatusCompleted
}

// Guest is an attendee listed on a booking
type Guest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsExternal bool   `json:"is_external"`
}

// Booking represents a space reservation
type Booking struct {
	ID               int64
	UserID           int64
	SpaceType        SpaceType
	BookingType      BookingType
	BookingDate      time.Time // date only, time part is zero
	StartHour        int       // first occupied hour; OpenHour for daily and monthly bookings
	DurationHours    int       // hourly bookings only, 0 otherwise
	Price            float64
	Status           BookingStatus
	PassUsed         *string // pass type the booking was redeemed against
	ConfirmationCode string
	Guests           []Guest
	Notes            *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot or capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsPassRedemption returns true if the booking was paid with a pass
func (b *Booking) IsPassRedemption() bool {
	return b.PassUsed != nil && *b.PassUsed != ""
}

// OccupiesFullDay returns true if the booking blocks the whole operating
// window of its date
func (b *Booking) OccupiesFullDay() bool {
	return b.BookingType == BookingDaily || b.BookingType == BookingMonthly
}

// OccupiedHours returns the hour slots the booking takes on its date
func (b *Booking) OccupiedHours() []int {
	if !b.IsActive() {
		return nil
	}

	if b.OccupiesFullDay() {
		hours := make([]int, 0, SlotsPerDay)
		for h := OpenHour; h < CloseHour; h++ {
			hours = append(hours, h)
		}
		return hours
	}

	duration := b.DurationHours
	if duration < 1 {
		duration = 1
	}

	hours := make([]int, 0, duration)
	for i := 0; i < duration; i++ {
		hours = append(hours, b.StartHour+i)
	}
	return hours
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID           *int64         // Фильтр по пользователю (опционально)
	SpaceType        *SpaceType     // Фильтр по типу пространства (опционально)
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	ConfirmationCode *string        // Поиск по коду подтверждения (опционально)
	IncludeInactive  bool           // Включать ли отменённые бронирования
}
