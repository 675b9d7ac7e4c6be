package purchase_pass

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	purchasePass "github.com/m04kA/CWS-BookingService/internal/usecase/purchase_pass"
)

// OfficeSlotRequest почасовой визит в офис, планируемый при покупке
type OfficeSlotRequest struct {
	SpaceType     string `json:"spaceType"`
	Date          string `json:"date"` // "2026-01-15"
	StartHour     int    `json:"startHour"`
	DurationHours int    `json:"durationHours"`
}

// PurchasePassRequest HTTP request model
type PurchasePassRequest struct {
	PassType       string              `json:"passType"`
	ScheduledDays  []string            `json:"scheduledDays,omitempty"` // даты в общем коворкинге
	ScheduledSlots []OfficeSlotRequest `json:"scheduledSlots,omitempty"`
}

// ScheduledBookingResponse созданный при покупке визит
type ScheduledBookingResponse struct {
	ID               int64  `json:"id"`
	SpaceType        string `json:"spaceType"`
	BookingType      string `json:"bookingType"`
	BookingDate      string `json:"bookingDate"`
	StartHour        int    `json:"startHour"`
	DurationHours    int    `json:"durationHours,omitempty"`
	ConfirmationCode string `json:"confirmationCode"`
}

// ActivePassResponse зачисленный остаток абонемента
type ActivePassResponse struct {
	Type              string                `json:"type"`
	ServicesRemaining domain.ServiceBalance `json:"servicesRemaining"`
	ExpiresAt         string                `json:"expiresAt"` // "2026-02-15"
}

// PurchasePassResponse HTTP response model
type PurchasePassResponse struct {
	PaymentID int64                      `json:"paymentId"`
	Amount    float64                    `json:"amount"`
	PassType  string                     `json:"passType"`
	Bookings  []ScheduledBookingResponse `json:"bookings,omitempty"`
	Pass      *ActivePassResponse        `json:"pass,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PurchasePassRequest) ToUseCaseRequest(userID int64) (*purchasePass.Request, error) {
	days := make([]time.Time, 0, len(r.ScheduledDays))
	for _, dayStr := range r.ScheduledDays {
		day, err := time.Parse(domain.DateFormat, dayStr)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	slots := make([]purchasePass.OfficeSlot, 0, len(r.ScheduledSlots))
	for _, slot := range r.ScheduledSlots {
		date, err := time.Parse(domain.DateFormat, slot.Date)
		if err != nil {
			return nil, err
		}
		slots = append(slots, purchasePass.OfficeSlot{
			SpaceType:     domain.SpaceType(slot.SpaceType),
			Date:          date,
			StartHour:     slot.StartHour,
			DurationHours: slot.DurationHours,
		})
	}

	return &purchasePass.Request{
		UserID:         userID,
		PassType:       r.PassType,
		ScheduledDays:  days,
		ScheduledSlots: slots,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *purchasePass.Response) *PurchasePassResponse {
	out := &PurchasePassResponse{
		PaymentID: resp.Payment.ID,
		Amount:    resp.Payment.Amount,
		PassType:  resp.Payment.PassType,
	}

	for _, booking := range resp.Bookings {
		out.Bookings = append(out.Bookings, ScheduledBookingResponse{
			ID:               booking.ID,
			SpaceType:        string(booking.SpaceType),
			BookingType:      string(booking.BookingType),
			BookingDate:      booking.BookingDate.Format(domain.DateFormat),
			StartHour:        booking.StartHour,
			DurationHours:    booking.DurationHours,
			ConfirmationCode: booking.ConfirmationCode,
		})
	}

	if resp.Pass != nil {
		out.Pass = &ActivePassResponse{
			Type:              resp.Pass.Type,
			ServicesRemaining: resp.Pass.ServicesRemaining,
			ExpiresAt:         resp.Pass.ExpiresAt.Format(domain.DateFormat),
		}
	}

	return out
}
