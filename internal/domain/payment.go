package domain

import "time"

// PaymentStatus status of a payment record
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is a record of a pass purchase. No real payment processing
// happens here; the record is the billing source of truth.
type Payment struct {
	ID          int64
	UserID      int64
	Amount      float64
	PassType    string
	Status      PaymentStatus
	ExternalRef string // идентификатор для сверки с внешними системами
	CreatedAt   time.Time
}
