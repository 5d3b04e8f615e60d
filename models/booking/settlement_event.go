package booking

import (
	"time"
)

// Settlement event types.
const (
	EventPaymentStatusUpdated = "payment_status_updated"
	EventCheckedOut           = "checked_out"
	EventChargesRecomputed    = "charges_recomputed"
)

// SettlementEvent is a snapshot of the booking's monetary fields written in
// the same transaction as every settlement mutation, so the money trail can
// be audited after the fact.
type SettlementEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint `gorm:"not null;index" json:"booking_id"`

	EventType string `gorm:"type:varchar(50);not null;index" json:"event_type"`

	TotalAmount   float64       `gorm:"not null" json:"total_amount"`
	AmountPaid    float64       `gorm:"not null" json:"amount_paid"`
	AmountDue     float64       `gorm:"not null" json:"amount_due"`
	RefundAmount  float64       `gorm:"not null" json:"refund_amount"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`
	Status        BookingStatus `gorm:"type:varchar(20);not null" json:"status"`

	CreatedBy string    `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the SettlementEvent model
func (SettlementEvent) TableName() string {
	return "settlement_events"
}

// SnapshotSettlement builds an event row from the booking's current
// monetary fields.
func SnapshotSettlement(b *Booking, eventType string, createdBy string) SettlementEvent {
	return SettlementEvent{
		BookingID:     b.ID,
		EventType:     eventType,
		TotalAmount:   b.TotalAmount,
		AmountPaid:    b.AmountPaid,
		AmountDue:     b.AmountDue,
		RefundAmount:  b.RefundAmount,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		CreatedBy:     createdBy,
	}
}
