package booking

import (
	"encoding/json"
	"time"

	"hotel-frontdesk/models/customer"

	"gorm.io/datatypes"
)

// Booking represents one stay. Monetary fields are owned exclusively by the
// settlement service; everything else is written once at creation.
//
// Settlement invariant, kept after every mutation:
//
//	amount_due = total_amount - amount_paid + refund_amount
type Booking struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferenceCode string `gorm:"type:varchar(64);not null;unique" json:"reference_code"`

	// Foreign key for customer relationship
	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	CheckInDate  time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`
	CheckInTime  string    `gorm:"type:varchar(8)" json:"check_in_time"`
	CheckOutTime string    `gorm:"type:varchar(8)" json:"check_out_time"`
	Nights       int       `gorm:"not null" json:"nights"`

	TotalAmount  float64 `gorm:"not null;default:0" json:"total_amount"`
	AmountPaid   float64 `gorm:"not null;default:0" json:"amount_paid"`
	AmountDue    float64 `gorm:"not null;default:0" json:"amount_due"`
	RefundAmount float64 `gorm:"not null;default:0" json:"refund_amount"`

	// Per-night rate breakdown, len == Nights.
	NightlyRates datatypes.JSON `gorm:"type:jsonb" json:"nightly_rates"`

	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:reserved" json:"status"`

	Rooms  []RoomAssignment `gorm:"foreignKey:BookingID" json:"rooms,omitempty"`
	Guests []Guest          `gorm:"foreignKey:BookingID" json:"guests,omitempty"`

	CreatedBy string     `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string     `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// SetNightlyRates stores the per-night rate breakdown as JSON.
func (b *Booking) SetNightlyRates(rates []float64) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return err
	}
	b.NightlyRates = datatypes.JSON(raw)
	return nil
}

// NightlyRateValues decodes the stored per-night rate breakdown.
func (b *Booking) NightlyRateValues() ([]float64, error) {
	if len(b.NightlyRates) == 0 {
		return nil, nil
	}
	var rates []float64
	if err := json.Unmarshal(b.NightlyRates, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// SettlementConsistent reports whether the settlement invariant holds.
func (b *Booking) SettlementConsistent() bool {
	return b.AmountDue == b.TotalAmount-b.AmountPaid+b.RefundAmount
}
