package booking

import (
	"fmt"
)

// UpdatePaymentStatusRequest declares the payment status for a booking.
// Amounts must already be reconciled by the caller.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending partial paid"`
}

// CheckoutRequest settles a booking at the given final amount.
type CheckoutRequest struct {
	FinalAmount *float64 `json:"final_amount" validate:"required,gte=0"`
}

// BookingCreateRequest represents the request payload for creating a booking
type BookingCreateRequest struct {
	CustomerID   uint                 `json:"customer_id" validate:"required"`
	CheckInDate  string               `json:"check_in_date" validate:"required"`
	CheckOutDate string               `json:"check_out_date" validate:"required"`
	CheckInTime  string               `json:"check_in_time" validate:"omitempty,max=8"`
	CheckOutTime string               `json:"check_out_time" validate:"omitempty,max=8"`
	Rooms        []RoomRequest        `json:"rooms" validate:"required,min=1,dive"`
	Guests       []GuestRequest       `json:"guests" validate:"required,min=1,dive"`
	NightlyRates []float64            `json:"nightly_rates" validate:"omitempty,dive,gte=0"`
}

type RoomRequest struct {
	RoomID        uint     `json:"room_id" validate:"required"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,gte=0"`
}

type GuestRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	IDType    string `json:"id_type" validate:"omitempty,max=50"`
	IDNumber  string `json:"id_number" validate:"omitempty,max=100"`
	IsPrimary bool   `json:"is_primary"`
}

// Validate performs the cross-field checks the tag validator cannot express.
func (r BookingCreateRequest) Validate() error {
	primaries := 0
	for _, g := range r.Guests {
		if g.IsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		return fmt.Errorf("exactly one guest must be marked primary, got %d", primaries)
	}

	seen := make(map[uint]bool, len(r.Rooms))
	for _, room := range r.Rooms {
		if seen[room.RoomID] {
			return fmt.Errorf("room %d listed more than once", room.RoomID)
		}
		seen[room.RoomID] = true
	}
	return nil
}
