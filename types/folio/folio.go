package folio

import "time"

// FolioView is the consolidated read-model of a booking consumed by
// invoicing and the desk UI.
type FolioView struct {
	BookingID uint          `json:"booking_id"`
	CreatedAt time.Time     `json:"created_at"`
	Booking   BookingBlock  `json:"booking"`
	Customer  CustomerBlock `json:"customer"`
	Guests    GuestsBlock   `json:"guests"`
}

type BookingBlock struct {
	ReferenceCode string     `json:"reference_code"`
	CheckInDate   string     `json:"check_in_date"`
	CheckOutDate  string     `json:"check_out_date"`
	CheckInTime   string     `json:"check_in_time,omitempty"`
	CheckOutTime  string     `json:"check_out_time,omitempty"`
	Nights        int        `json:"nights"`
	TotalAmount   float64    `json:"total_amount"`
	AmountPaid    float64    `json:"amount_paid"`
	AmountDue     float64    `json:"amount_due"`
	RefundAmount  float64    `json:"refund_amount"`
	PaymentStatus string     `json:"payment_status"`
	Status        string     `json:"status"`
	NightlyRates  []float64  `json:"nightly_rates"`
	Rooms         []RoomView `json:"rooms"`
}

type RoomView struct {
	RoomID         uint    `json:"room_id"`
	RoomNumber     string  `json:"room_number"`
	RoomType       string  `json:"room_type"`
	EffectivePrice float64 `json:"effective_price"`
	Status         string  `json:"status"`
}

type CustomerBlock struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	GSTNumber string `json:"gst_number,omitempty"`
	MealPlan  string `json:"meal_plan,omitempty"`
}

type GuestsBlock struct {
	Primary    *GuestView  `json:"primary"`
	Additional []GuestView `json:"additional"`
}

type GuestView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
