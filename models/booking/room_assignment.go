package booking

import (
	"time"

	roomModel "hotel-frontdesk/models/room"
)

// RoomAssignment attaches a room to a booking for the length of the stay.
// Created at booking time; immutable afterwards except for price override
// correction.
type RoomAssignment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint `gorm:"not null;index;uniqueIndex:uq_room_assignments_booking_room" json:"booking_id"`
	RoomID    uint `gorm:"not null;index;uniqueIndex:uq_room_assignments_booking_room" json:"room_id"`

	Room roomModel.Room `gorm:"foreignKey:RoomID" json:"room"`

	// Per-stay price override; nil means the room's list price applies.
	PricePerNight *float64 `json:"price_per_night,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// EffectivePrice returns the override when present, otherwise the room's
// list price. The override takes precedence whenever non-nil.
func (a *RoomAssignment) EffectivePrice() float64 {
	if a.PricePerNight != nil {
		return *a.PricePerNight
	}
	return a.Room.Price
}
