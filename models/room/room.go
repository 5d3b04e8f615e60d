package room

import (
	"time"
)

// Room statuses as kept by the room-inventory side.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Room represents a physical room. Owned by the room-inventory collaborator;
// the booking core reads number, type, status and the list price per night.
type Room struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomNumber string    `gorm:"type:varchar(20);not null;unique" json:"room_number"`
	RoomType   string    `gorm:"type:varchar(50);not null" json:"room_type"`
	Status     string    `gorm:"type:varchar(20);not null;default:available" json:"status"`
	Price      float64   `gorm:"not null" json:"price"`
	Floor      *string   `gorm:"type:varchar(10)" json:"floor,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
