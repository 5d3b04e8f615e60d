package food

import (
	"time"
)

// MenuItem is one entry in the kitchen catalog. Prices here are the current
// list prices; order items capture the price at add-time so historical
// orders stay stable against menu changes.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
