package customer

import (
	"time"
)

// Customer represents a guest account holder. Customer records are owned by
// the customer-management side of the desk; the booking core only reads them.
type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	GSTNumber *string   `gorm:"type:varchar(50)" json:"gst_number,omitempty"`
	MealPlan  *string   `gorm:"type:varchar(50)" json:"meal_plan,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
