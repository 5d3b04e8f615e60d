package food

import (
	"time"
)

// OrderItem is one line of a food order. UnitPrice is captured from the menu
// at add-time and never re-fetched.
type OrderItem struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	OrderID uint `gorm:"not null;index" json:"order_id"`

	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`

	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// LineTotal is quantity times the captured unit price.
func (i *OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
