package food

import (
	"time"
)

// FoodOrderStatus is the lifecycle state of a food order.
type FoodOrderStatus string

const (
	OrderStatusOpen      FoodOrderStatus = "open"
	OrderStatusCancelled FoodOrderStatus = "cancelled"
)

func (s FoodOrderStatus) String() string {
	return string(s)
}

func (s FoodOrderStatus) IsValid() bool {
	return s == OrderStatusOpen || s == OrderStatusCancelled
}

// FoodOrder is a running food tab attached to one booking. At most one open
// order exists per booking at any time; this is enforced by a partial unique
// index on (booking_id) WHERE status = 'open'. A cancelled order is terminal,
// a later get-or-create starts a fresh one.
type FoodOrder struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint `gorm:"not null;index" json:"booking_id"`

	Status FoodOrderStatus `gorm:"type:varchar(20);not null;default:open" json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Total computes the order total from its loaded items.
func (o *FoodOrder) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	return total
}
