package food

// CreateOrderRequest asks for the booking's open food order, creating one
// when none exists.
type CreateOrderRequest struct {
	BookingID uint `json:"booking_id" validate:"required"`
}

// AddItemRequest appends one line to an open order.
type AddItemRequest struct {
	OrderID    uint `json:"order_id" validate:"required"`
	MenuItemID uint `json:"menu_item_id" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
}
