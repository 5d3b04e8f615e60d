// Package foodorder owns the lifecycle of per-booking food orders and their
// line items. A booking carries at most one open order at a time; cancelled
// orders are terminal and a later get-or-create starts a fresh one.
package foodorder

import (
	"hotel-frontdesk/apperrors"
	foodModel "hotel-frontdesk/models/food"
	"hotel-frontdesk/services/settlement"
	"hotel-frontdesk/storage"
)

// Manager is the food order manager.
type Manager struct {
	store      storage.FoodOrderStore
	settlement *settlement.Engine
}

func NewManager(store storage.FoodOrderStore, engine *settlement.Engine) *Manager {
	return &Manager{store: store, settlement: engine}
}

// GetOrCreateOrder returns the booking's open order, creating one
// atomically when none exists. Idempotent: concurrent callers for the same
// booking observe exactly one created order.
func (m *Manager) GetOrCreateOrder(bookingID uint) (order *foodModel.FoodOrder, created bool, err error) {
	exists, err := m.store.BookingExists(bookingID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, apperrors.NotFound("booking %d not found", bookingID)
	}

	return m.store.GetOrCreateOpenOrder(bookingID)
}

// AddItem appends a line to an open order, capturing the menu unit price at
// call time. The open check happens atomically with the insert, so an order
// cancelled concurrently yields Conflict rather than a stray item.
func (m *Manager) AddItem(orderID, menuItemID uint, quantity int) (*foodModel.OrderItem, error) {
	if quantity < 1 {
		return nil, apperrors.Validation("quantity must be at least 1, got %d", quantity)
	}

	order, _, err := m.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	menuItem, err := m.store.FindMenuItem(menuItemID)
	if err != nil {
		return nil, err
	}

	item := &foodModel.OrderItem{
		OrderID:    orderID,
		MenuItemID: menuItem.ID,
		Quantity:   quantity,
		UnitPrice:  menuItem.Price,
	}
	if err := m.store.AddItem(orderID, item); err != nil {
		return nil, err
	}

	m.settlement.RecomputeBestEffort(order.BookingID, "food-order")
	return item, nil
}

// DeleteItem removes one line. Removing the last item leaves an open order
// with a zero total; the order is not auto-cancelled.
func (m *Manager) DeleteItem(orderID, itemID uint) error {
	order, _, err := m.store.GetOrder(orderID)
	if err != nil {
		return err
	}

	if err := m.store.DeleteItem(orderID, itemID); err != nil {
		return err
	}

	m.settlement.RecomputeBestEffort(order.BookingID, "food-order")
	return nil
}

// CancelOrder transitions open -> cancelled regardless of item count.
func (m *Manager) CancelOrder(orderID uint) (*foodModel.FoodOrder, error) {
	order, err := m.store.CancelOrder(orderID)
	if err != nil {
		return nil, err
	}

	m.settlement.RecomputeBestEffort(order.BookingID, "food-order")
	return order, nil
}

// GetOrder returns the order with its items in insertion order.
func (m *Manager) GetOrder(orderID uint) (*foodModel.FoodOrder, []foodModel.OrderItem, error) {
	return m.store.GetOrder(orderID)
}
