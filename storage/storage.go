// Package storage defines the persistence ports consumed by the booking
// core. Implementations translate persistence outcomes into the apperrors
// taxonomy (NotFound, Conflict, Storage); services never inspect driver
// errors directly. The production implementation lives in storage/gormstore,
// an in-memory one for tests in storage/memstore.
package storage

import (
	bookingModel "hotel-frontdesk/models/booking"
	customerModel "hotel-frontdesk/models/customer"
	foodModel "hotel-frontdesk/models/food"
)

// FolioRows are the typed rows the folio aggregator shapes into a view.
// Reads are a best-effort snapshot: they are not transactionally isolated
// from concurrent mutations.
type FolioRows struct {
	Booking     bookingModel.Booking
	Customer    customerModel.Customer
	Assignments []bookingModel.RoomAssignment // Room loaded, ordered by room id
	Guests      []bookingModel.Guest
}

// SettlementStore owns the booking's monetary fields. Every mutation is a
// single atomic read-modify-write against the persisted row, so two
// concurrent mutations on one booking serialize and the loser observes the
// winner's state.
type SettlementStore interface {
	// FindBooking returns the booking row or NotFound.
	FindBooking(bookingID uint) (*bookingModel.Booking, error)

	// UpdateSettlement loads the booking under an exclusive lock, applies
	// mutate, persists the row and a settlement event snapshot in one
	// transaction. If mutate returns an error nothing is written.
	UpdateSettlement(bookingID uint, eventType, updatedBy string, mutate func(*bookingModel.Booking) error) (*bookingModel.Booking, error)

	// UpdateSettlementWithCharges is UpdateSettlement with the booking's
	// current charges read under the same lock and passed to mutate:
	// roomCharges is the sum of effective price per night times nights over
	// the room assignments, foodTotal the item total of the open food order
	// (zero when none exists). Reading the charges inside the locked
	// transaction keeps the read and the total write one atomic unit; a
	// recompute can never persist a total computed from charges another
	// caller has since changed.
	UpdateSettlementWithCharges(bookingID uint, eventType, updatedBy string, mutate func(b *bookingModel.Booking, roomCharges, foodTotal float64) error) (*bookingModel.Booking, error)
}

// FoodOrderStore owns food orders and their items.
type FoodOrderStore interface {
	// BookingExists reports whether the booking id is known.
	BookingExists(bookingID uint) (bool, error)

	// GetOrCreateOpenOrder atomically creates an open order for the booking
	// unless one already exists, and returns it together with whether this
	// call created it. Concurrent callers observe exactly one created order.
	GetOrCreateOpenOrder(bookingID uint) (order *foodModel.FoodOrder, created bool, err error)

	// GetOrder returns the order and its items in insertion order, or
	// NotFound.
	GetOrder(orderID uint) (*foodModel.FoodOrder, []foodModel.OrderItem, error)

	// AddItem appends an item to the order. Conflict if the order is not
	// open at insert time, NotFound for an unknown order.
	AddItem(orderID uint, item *foodModel.OrderItem) error

	// DeleteItem removes one item. NotFound if the item does not belong to
	// the order.
	DeleteItem(orderID, itemID uint) error

	// CancelOrder transitions open -> cancelled. Conflict if already
	// cancelled, NotFound for an unknown order.
	CancelOrder(orderID uint) (*foodModel.FoodOrder, error)

	// FindMenuItem returns the catalog entry used to capture unit prices.
	FindMenuItem(menuItemID uint) (*foodModel.MenuItem, error)
}

// FolioStore reads the rows joined into a folio view.
type FolioStore interface {
	// FolioRows returns booking, customer, room assignments and guests, or
	// NotFound when the booking id is unknown. Integrity of the rows (e.g.
	// a missing customer) is reported as an IntegrityError.
	FolioRows(bookingID uint) (*FolioRows, error)

	// ListAssignments returns the booking's room assignments ordered by
	// room id, or NotFound for an unknown booking.
	ListAssignments(bookingID uint) ([]bookingModel.RoomAssignment, error)
}
