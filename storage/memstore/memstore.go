// Package memstore is an in-memory implementation of the storage ports.
// It backs the service tests; a single mutex held for the whole of each
// operation gives the same atomicity the gormstore gets from transactions
// and row locks.
package memstore

import (
	"sort"
	"sync"

	"hotel-frontdesk/apperrors"
	"hotel-frontdesk/storage"

	bookingModel "hotel-frontdesk/models/booking"
	customerModel "hotel-frontdesk/models/customer"
	foodModel "hotel-frontdesk/models/food"
)

type Store struct {
	mu sync.Mutex

	bookings    map[uint]bookingModel.Booking
	customers   map[uint]customerModel.Customer
	assignments map[uint][]bookingModel.RoomAssignment // by booking id
	guests      map[uint][]bookingModel.Guest          // by booking id
	orders      map[uint]foodModel.FoodOrder
	items       map[uint][]foodModel.OrderItem // by order id
	menu        map[uint]foodModel.MenuItem
	events      []bookingModel.SettlementEvent

	nextOrderID uint
	nextItemID  uint
}

func New() *Store {
	return &Store{
		bookings:    make(map[uint]bookingModel.Booking),
		customers:   make(map[uint]customerModel.Customer),
		assignments: make(map[uint][]bookingModel.RoomAssignment),
		guests:      make(map[uint][]bookingModel.Guest),
		orders:      make(map[uint]foodModel.FoodOrder),
		items:       make(map[uint][]foodModel.OrderItem),
		menu:        make(map[uint]foodModel.MenuItem),
	}
}

// Seed helpers.

func (s *Store) PutCustomer(c customerModel.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

func (s *Store) PutBooking(b bookingModel.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
}

func (s *Store) PutAssignment(a bookingModel.RoomAssignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments[a.BookingID] = append(s.assignments[a.BookingID], a)
}

func (s *Store) PutGuest(g bookingModel.Guest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests[g.BookingID] = append(s.guests[g.BookingID], g)
}

func (s *Store) PutMenuItem(m foodModel.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu[m.ID] = m
}

// Events returns the settlement events recorded so far.
func (s *Store) Events() []bookingModel.SettlementEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]bookingModel.SettlementEvent, len(s.events))
	copy(out, s.events)
	return out
}

// SettlementStore.

func (s *Store) FindBooking(bookingID uint) (*bookingModel.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, apperrors.NotFound("booking %d not found", bookingID)
	}
	return &b, nil
}

func (s *Store) UpdateSettlement(bookingID uint, eventType, updatedBy string, mutate func(*bookingModel.Booking) error) (*bookingModel.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, apperrors.NotFound("booking %d not found", bookingID)
	}

	// Mutate a copy so a failed mutation leaves the stored row untouched.
	if err := mutate(&b); err != nil {
		return nil, err
	}

	b.UpdatedBy = updatedBy
	s.bookings[bookingID] = b
	s.events = append(s.events, bookingModel.SnapshotSettlement(&b, eventType, updatedBy))
	return &b, nil
}

// UpdateSettlementWithCharges computes the charges in the same mutex-held
// section as the write, matching the gormstore's read-under-row-lock.
func (s *Store) UpdateSettlementWithCharges(bookingID uint, eventType, updatedBy string, mutate func(b *bookingModel.Booking, roomCharges, foodTotal float64) error) (*bookingModel.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, apperrors.NotFound("booking %d not found", bookingID)
	}

	if err := mutate(&b, s.roomChargesLocked(&b), s.openFoodTotalLocked(bookingID)); err != nil {
		return nil, err
	}

	b.UpdatedBy = updatedBy
	s.bookings[bookingID] = b
	s.events = append(s.events, bookingModel.SnapshotSettlement(&b, eventType, updatedBy))
	return &b, nil
}

func (s *Store) roomChargesLocked(b *bookingModel.Booking) float64 {
	var charges float64
	for _, a := range s.assignments[b.ID] {
		charges += a.EffectivePrice() * float64(b.Nights)
	}
	return charges
}

func (s *Store) openFoodTotalLocked(bookingID uint) float64 {
	for id, o := range s.orders {
		if o.BookingID == bookingID && o.Status == foodModel.OrderStatusOpen {
			var total float64
			for _, item := range s.items[id] {
				total += item.LineTotal()
			}
			return total
		}
	}
	return 0
}

// FoodOrderStore.

func (s *Store) BookingExists(bookingID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bookings[bookingID]
	return ok, nil
}

func (s *Store) GetOrCreateOpenOrder(bookingID uint) (*foodModel.FoodOrder, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, o := range s.orders {
		if o.BookingID == bookingID && o.Status == foodModel.OrderStatusOpen {
			existing := o
			existing.Items = append([]foodModel.OrderItem(nil), s.items[id]...)
			return &existing, false, nil
		}
	}

	s.nextOrderID++
	order := foodModel.FoodOrder{
		ID:        s.nextOrderID,
		BookingID: bookingID,
		Status:    foodModel.OrderStatusOpen,
	}
	s.orders[order.ID] = order
	return &order, true, nil
}

func (s *Store) GetOrder(orderID uint) (*foodModel.FoodOrder, []foodModel.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, nil, apperrors.NotFound("food order %d not found", orderID)
	}
	items := append([]foodModel.OrderItem(nil), s.items[orderID]...)
	o.Items = items
	return &o, items, nil
}

func (s *Store) AddItem(orderID uint, item *foodModel.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return apperrors.NotFound("food order %d not found", orderID)
	}
	if o.Status != foodModel.OrderStatusOpen {
		return apperrors.Conflict("food order %d is not open", orderID)
	}

	s.nextItemID++
	item.ID = s.nextItemID
	item.OrderID = orderID
	s.items[orderID] = append(s.items[orderID], *item)
	return nil
}

func (s *Store) DeleteItem(orderID, itemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[orderID]
	for i, item := range items {
		if item.ID == itemID {
			s.items[orderID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("item %d not found on food order %d", itemID, orderID)
}

func (s *Store) CancelOrder(orderID uint) (*foodModel.FoodOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, apperrors.NotFound("food order %d not found", orderID)
	}
	if o.Status == foodModel.OrderStatusCancelled {
		return nil, apperrors.Conflict("food order %d is already cancelled", orderID)
	}

	o.Status = foodModel.OrderStatusCancelled
	s.orders[orderID] = o
	return &o, nil
}

func (s *Store) FindMenuItem(menuItemID uint) (*foodModel.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.menu[menuItemID]
	if !ok {
		return nil, apperrors.NotFound("menu item %d not found", menuItemID)
	}
	return &m, nil
}

// FolioStore.

func (s *Store) FolioRows(bookingID uint) (*storage.FolioRows, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, apperrors.NotFound("booking %d not found", bookingID)
	}

	cust, ok := s.customers[b.CustomerID]
	if !ok {
		return nil, apperrors.Integrity("booking %d references missing customer %d", bookingID, b.CustomerID)
	}

	assignments := append([]bookingModel.RoomAssignment(nil), s.assignments[bookingID]...)
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].RoomID < assignments[j].RoomID })

	guests := append([]bookingModel.Guest(nil), s.guests[bookingID]...)

	return &storage.FolioRows{
		Booking:     b,
		Customer:    cust,
		Assignments: assignments,
		Guests:      guests,
	}, nil
}

func (s *Store) ListAssignments(bookingID uint) ([]bookingModel.RoomAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return nil, apperrors.NotFound("booking %d not found", bookingID)
	}

	assignments := append([]bookingModel.RoomAssignment(nil), s.assignments[bookingID]...)
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].RoomID < assignments[j].RoomID })
	return assignments, nil
}
