package settlement

import (
	"errors"
	"testing"

	"hotel-frontdesk/apperrors"
	bookingModel "hotel-frontdesk/models/booking"
	foodModel "hotel-frontdesk/models/food"
	roomModel "hotel-frontdesk/models/room"
	"hotel-frontdesk/storage/memstore"
)

func seedBooking(store *memstore.Store, id uint, total, paid, refund float64, status bookingModel.BookingStatus) {
	store.PutBooking(bookingModel.Booking{
		ID:            id,
		CustomerID:    1,
		Nights:        2,
		TotalAmount:   total,
		AmountPaid:    paid,
		RefundAmount:  refund,
		AmountDue:     total - paid + refund,
		PaymentStatus: bookingModel.PaymentStatusPartial,
		Status:        status,
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 2000, 0, bookingModel.BookingStatusCheckedIn)
	engine := NewEngine(store)

	updated, err := engine.UpdatePaymentStatus(1, bookingModel.PaymentStatusPaid, "desk")
	if err != nil {
		t.Fatalf("UpdatePaymentStatus: %v", err)
	}
	if updated.PaymentStatus != bookingModel.PaymentStatusPaid {
		t.Errorf("payment status = %q, want paid", updated.PaymentStatus)
	}
	if !updated.SettlementConsistent() {
		t.Errorf("settlement invariant violated: due=%v total=%v paid=%v refund=%v",
			updated.AmountDue, updated.TotalAmount, updated.AmountPaid, updated.RefundAmount)
	}

	events := store.Events()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].EventType != bookingModel.EventPaymentStatusUpdated {
		t.Errorf("event type = %q, want %q", events[0].EventType, bookingModel.EventPaymentStatusUpdated)
	}
}

func TestUpdatePaymentStatusMayMoveBackward(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 5000, 0, bookingModel.BookingStatusCheckedIn)
	engine := NewEngine(store)

	if _, err := engine.UpdatePaymentStatus(1, bookingModel.PaymentStatusPaid, "desk"); err != nil {
		t.Fatalf("UpdatePaymentStatus(paid): %v", err)
	}
	updated, err := engine.UpdatePaymentStatus(1, bookingModel.PaymentStatusPartial, "desk")
	if err != nil {
		t.Fatalf("UpdatePaymentStatus(partial after paid): %v", err)
	}
	if updated.PaymentStatus != bookingModel.PaymentStatusPartial {
		t.Errorf("payment status = %q, want partial", updated.PaymentStatus)
	}
}

func TestUpdatePaymentStatusInvalid(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 0, 0, bookingModel.BookingStatusReserved)
	engine := NewEngine(store)

	_, err := engine.UpdatePaymentStatus(1, bookingModel.PaymentStatus("settled"), "desk")
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(store.Events()) != 0 {
		t.Errorf("events recorded for rejected update")
	}
}

func TestUpdatePaymentStatusUnknownBooking(t *testing.T) {
	engine := NewEngine(memstore.New())

	_, err := engine.UpdatePaymentStatus(42, bookingModel.PaymentStatusPaid, "desk")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCheckoutAdditionalCharges(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 2000, 0, bookingModel.BookingStatusCheckedIn)
	engine := NewEngine(store)

	updated, adjustment, err := engine.Checkout(1, 5500, "desk")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if updated.Status != bookingModel.BookingStatusCheckedOut {
		t.Errorf("status = %q, want checked_out", updated.Status)
	}
	if updated.TotalAmount != 5500 {
		t.Errorf("total = %v, want 5500", updated.TotalAmount)
	}
	if updated.AmountDue != 3500 {
		t.Errorf("due = %v, want 3500", updated.AmountDue)
	}
	if adjustment.Type != AdjustmentAdditionalCharges || adjustment.Amount != 500 {
		t.Errorf("adjustment = %+v, want additional_charges 500", adjustment)
	}
	if !updated.SettlementConsistent() {
		t.Errorf("settlement invariant violated after checkout")
	}
}

func TestCheckoutDiscount(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 2000, 0, bookingModel.BookingStatusCheckedIn)
	engine := NewEngine(store)

	updated, adjustment, err := engine.Checkout(1, 4500, "desk")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if adjustment.Type != AdjustmentDiscount || adjustment.Amount != 500 {
		t.Errorf("adjustment = %+v, want discount 500", adjustment)
	}
	if updated.AmountDue != 2500 {
		t.Errorf("due = %v, want 2500", updated.AmountDue)
	}
}

func TestCheckoutExactAmount(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 5000, 0, bookingModel.BookingStatusCheckedIn)
	engine := NewEngine(store)

	updated, adjustment, err := engine.Checkout(1, 5000, "desk")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if adjustment.Type != AdjustmentNone {
		t.Errorf("adjustment type = %q, want none", adjustment.Type)
	}
	if updated.AmountDue != 0 {
		t.Errorf("due = %v, want 0", updated.AmountDue)
	}
}

func TestCheckoutRespectsRefund(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 5000, 300, bookingModel.BookingStatusCheckedIn)
	engine := NewEngine(store)

	updated, _, err := engine.Checkout(1, 5000, "desk")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if updated.AmountDue != 300 {
		t.Errorf("due = %v, want 300 (refund owed back)", updated.AmountDue)
	}
	if !updated.SettlementConsistent() {
		t.Errorf("settlement invariant violated with refund in play")
	}
}

func TestCheckoutNegativeAmount(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 0, 0, bookingModel.BookingStatusCheckedIn)
	engine := NewEngine(store)

	_, _, err := engine.Checkout(1, -1, "desk")
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestCheckoutTwiceConflicts(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 2000, 0, bookingModel.BookingStatusCheckedIn)
	engine := NewEngine(store)

	if _, _, err := engine.Checkout(1, 5500, "desk"); err != nil {
		t.Fatalf("first checkout: %v", err)
	}
	_, _, err := engine.Checkout(1, 9000, "desk")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("second checkout err = %v, want conflict", err)
	}

	// Amounts from the first checkout must survive the rejected retry.
	b, err := store.FindBooking(1)
	if err != nil {
		t.Fatalf("FindBooking: %v", err)
	}
	if b.TotalAmount != 5500 || b.AmountDue != 3500 {
		t.Errorf("amounts changed by rejected checkout: total=%v due=%v", b.TotalAmount, b.AmountDue)
	}
	if len(store.Events()) != 1 {
		t.Errorf("events = %d, want 1 (no event for rejected checkout)", len(store.Events()))
	}
}

func TestCheckoutCancelledConflicts(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5000, 0, 0, bookingModel.BookingStatusCancelled)
	engine := NewEngine(store)

	_, _, err := engine.Checkout(1, 5000, "desk")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestRecomputeFromCharges(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 0, 1000, 0, bookingModel.BookingStatusCheckedIn)
	store.PutAssignment(bookingModel.RoomAssignment{
		BookingID: 1,
		RoomID:    7,
		Room:      roomModel.Room{ID: 7, Price: 2500},
	})
	engine := NewEngine(store)

	// Open food order with one 450 line.
	order, _, err := store.GetOrCreateOpenOrder(1)
	if err != nil {
		t.Fatalf("GetOrCreateOpenOrder: %v", err)
	}
	if err := store.AddItem(order.ID, &foodModel.OrderItem{MenuItemID: 1, Quantity: 1, UnitPrice: 450}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	updated, err := engine.RecomputeFromCharges(1, "desk")
	if err != nil {
		t.Fatalf("RecomputeFromCharges: %v", err)
	}
	// 2 nights at 2500 plus 450 of food.
	if updated.TotalAmount != 5450 {
		t.Errorf("total = %v, want 5450", updated.TotalAmount)
	}
	if updated.AmountDue != 4450 {
		t.Errorf("due = %v, want 4450", updated.AmountDue)
	}
	if !updated.SettlementConsistent() {
		t.Errorf("settlement invariant violated after recompute")
	}
}

func TestRecomputeHonorsPriceOverride(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 0, 0, 0, bookingModel.BookingStatusCheckedIn)
	override := 2000.0
	store.PutAssignment(bookingModel.RoomAssignment{
		BookingID:     1,
		RoomID:        7,
		Room:          roomModel.Room{ID: 7, Price: 2500},
		PricePerNight: &override,
	})
	engine := NewEngine(store)

	updated, err := engine.RecomputeFromCharges(1, "desk")
	if err != nil {
		t.Fatalf("RecomputeFromCharges: %v", err)
	}
	if updated.TotalAmount != 4000 {
		t.Errorf("total = %v, want 4000 (override, 2 nights)", updated.TotalAmount)
	}
}

func TestRecomputeTerminalConflicts(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5500, 2000, 0, bookingModel.BookingStatusCheckedOut)
	engine := NewEngine(store)

	_, err := engine.RecomputeFromCharges(1, "desk")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

// interleavingStore injects a mutation at the moment the engine enters its
// settlement write, simulating another caller finishing an item mutation
// just before the recompute acquires the lock.
type interleavingStore struct {
	*memstore.Store
	injected bool
	inject   func()
}

func (s *interleavingStore) UpdateSettlementWithCharges(bookingID uint, eventType, updatedBy string, mutate func(b *bookingModel.Booking, roomCharges, foodTotal float64) error) (*bookingModel.Booking, error) {
	if !s.injected {
		s.injected = true
		s.inject()
	}
	return s.Store.UpdateSettlementWithCharges(bookingID, eventType, updatedBy, mutate)
}

func TestRecomputeSeesConcurrentItemMutation(t *testing.T) {
	inner := memstore.New()
	seedBooking(inner, 1, 0, 1000, 0, bookingModel.BookingStatusCheckedIn)
	inner.PutAssignment(bookingModel.RoomAssignment{
		BookingID: 1,
		RoomID:    7,
		Room:      roomModel.Room{ID: 7, Price: 2500},
	})
	order, _, err := inner.GetOrCreateOpenOrder(1)
	if err != nil {
		t.Fatalf("GetOrCreateOpenOrder: %v", err)
	}
	if err := inner.AddItem(order.ID, &foodModel.OrderItem{MenuItemID: 1, Quantity: 1, UnitPrice: 450}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	store := &interleavingStore{
		Store: inner,
		inject: func() {
			if err := inner.AddItem(order.ID, &foodModel.OrderItem{MenuItemID: 2, Quantity: 1, UnitPrice: 300}); err != nil {
				t.Errorf("concurrent AddItem: %v", err)
			}
		},
	}
	engine := NewEngine(store)

	updated, err := engine.RecomputeFromCharges(1, "desk")
	if err != nil {
		t.Fatalf("RecomputeFromCharges: %v", err)
	}
	// 2 nights at 2500 plus both food lines. A recompute that read the food
	// total before taking the settlement lock would persist 5450 here.
	if updated.TotalAmount != 5750 {
		t.Errorf("total = %v, want 5750", updated.TotalAmount)
	}
	if !updated.SettlementConsistent() {
		t.Errorf("settlement invariant violated after interleaved recompute")
	}
}

func TestRecomputeBestEffortKeepsSettledTotal(t *testing.T) {
	store := memstore.New()
	seedBooking(store, 1, 5500, 2000, 0, bookingModel.BookingStatusCheckedOut)
	engine := NewEngine(store)

	engine.RecomputeBestEffort(1, "food-order")

	b, err := store.FindBooking(1)
	if err != nil {
		t.Fatalf("FindBooking: %v", err)
	}
	if b.TotalAmount != 5500 {
		t.Errorf("total = %v, want 5500 (settled amount untouched)", b.TotalAmount)
	}
}
