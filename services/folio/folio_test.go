package folio

import (
	"errors"
	"testing"
	"time"

	"hotel-frontdesk/apperrors"
	bookingModel "hotel-frontdesk/models/booking"
	customerModel "hotel-frontdesk/models/customer"
	roomModel "hotel-frontdesk/models/room"
	"hotel-frontdesk/storage/memstore"
)

func seedFolioFixture(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New()

	email := "guest@example.com"
	store.PutCustomer(customerModel.Customer{
		ID:    1,
		Name:  "Anita Rao",
		Phone: "9876543210",
		Email: &email,
	})

	b := bookingModel.Booking{
		ID:            1,
		ReferenceCode: "BK-TEST00000001",
		CustomerID:    1,
		CheckInDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Nights:        2,
		TotalAmount:   6500,
		AmountPaid:    2000,
		AmountDue:     4500,
		PaymentStatus: bookingModel.PaymentStatusPartial,
		Status:        bookingModel.BookingStatusCheckedIn,
	}
	if err := b.SetNightlyRates([]float64{3250, 3250}); err != nil {
		t.Fatalf("SetNightlyRates: %v", err)
	}
	store.PutBooking(b)

	override := 2000.0
	// Inserted out of room-id order on purpose.
	store.PutAssignment(bookingModel.RoomAssignment{
		BookingID: 1,
		RoomID:    9,
		Room:      roomModel.Room{ID: 9, RoomNumber: "204", RoomType: "family", Price: 5500, Status: roomModel.RoomStatusOccupied},
	})
	store.PutAssignment(bookingModel.RoomAssignment{
		BookingID:     1,
		RoomID:        3,
		Room:          roomModel.Room{ID: 3, RoomNumber: "103", RoomType: "standard", Price: 2500, Status: roomModel.RoomStatusOccupied},
		PricePerNight: &override,
	})

	phone := "5551234"
	store.PutGuest(bookingModel.Guest{ID: 1, BookingID: 1, Name: "Anita Rao", Phone: &phone, IsPrimary: true})
	store.PutGuest(bookingModel.Guest{ID: 2, BookingID: 1, Name: "Dev Rao"})

	return store
}

func TestGetFolio(t *testing.T) {
	store := seedFolioFixture(t)
	agg := NewAggregator(store)

	view, err := agg.GetFolio(1)
	if err != nil {
		t.Fatalf("GetFolio: %v", err)
	}

	if view.BookingID != 1 {
		t.Errorf("booking id = %d, want 1", view.BookingID)
	}
	if view.Booking.CheckInDate != "2026-03-10" || view.Booking.CheckOutDate != "2026-03-12" {
		t.Errorf("dates = %s / %s, want 2026-03-10 / 2026-03-12",
			view.Booking.CheckInDate, view.Booking.CheckOutDate)
	}
	if view.Booking.Nights != 2 {
		t.Errorf("nights = %d, want 2", view.Booking.Nights)
	}
	if len(view.Booking.NightlyRates) != view.Booking.Nights {
		t.Errorf("nightly rates = %d entries, want %d", len(view.Booking.NightlyRates), view.Booking.Nights)
	}
	if view.Customer.Name != "Anita Rao" || view.Customer.Email != "guest@example.com" {
		t.Errorf("customer block = %+v", view.Customer)
	}

	if len(view.Booking.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(view.Booking.Rooms))
	}
	// Ordered by room id; the first carries a price override.
	if view.Booking.Rooms[0].RoomID != 3 || view.Booking.Rooms[1].RoomID != 9 {
		t.Errorf("room order = [%d %d], want [3 9]",
			view.Booking.Rooms[0].RoomID, view.Booking.Rooms[1].RoomID)
	}
	if view.Booking.Rooms[0].EffectivePrice != 2000 {
		t.Errorf("room 3 effective price = %v, want 2000 (override)", view.Booking.Rooms[0].EffectivePrice)
	}
	if view.Booking.Rooms[1].EffectivePrice != 5500 {
		t.Errorf("room 9 effective price = %v, want 5500 (list price)", view.Booking.Rooms[1].EffectivePrice)
	}

	if view.Guests.Primary == nil || view.Guests.Primary.Name != "Anita Rao" {
		t.Errorf("primary guest = %+v, want Anita Rao", view.Guests.Primary)
	}
	if len(view.Guests.Additional) != 1 || view.Guests.Additional[0].Name != "Dev Rao" {
		t.Errorf("additional guests = %+v, want [Dev Rao]", view.Guests.Additional)
	}
}

func TestGetFolioUnknownBooking(t *testing.T) {
	agg := NewAggregator(memstore.New())

	_, err := agg.GetFolio(42)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestSplitGuestsNoPrimary(t *testing.T) {
	primary, additional, err := SplitGuests([]bookingModel.Guest{
		{ID: 1, BookingID: 1, Name: "A"},
		{ID: 2, BookingID: 1, Name: "B"},
	})
	if err != nil {
		t.Fatalf("SplitGuests: %v", err)
	}
	if primary != nil {
		t.Errorf("primary = %+v, want nil", primary)
	}
	if len(additional) != 2 {
		t.Errorf("additional = %d, want 2", len(additional))
	}
}

func TestSplitGuestsTwoPrimaries(t *testing.T) {
	_, _, err := SplitGuests([]bookingModel.Guest{
		{ID: 1, BookingID: 1, Name: "A", IsPrimary: true},
		{ID: 2, BookingID: 1, Name: "B", IsPrimary: true},
	})
	if !errors.Is(err, apperrors.ErrIntegrity) {
		t.Fatalf("err = %v, want integrity error", err)
	}
}

func TestGetFolioTwoPrimariesIsIntegrityError(t *testing.T) {
	store := seedFolioFixture(t)
	store.PutGuest(bookingModel.Guest{ID: 3, BookingID: 1, Name: "Imposter", IsPrimary: true})
	agg := NewAggregator(store)

	_, err := agg.GetFolio(1)
	if !errors.Is(err, apperrors.ErrIntegrity) {
		t.Fatalf("err = %v, want integrity error", err)
	}
}

func TestListAssignmentsOrdered(t *testing.T) {
	store := seedFolioFixture(t)
	agg := NewAggregator(store)

	assignments, err := agg.ListAssignments(1)
	if err != nil {
		t.Fatalf("ListAssignments: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("assignments = %d, want 2", len(assignments))
	}
	if assignments[0].RoomID != 3 || assignments[1].RoomID != 9 {
		t.Errorf("order = [%d %d], want [3 9]", assignments[0].RoomID, assignments[1].RoomID)
	}
}

func TestListAssignmentsUnknownBooking(t *testing.T) {
	agg := NewAggregator(memstore.New())

	_, err := agg.ListAssignments(42)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
