// Package folio assembles the consolidated read-model of a booking: the
// booking row, its customer, room assignments and guests. The shaping logic
// is pure; all storage access goes through the folio store. Reads are a
// best-effort snapshot and are not isolated from concurrent mutations.
package folio

import (
	"hotel-frontdesk/apperrors"
	bookingModel "hotel-frontdesk/models/booking"
	"hotel-frontdesk/storage"
	folioTypes "hotel-frontdesk/types/folio"
)

const dateLayout = "2006-01-02"

// Aggregator is the booking folio aggregator.
type Aggregator struct {
	store storage.FolioStore
}

func NewAggregator(store storage.FolioStore) *Aggregator {
	return &Aggregator{store: store}
}

// GetFolio returns the folio view for a booking, or NotFound when the
// booking id is unknown.
func (a *Aggregator) GetFolio(bookingID uint) (*folioTypes.FolioView, error) {
	rows, err := a.store.FolioRows(bookingID)
	if err != nil {
		return nil, err
	}
	return BuildView(rows)
}

// ListAssignments returns the booking's room assignments ordered by room id.
func (a *Aggregator) ListAssignments(bookingID uint) ([]bookingModel.RoomAssignment, error) {
	return a.store.ListAssignments(bookingID)
}

// SplitGuests partitions guests into the single primary and the rest, order
// preserved. Zero primaries is tolerated (legacy/partial data reads as "no
// primary guest"); more than one is an invariant violation from upstream and
// reported as an IntegrityError rather than arbitrarily picking one.
func SplitGuests(guests []bookingModel.Guest) (*folioTypes.GuestView, []folioTypes.GuestView, error) {
	var primary *folioTypes.GuestView
	additional := make([]folioTypes.GuestView, 0, len(guests))

	for _, g := range guests {
		view := guestView(g)
		if g.IsPrimary {
			if primary != nil {
				return nil, nil, apperrors.Integrity("booking %d has more than one primary guest", g.BookingID)
			}
			primary = &view
			continue
		}
		additional = append(additional, view)
	}
	return primary, additional, nil
}

// BuildView shapes the joined rows into the folio view. Pure function.
func BuildView(rows *storage.FolioRows) (*folioTypes.FolioView, error) {
	primary, additional, err := SplitGuests(rows.Guests)
	if err != nil {
		return nil, err
	}

	rates, err := rows.Booking.NightlyRateValues()
	if err != nil {
		return nil, apperrors.Integrity("booking %d has a malformed nightly rate breakdown", rows.Booking.ID)
	}

	rooms := make([]folioTypes.RoomView, 0, len(rows.Assignments))
	for i := range rows.Assignments {
		a := &rows.Assignments[i]
		rooms = append(rooms, folioTypes.RoomView{
			RoomID:         a.RoomID,
			RoomNumber:     a.Room.RoomNumber,
			RoomType:       a.Room.RoomType,
			EffectivePrice: a.EffectivePrice(),
			Status:         a.Room.Status,
		})
	}

	b := rows.Booking
	return &folioTypes.FolioView{
		BookingID: b.ID,
		CreatedAt: b.CreatedAt,
		Booking: folioTypes.BookingBlock{
			ReferenceCode: b.ReferenceCode,
			CheckInDate:   b.CheckInDate.Format(dateLayout),
			CheckOutDate:  b.CheckOutDate.Format(dateLayout),
			CheckInTime:   b.CheckInTime,
			CheckOutTime:  b.CheckOutTime,
			Nights:        b.Nights,
			TotalAmount:   b.TotalAmount,
			AmountPaid:    b.AmountPaid,
			AmountDue:     b.AmountDue,
			RefundAmount:  b.RefundAmount,
			PaymentStatus: b.PaymentStatus.String(),
			Status:        b.Status.String(),
			NightlyRates:  rates,
			Rooms:         rooms,
		},
		Customer: folioTypes.CustomerBlock{
			Name:      rows.Customer.Name,
			Phone:     rows.Customer.Phone,
			Email:     deref(rows.Customer.Email),
			Address:   deref(rows.Customer.Address),
			GSTNumber: deref(rows.Customer.GSTNumber),
			MealPlan:  deref(rows.Customer.MealPlan),
		},
		Guests: folioTypes.GuestsBlock{
			Primary:    primary,
			Additional: additional,
		},
	}, nil
}

func guestView(g bookingModel.Guest) folioTypes.GuestView {
	return folioTypes.GuestView{
		ID:    g.ID,
		Name:  g.Name,
		Phone: deref(g.Phone),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
