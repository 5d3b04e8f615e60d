package booking

// BookingStatus is the lifecycle state of a stay.
type BookingStatus string

const (
	BookingStatusReserved   BookingStatus = "reserved"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// PaymentStatus is the declared settlement state. It is an independent axis
// from BookingStatus and may move backward (refunds are legitimate).
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusReserved, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once no further lifecycle transition is allowed.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusCheckedOut || bs == BookingStatusCancelled
}

// CanTransitionTo reports whether the lifecycle state machine permits moving
// from bs to next: reserved -> checked_in -> checked_out, with cancelled
// reachable from reserved or checked_in.
func (bs BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch bs {
	case BookingStatusReserved:
		return next == BookingStatusCheckedIn || next == BookingStatusCheckedOut || next == BookingStatusCancelled
	case BookingStatusCheckedIn:
		return next == BookingStatusCheckedOut || next == BookingStatusCancelled
	default:
		return false
	}
}

func (ps PaymentStatus) String() string {
	return string(ps)
}

func (ps PaymentStatus) IsValid() bool {
	switch ps {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return true
	default:
		return false
	}
}

// GetAllPaymentStatuses returns all valid payment statuses.
func GetAllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusPartial,
		PaymentStatusPaid,
	}
}
