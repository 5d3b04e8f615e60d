package booking

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusReserved, BookingStatusCheckedIn, true},
		{BookingStatusReserved, BookingStatusCheckedOut, true},
		{BookingStatusReserved, BookingStatusCancelled, true},
		{BookingStatusCheckedIn, BookingStatusCheckedOut, true},
		{BookingStatusCheckedIn, BookingStatusCancelled, true},
		{BookingStatusCheckedIn, BookingStatusReserved, false},
		{BookingStatusCheckedOut, BookingStatusCheckedIn, false},
		{BookingStatusCheckedOut, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusReserved, false},
		{BookingStatusCancelled, BookingStatusCheckedOut, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	if BookingStatusReserved.IsTerminal() || BookingStatusCheckedIn.IsTerminal() {
		t.Errorf("active statuses must not be terminal")
	}
	if !BookingStatusCheckedOut.IsTerminal() || !BookingStatusCancelled.IsTerminal() {
		t.Errorf("checked_out and cancelled must be terminal")
	}
}

func TestPaymentStatusIsValid(t *testing.T) {
	for _, ps := range GetAllPaymentStatuses() {
		if !ps.IsValid() {
			t.Errorf("%s should be valid", ps)
		}
	}
	if PaymentStatus("settled").IsValid() {
		t.Errorf("unknown status should be invalid")
	}
}

func TestSettlementConsistent(t *testing.T) {
	b := Booking{TotalAmount: 5500, AmountPaid: 2000, RefundAmount: 300, AmountDue: 3800}
	if !b.SettlementConsistent() {
		t.Errorf("invariant should hold: 3800 = 5500 - 2000 + 300")
	}
	b.AmountDue = 3500
	if b.SettlementConsistent() {
		t.Errorf("invariant should not hold for due 3500")
	}
}

func TestNightlyRatesRoundTrip(t *testing.T) {
	var b Booking
	if err := b.SetNightlyRates([]float64{3250, 3300.5}); err != nil {
		t.Fatalf("SetNightlyRates: %v", err)
	}
	rates, err := b.NightlyRateValues()
	if err != nil {
		t.Fatalf("NightlyRateValues: %v", err)
	}
	if len(rates) != 2 || rates[0] != 3250 || rates[1] != 3300.5 {
		t.Errorf("rates = %v, want [3250 3300.5]", rates)
	}
}
