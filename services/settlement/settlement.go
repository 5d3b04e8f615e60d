// Package settlement owns the booking's monetary fields and status
// transitions. Every operation is a single atomic read-modify-write through
// the settlement store, so concurrent mutations on one booking serialize and
// the invariant amount_due = total_amount - amount_paid + refund_amount
// holds after every call.
package settlement

import (
	"errors"
	"fmt"

	"hotel-frontdesk/apperrors"
	"hotel-frontdesk/logger"
	bookingModel "hotel-frontdesk/models/booking"
	"hotel-frontdesk/storage"
)

// Adjustment classification for checkout. Derived display value, never
// stored.
const (
	AdjustmentAdditionalCharges = "additional_charges"
	AdjustmentDiscount          = "discount"
	AdjustmentNone              = "none"
)

// Adjustment describes how a checkout changed the booking total.
type Adjustment struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// Engine is the payment settlement engine.
type Engine struct {
	store storage.SettlementStore
}

func NewEngine(store storage.SettlementStore) *Engine {
	return &Engine{store: store}
}

// UpdatePaymentStatus records the declared payment status. It does not touch
// the monetary fields; the caller is responsible for having reconciled
// amounts already (status update and checkout are separate steps at the
// desk).
func (e *Engine) UpdatePaymentStatus(bookingID uint, status bookingModel.PaymentStatus, updatedBy string) (*bookingModel.Booking, error) {
	if !status.IsValid() {
		return nil, apperrors.Validation("invalid payment status %q, expected one of %v", status, bookingModel.GetAllPaymentStatuses())
	}

	return e.store.UpdateSettlement(bookingID, bookingModel.EventPaymentStatusUpdated, updatedBy, func(b *bookingModel.Booking) error {
		b.PaymentStatus = status
		return nil
	})
}

// Checkout settles the stay at finalAmount and moves the booking to
// checked_out. A booking already checked out or cancelled yields Conflict
// and stays untouched. The returned Adjustment classifies the difference
// between finalAmount and the previous total.
func (e *Engine) Checkout(bookingID uint, finalAmount float64, updatedBy string) (*bookingModel.Booking, Adjustment, error) {
	if finalAmount < 0 {
		return nil, Adjustment{}, apperrors.Validation("final amount must not be negative")
	}

	adjustment := Adjustment{Type: AdjustmentNone}
	b, err := e.store.UpdateSettlement(bookingID, bookingModel.EventCheckedOut, updatedBy, func(b *bookingModel.Booking) error {
		if b.Status.IsTerminal() {
			return apperrors.Conflict("booking %d is already %s", bookingID, b.Status)
		}

		difference := finalAmount - b.TotalAmount
		switch {
		case difference > 0:
			adjustment = Adjustment{Type: AdjustmentAdditionalCharges, Amount: difference}
		case difference < 0:
			adjustment = Adjustment{Type: AdjustmentDiscount, Amount: -difference}
		}

		b.TotalAmount = finalAmount
		b.AmountDue = finalAmount - b.AmountPaid + b.RefundAmount
		b.Status = bookingModel.BookingStatusCheckedOut
		return nil
	})
	if err != nil {
		return nil, Adjustment{}, err
	}
	return b, adjustment, nil
}

// RecomputeFromCharges sets the booking total to room charges plus the open
// food order total and recomputes the amount due. This is the integration
// point between food charges and the settlement total; terminal bookings
// keep their settled amounts and yield Conflict. The charges are read under
// the same lock as the write, so an item mutation completing before the
// write is always reflected in the persisted total.
func (e *Engine) RecomputeFromCharges(bookingID uint, updatedBy string) (*bookingModel.Booking, error) {
	return e.store.UpdateSettlementWithCharges(bookingID, bookingModel.EventChargesRecomputed, updatedBy, func(b *bookingModel.Booking, roomCharges, foodTotal float64) error {
		if b.Status.IsTerminal() {
			return apperrors.Conflict("booking %d is already %s", bookingID, b.Status)
		}
		b.TotalAmount = roomCharges + foodTotal
		b.AmountDue = b.TotalAmount - b.AmountPaid + b.RefundAmount
		return nil
	})
}

// RecomputeBestEffort recomputes charges and swallows the expected Conflict
// for terminal bookings (their totals were settled at checkout). Used by the
// food-order hooks after item mutations.
func (e *Engine) RecomputeBestEffort(bookingID uint, updatedBy string) {
	if _, err := e.RecomputeFromCharges(bookingID, updatedBy); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return
		}
		logger.Error(fmt.Sprintf("Failed to recompute charges for booking %d", bookingID), err)
	}
}
