package gormstore

import (
	"errors"

	"hotel-frontdesk/apperrors"
	"hotel-frontdesk/storage"

	bookingModel "hotel-frontdesk/models/booking"
	customerModel "hotel-frontdesk/models/customer"

	"gorm.io/gorm"
)

// FolioRows reads the booking and its related rows without transactional
// isolation; folio reads are a best-effort snapshot.
func (s *Store) FolioRows(bookingID uint) (*storage.FolioRows, error) {
	var b bookingModel.Booking
	if err := s.db.First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking %d not found", bookingID)
		}
		return nil, apperrors.Storage("find booking", err)
	}

	var cust customerModel.Customer
	if err := s.db.First(&cust, b.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A booking always references exactly one customer; a missing
			// row signals upstream corruption, not a client error.
			return nil, apperrors.Integrity("booking %d references missing customer %d", bookingID, b.CustomerID)
		}
		return nil, apperrors.Storage("find customer", err)
	}

	var assignments []bookingModel.RoomAssignment
	if err := s.db.Preload("Room").Where("booking_id = ?", bookingID).Order("room_id").Find(&assignments).Error; err != nil {
		return nil, apperrors.Storage("list room assignments", err)
	}

	var guests []bookingModel.Guest
	if err := s.db.Where("booking_id = ?", bookingID).Order("id").Find(&guests).Error; err != nil {
		return nil, apperrors.Storage("list guests", err)
	}

	return &storage.FolioRows{
		Booking:     b,
		Customer:    cust,
		Assignments: assignments,
		Guests:      guests,
	}, nil
}

func (s *Store) ListAssignments(bookingID uint) ([]bookingModel.RoomAssignment, error) {
	exists, err := s.BookingExists(bookingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("booking %d not found", bookingID)
	}

	var assignments []bookingModel.RoomAssignment
	if err := s.db.Preload("Room").Where("booking_id = ?", bookingID).Order("room_id").Find(&assignments).Error; err != nil {
		return nil, apperrors.Storage("list room assignments", err)
	}
	return assignments, nil
}
