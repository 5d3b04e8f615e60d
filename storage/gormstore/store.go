// Package gormstore implements the storage ports on GORM/Postgres.
package gormstore

import (
	"errors"

	"hotel-frontdesk/apperrors"
	bookingModel "hotel-frontdesk/models/booking"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements storage.SettlementStore, storage.FoodOrderStore and
// storage.FolioStore on one shared *gorm.DB handle.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindBooking(bookingID uint) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := s.db.First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking %d not found", bookingID)
		}
		return nil, apperrors.Storage("find booking", err)
	}
	return &b, nil
}

// UpdateSettlement performs the read-modify-write under SELECT ... FOR
// UPDATE so concurrent settlement mutations on one booking serialize. The
// event snapshot goes into the same transaction; a mutate error rolls back
// everything.
func (s *Store) UpdateSettlement(bookingID uint, eventType, updatedBy string, mutate func(*bookingModel.Booking) error) (*bookingModel.Booking, error) {
	return s.settle(bookingID, eventType, updatedBy, func(tx *gorm.DB, b *bookingModel.Booking) error {
		return mutate(b)
	})
}

// UpdateSettlementWithCharges reads the room charges and the open food
// total on the transaction that holds the booking row lock. Item inserts
// themselves are not blocked by that lock, but every item mutation triggers
// its own recompute which serializes on it, so the last recompute always
// reads the items that were current when it acquired the lock.
func (s *Store) UpdateSettlementWithCharges(bookingID uint, eventType, updatedBy string, mutate func(b *bookingModel.Booking, roomCharges, foodTotal float64) error) (*bookingModel.Booking, error) {
	return s.settle(bookingID, eventType, updatedBy, func(tx *gorm.DB, b *bookingModel.Booking) error {
		roomCharges, err := sumRoomCharges(tx, b)
		if err != nil {
			return err
		}
		foodTotal, err := openFoodTotal(tx, b.ID)
		if err != nil {
			return err
		}
		return mutate(b, roomCharges, foodTotal)
	})
}

func (s *Store) settle(bookingID uint, eventType, updatedBy string, apply func(tx *gorm.DB, b *bookingModel.Booking) error) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("booking %d not found", bookingID)
			}
			return apperrors.Storage("lock booking", err)
		}

		if err := apply(tx, &b); err != nil {
			return err
		}

		b.UpdatedBy = updatedBy
		if err := tx.Save(&b).Error; err != nil {
			return apperrors.Storage("save booking settlement", err)
		}

		event := bookingModel.SnapshotSettlement(&b, eventType, updatedBy)
		if err := tx.Create(&event).Error; err != nil {
			return apperrors.Storage("save settlement event", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func sumRoomCharges(tx *gorm.DB, b *bookingModel.Booking) (float64, error) {
	var assignments []bookingModel.RoomAssignment
	if err := tx.Preload("Room").Where("booking_id = ?", b.ID).Find(&assignments).Error; err != nil {
		return 0, apperrors.Storage("list room assignments", err)
	}

	var charges float64
	for i := range assignments {
		charges += assignments[i].EffectivePrice() * float64(b.Nights)
	}
	return charges, nil
}
