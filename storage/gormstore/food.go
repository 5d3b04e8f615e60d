package gormstore

import (
	"errors"

	"hotel-frontdesk/apperrors"
	bookingModel "hotel-frontdesk/models/booking"
	foodModel "hotel-frontdesk/models/food"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) BookingExists(bookingID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&bookingModel.Booking{}).Where("id = ?", bookingID).Count(&count).Error; err != nil {
		return false, apperrors.Storage("check booking exists", err)
	}
	return count > 0, nil
}

// GetOrCreateOpenOrder relies on the partial unique index on
// food_orders(booking_id) WHERE status = 'open'. The insert with ON CONFLICT
// DO NOTHING is the atomic "insert if none exists"; a lookup-then-insert
// would let two concurrent callers create two open orders.
func (s *Store) GetOrCreateOpenOrder(bookingID uint) (*foodModel.FoodOrder, bool, error) {
	order := foodModel.FoodOrder{
		BookingID: bookingID,
		Status:    foodModel.OrderStatusOpen,
	}

	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&order)
	if res.Error != nil {
		return nil, false, apperrors.Storage("create food order", res.Error)
	}
	if res.RowsAffected == 1 {
		return &order, true, nil
	}

	// Lost the race or an open order already existed; fetch it.
	var existing foodModel.FoodOrder
	err := s.db.Preload("Items").
		Where("booking_id = ? AND status = ?", bookingID, foodModel.OrderStatusOpen).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.Conflict("open food order for booking %d disappeared concurrently", bookingID)
		}
		return nil, false, apperrors.Storage("find open food order", err)
	}
	return &existing, false, nil
}

func (s *Store) GetOrder(orderID uint) (*foodModel.FoodOrder, []foodModel.OrderItem, error) {
	var order foodModel.FoodOrder
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound("food order %d not found", orderID)
		}
		return nil, nil, apperrors.Storage("find food order", err)
	}

	var items []foodModel.OrderItem
	if err := s.db.Preload("MenuItem").Where("order_id = ?", orderID).Order("id").Find(&items).Error; err != nil {
		return nil, nil, apperrors.Storage("list order items", err)
	}
	order.Items = items
	return &order, items, nil
}

// AddItem locks the order row so a concurrent cancel cannot slip between the
// open check and the insert.
func (s *Store) AddItem(orderID uint, item *foodModel.OrderItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order foodModel.FoodOrder
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("food order %d not found", orderID)
			}
			return apperrors.Storage("lock food order", err)
		}

		if order.Status != foodModel.OrderStatusOpen {
			return apperrors.Conflict("food order %d is not open", orderID)
		}

		item.OrderID = orderID
		if err := tx.Create(item).Error; err != nil {
			return apperrors.Storage("create order item", err)
		}
		return nil
	})
}

func (s *Store) DeleteItem(orderID, itemID uint) error {
	res := s.db.Where("id = ? AND order_id = ?", itemID, orderID).Delete(&foodModel.OrderItem{})
	if res.Error != nil {
		return apperrors.Storage("delete order item", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("item %d not found on food order %d", itemID, orderID)
	}
	return nil
}

func (s *Store) CancelOrder(orderID uint) (*foodModel.FoodOrder, error) {
	var order foodModel.FoodOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("food order %d not found", orderID)
			}
			return apperrors.Storage("lock food order", err)
		}

		if order.Status == foodModel.OrderStatusCancelled {
			return apperrors.Conflict("food order %d is already cancelled", orderID)
		}

		order.Status = foodModel.OrderStatusCancelled
		if err := tx.Save(&order).Error; err != nil {
			return apperrors.Storage("cancel food order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) FindMenuItem(menuItemID uint) (*foodModel.MenuItem, error) {
	var item foodModel.MenuItem
	if err := s.db.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("menu item %d not found", menuItemID)
		}
		return nil, apperrors.Storage("find menu item", err)
	}
	return &item, nil
}

// openFoodTotal sums quantity * unit_price over the booking's open order.
// Runs on the caller's transaction so settlement recomputes read it under
// the booking row lock.
func openFoodTotal(tx *gorm.DB, bookingID uint) (float64, error) {
	var order foodModel.FoodOrder
	err := tx.Where("booking_id = ? AND status = ?", bookingID, foodModel.OrderStatusOpen).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, apperrors.Storage("find open food order", err)
	}

	var total float64
	err = tx.Model(&foodModel.OrderItem{}).
		Where("order_id = ?", order.ID).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Storage("sum order items", err)
	}
	return total, nil
}
