package foodorder

import (
	"fmt"
	"strconv"

	"hotel-frontdesk/apperrors"
	"hotel-frontdesk/logger"
	"hotel-frontdesk/services/foodorder"
	"hotel-frontdesk/types"
	foodTypes "hotel-frontdesk/types/food"
	"hotel-frontdesk/validation"

	"github.com/gofiber/fiber/v2"
)

// FoodOrderController handles food-order HTTP requests
type FoodOrderController struct {
	Manager *foodorder.Manager
}

// NewFoodOrderController creates a new food order controller
func NewFoodOrderController(manager *foodorder.Manager) *FoodOrderController {
	return &FoodOrderController{
		Manager: manager,
	}
}

// CreateOrder returns the booking's open order, creating one when none exists
func (fc *FoodOrderController) CreateOrder(c *fiber.Ctx) error {
	var req foodTypes.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}

	order, created, err := fc.Manager.GetOrCreateOrder(req.BookingID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to get or create food order for booking %d", req.BookingID), err)
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Open food order retrieved"
	if created {
		status = fiber.StatusCreated
		message = "Food order created successfully"
		logger.Success(fmt.Sprintf("Food order %d created for booking %d", order.ID, req.BookingID))
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: message,
		Data:    order,
	})
}

// AddItem appends one line to an open order
func (fc *FoodOrderController) AddItem(c *fiber.Ctx) error {
	var req foodTypes.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}

	item, err := fc.Manager.AddItem(req.OrderID, req.MenuItemID, req.Quantity)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to add item to food order %d", req.OrderID), err)
		return respondError(c, err)
	}

	logger.Success(fmt.Sprintf("Item added to food order %d", req.OrderID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Item added successfully",
		Data:    item,
	})
}

// DeleteItem removes one line from an order
func (fc *FoodOrderController) DeleteItem(c *fiber.Ctx) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := parseID(c, "itemId")
	if err != nil {
		return respondError(c, err)
	}

	if err := fc.Manager.DeleteItem(orderID, itemID); err != nil {
		logger.Error(fmt.Sprintf("Failed to delete item %d from food order %d", itemID, orderID), err)
		return respondError(c, err)
	}

	logger.Success(fmt.Sprintf("Item %d deleted from food order %d", itemID, orderID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Item deleted successfully",
	})
}

// CancelOrder transitions an open order to cancelled
func (fc *FoodOrderController) CancelOrder(c *fiber.Ctx) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return respondError(c, err)
	}

	order, err := fc.Manager.CancelOrder(orderID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to cancel food order %d", orderID), err)
		return respondError(c, err)
	}

	logger.Success(fmt.Sprintf("Food order %d cancelled", orderID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Food order cancelled successfully",
		Data:    order,
	})
}

// GetOrder returns an order with its items
func (fc *FoodOrderController) GetOrder(c *fiber.Ctx) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return respondError(c, err)
	}

	order, items, err := fc.Manager.GetOrder(orderID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Food order retrieved successfully",
		Data: fiber.Map{
			"order": order,
			"items": items,
			"total": order.Total(),
		},
	})
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("invalid %s %q", param, raw)
	}
	return uint(id), nil
}

func respondError(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Code:    apperrors.Code(err),
		Message: apperrors.Message(err),
	})
}
