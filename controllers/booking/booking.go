package booking

import (
	"fmt"
	"strconv"

	"hotel-frontdesk/apperrors"
	"hotel-frontdesk/logger"
	bookingModel "hotel-frontdesk/models/booking"
	customerModel "hotel-frontdesk/models/customer"
	roomModel "hotel-frontdesk/models/room"
	"hotel-frontdesk/services/folio"
	"hotel-frontdesk/services/settlement"
	"hotel-frontdesk/types"
	bookingTypes "hotel-frontdesk/types/booking"
	"hotel-frontdesk/utils"
	"hotel-frontdesk/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB         *gorm.DB
	Settlement *settlement.Engine
	Folio      *folio.Aggregator
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, engine *settlement.Engine, aggregator *folio.Aggregator) *BookingController {
	return &BookingController{
		DB:         db,
		Settlement: engine,
		Folio:      aggregator,
	}
}

// GetFolio returns the consolidated folio view for a booking
func (bc *BookingController) GetFolio(c *fiber.Ctx) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	view, err := bc.Folio.GetFolio(bookingID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to build folio for booking %d", bookingID), err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Folio retrieved successfully",
		Data:    view,
	})
}

// UpdatePaymentStatus records the declared payment status for a booking
func (bc *BookingController) UpdatePaymentStatus(c *fiber.Ctx) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req bookingTypes.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}

	updated, err := bc.Settlement.UpdatePaymentStatus(bookingID, bookingModel.PaymentStatus(req.PaymentStatus), actor(c))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to update payment status for booking %d", bookingID), err)
		return respondError(c, err)
	}

	logger.Success(fmt.Sprintf("Payment status for booking %d set to %s", bookingID, req.PaymentStatus))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment status updated successfully",
		Data:    updated,
	})
}

// Checkout settles a booking at the final amount and marks it checked out
func (bc *BookingController) Checkout(c *fiber.Ctx) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req bookingTypes.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}

	updated, adjustment, err := bc.Settlement.Checkout(bookingID, *req.FinalAmount, actor(c))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to check out booking %d", bookingID), err)
		return respondError(c, err)
	}

	logger.Success(fmt.Sprintf("Booking %d checked out, final amount %.2f", bookingID, *req.FinalAmount))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking checked out successfully",
		Data: fiber.Map{
			"booking":    updated,
			"adjustment": adjustment,
		},
	})
}

// Store creates a new booking with its room assignments and guests
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}
	if err := req.Validate(); err != nil {
		return respondError(c, apperrors.Validation("%v", err))
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return respondError(c, apperrors.Validation("%v", err))
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return respondError(c, apperrors.Validation("%v", err))
	}
	nights := utils.NightsBetween(checkIn, checkOut)
	if nights < 1 {
		return respondError(c, apperrors.Validation("check-out must be after check-in"))
	}
	if len(req.NightlyRates) > 0 && len(req.NightlyRates) != nights {
		return respondError(c, apperrors.Validation("nightly_rates must have one entry per night (%d)", nights))
	}

	var cust customerModel.Customer
	if err := bc.DB.First(&cust, req.CustomerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return respondError(c, apperrors.NotFound("customer %d not found", req.CustomerID))
		}
		logger.Error("Failed to find customer", err)
		return respondError(c, apperrors.Storage("find customer", err))
	}

	// Resolve rooms up front so the nightly rate can be derived from their
	// effective prices when the caller did not supply a breakdown.
	var ratePerNight float64
	assignments := make([]bookingModel.RoomAssignment, 0, len(req.Rooms))
	for _, roomReq := range req.Rooms {
		var rm roomModel.Room
		if err := bc.DB.First(&rm, roomReq.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return respondError(c, apperrors.NotFound("room %d not found", roomReq.RoomID))
			}
			logger.Error("Failed to find room", err)
			return respondError(c, apperrors.Storage("find room", err))
		}
		assignment := bookingModel.RoomAssignment{
			RoomID:        rm.ID,
			Room:          rm,
			PricePerNight: roomReq.PricePerNight,
		}
		ratePerNight += assignment.EffectivePrice()
		assignments = append(assignments, assignment)
	}

	rates := req.NightlyRates
	if len(rates) == 0 {
		rates = make([]float64, nights)
		for i := range rates {
			rates[i] = ratePerNight
		}
	}
	var total float64
	for _, rate := range rates {
		total += rate
	}
	total = utils.RoundAmount(total)

	booking := bookingModel.Booking{
		ReferenceCode: utils.GenerateReferenceCode(),
		CustomerID:    cust.ID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		CheckInTime:   req.CheckInTime,
		CheckOutTime:  req.CheckOutTime,
		Nights:        nights,
		TotalAmount:   total,
		AmountDue:     total,
		PaymentStatus: bookingModel.PaymentStatusPending,
		Status:        bookingModel.BookingStatusReserved,
		CreatedBy:     actor(c),
	}
	if err := booking.SetNightlyRates(rates); err != nil {
		logger.Error("Failed to encode nightly rates", err)
		return respondError(c, apperrors.Storage("encode nightly rates", err))
	}

	// Use DB.Transaction for automatic rollback on error
	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			logger.Error("Failed to create booking", err)
			return apperrors.Storage("create booking", err)
		}

		for i := range assignments {
			assignments[i].BookingID = booking.ID
			assignments[i].Room = roomModel.Room{}
			if err := tx.Create(&assignments[i]).Error; err != nil {
				logger.Error("Failed to create room assignment", err)
				return apperrors.Storage("create room assignment", err)
			}
		}

		for _, guestReq := range req.Guests {
			guest := bookingModel.Guest{
				BookingID: booking.ID,
				Name:      guestReq.Name,
				Phone:     optional(guestReq.Phone),
				IDType:    optional(guestReq.IDType),
				IDNumber:  optional(guestReq.IDNumber),
				IsPrimary: guestReq.IsPrimary,
			}
			if err := tx.Create(&guest).Error; err != nil {
				logger.Error("Failed to create guest", err)
				return apperrors.Storage("create guest", err)
			}
		}
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", booking.ID))

	var created bookingModel.Booking
	if err := bc.DB.Preload("Customer").Preload("Rooms.Room").Preload("Guests").First(&created, booking.ID).Error; err != nil {
		logger.Error("Failed to load created booking data", err)
		return respondError(c, apperrors.Storage("load created booking", err))
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    created,
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

// actor names the caller for audit fields, falling back to the desk itself
// when the route runs unauthenticated.
func actor(c *fiber.Ctx) string {
	claims, ok := c.Locals("user").(map[string]interface{})
	if ok {
		if name, ok := claims["sub"].(string); ok && name != "" {
			return name
		}
	}
	return "front-desk"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
