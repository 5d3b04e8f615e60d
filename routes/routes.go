package routes

import (
	"hotel-frontdesk/constants"
	bookingController "hotel-frontdesk/controllers/booking"
	foodController "hotel-frontdesk/controllers/foodorder"
	"hotel-frontdesk/logger"
	"hotel-frontdesk/middleware"
	folioService "hotel-frontdesk/services/folio"
	foodService "hotel-frontdesk/services/foodorder"
	settlementService "hotel-frontdesk/services/settlement"
	"hotel-frontdesk/storage/gormstore"
	"hotel-frontdesk/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := gormstore.New(db)
	engine := settlementService.NewEngine(store)
	manager := foodService.NewManager(store, engine)
	aggregator := folioService.NewAggregator(store)

	asyncLogger := logger.NewAsyncLogger(db)
	bookings := bookingController.NewBookingController(db, engine, aggregator)
	foodOrders := foodController.NewFoodOrderController(manager)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLog(asyncLogger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "ok",
		})
	})

	/*=============================================================================
	| Booking & settlement routes
	===============================================================================*/
	bookingGroup := app.Group("/bookings")

	bookingGroup.Get("/:id", middleware.RequireAuthentication(), bookings.GetFolio)

	bookingGroup.Post("/", middleware.RequirePermissions(
		constants.SettlementPermissions...,
	), bookings.Store)

	bookingGroup.Put("/:id/payment", middleware.RequirePermissions(
		constants.SettlementPermissions...,
	), bookings.UpdatePaymentStatus)

	bookingGroup.Put("/:id/checkout", middleware.RequirePermissions(
		constants.SettlementPermissions...,
	), bookings.Checkout)

	/*=============================================================================
	| Food order routes
	===============================================================================*/
	foodGroup := app.Group("/food-orders")

	foodGroup.Post("/order", middleware.RequirePermissions(
		constants.FoodOrderPermissions...,
	), foodOrders.CreateOrder)

	foodGroup.Post("/order/items", middleware.RequirePermissions(
		constants.FoodOrderPermissions...,
	), foodOrders.AddItem)

	foodGroup.Delete("/order/:orderId/item/:itemId", middleware.RequirePermissions(
		constants.FoodOrderPermissions...,
	), foodOrders.DeleteItem)

	foodGroup.Delete("/order/:orderId", middleware.RequirePermissions(
		constants.FoodOrderPermissions...,
	), foodOrders.CancelOrder)

	foodGroup.Get("/order/:orderId", middleware.RequireAuthentication(), foodOrders.GetOrder)
}
