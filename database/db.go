package database

import (
	"fmt"
	"os"

	"hotel-frontdesk/database/seeders"
	"hotel-frontdesk/logger"
	"hotel-frontdesk/models/booking"
	"hotel-frontdesk/models/customer"
	"hotel-frontdesk/models/food"
	"hotel-frontdesk/models/log"
	"hotel-frontdesk/models/room"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	// Get database configuration from environment variables
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE") // Optional: "disable", "require", etc.

	// Set default sslmode if not provided
	if sslmode == "" {
		sslmode = "disable"
	}

	// Build PostgreSQL DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	// Handle foreign key constraints after migrations
	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	// Create indexes for better performance
	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	// Seed reference data
	seeders.SeedRooms(DB)
	seeders.SeedMenuItems(DB)

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order
func autoMigrate() error {
	// Stage 1: Core foundation models
	stage1Models := []interface{}{
		&customer.Customer{},
		&room.Room{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: Bookings depend on customers
	stage2Models := []interface{}{
		&booking.Booking{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: Models hanging off a booking
	stage3Models := []interface{}{
		&booking.RoomAssignment{},
		&booking.Guest{},
		&booking.SettlementEvent{},
	}

	for _, model := range stage3Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 4: Food ordering
	stage4Models := []interface{}{
		&food.MenuItem{},
		&food.FoodOrder{},
		&food.OrderItem{},
	}

	for _, model := range stage4Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 5: Remaining models
	remainingModels := []interface{}{
		// Logging
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// At most one open food order per booking. The partial unique index is
	// what lets get-or-create race safely on ON CONFLICT DO NOTHING.
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uq_food_orders_booking_open ON food_orders(booking_id) WHERE status = 'open'").Error; err != nil {
		return fmt.Errorf("failed to create open food order unique index: %w", err)
	}

	// Booking indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_customer_id ON bookings(customer_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking customer_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)").Error; err != nil {
		return fmt.Errorf("failed to create booking status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_payment_status ON bookings(payment_status)").Error; err != nil {
		return fmt.Errorf("failed to create booking payment_status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create booking created_at index: %w", err)
	}

	// Room assignment and guest indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_room_assignments_booking_id ON room_assignments(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create room assignment booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_guests_booking_id ON guests(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create guest booking_id index: %w", err)
	}

	// Settlement event indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_settlement_events_booking_id ON settlement_events(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create settlement event booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_settlement_events_created_at ON settlement_events(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create settlement event created_at index: %w", err)
	}

	// Food order indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_food_orders_booking_id ON food_orders(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create food order booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)").Error; err != nil {
		return fmt.Errorf("failed to create order item order_id index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_method ON logs(method)").Error; err != nil {
		return fmt.Errorf("failed to create log method index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	// Define constraints with their names for checking existence
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_bookings_customer",
			sql: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_customer
				  FOREIGN KEY (customer_id) REFERENCES customers(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_room_assignments_booking",
			sql: `ALTER TABLE room_assignments ADD CONSTRAINT fk_room_assignments_booking
				  FOREIGN KEY (booking_id) REFERENCES bookings(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_room_assignments_room",
			sql: `ALTER TABLE room_assignments ADD CONSTRAINT fk_room_assignments_room
				  FOREIGN KEY (room_id) REFERENCES rooms(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_guests_booking",
			sql: `ALTER TABLE guests ADD CONSTRAINT fk_guests_booking
				  FOREIGN KEY (booking_id) REFERENCES bookings(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_settlement_events_booking",
			sql: `ALTER TABLE settlement_events ADD CONSTRAINT fk_settlement_events_booking
				  FOREIGN KEY (booking_id) REFERENCES bookings(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_food_orders_booking",
			sql: `ALTER TABLE food_orders ADD CONSTRAINT fk_food_orders_booking
				  FOREIGN KEY (booking_id) REFERENCES bookings(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_order_items_order",
			sql: `ALTER TABLE order_items ADD CONSTRAINT fk_order_items_order
				  FOREIGN KEY (order_id) REFERENCES food_orders(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_order_items_menu_item",
			sql: `ALTER TABLE order_items ADD CONSTRAINT fk_order_items_menu_item
				  FOREIGN KEY (menu_item_id) REFERENCES menu_items(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
	}

	for _, constraint := range constraints {
		// Check if constraint already exists
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}
