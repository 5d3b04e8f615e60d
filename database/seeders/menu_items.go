package seeders

import (
	"log"

	"hotel-frontdesk/models/food"

	"gorm.io/gorm"
)

func SeedMenuItems(db *gorm.DB) {
	log.Printf("🔍 Checking menu item data integrity...")

	items := []food.MenuItem{
		{Name: "Continental Breakfast", Category: "breakfast", Price: 350, IsAvailable: true},
		{Name: "Masala Omelette", Category: "breakfast", Price: 150, IsAvailable: true},
		{Name: "Paratha Set", Category: "breakfast", Price: 180, IsAvailable: true},
		{Name: "Chicken Biryani", Category: "mains", Price: 450, IsAvailable: true},
		{Name: "Mutton Curry", Category: "mains", Price: 550, IsAvailable: true},
		{Name: "Grilled Fish", Category: "mains", Price: 600, IsAvailable: true},
		{Name: "Vegetable Fried Rice", Category: "mains", Price: 300, IsAvailable: true},
		{Name: "Club Sandwich", Category: "snacks", Price: 280, IsAvailable: true},
		{Name: "French Fries", Category: "snacks", Price: 150, IsAvailable: true},
		{Name: "Fresh Lime Soda", Category: "beverages", Price: 120, IsAvailable: true},
		{Name: "Masala Tea", Category: "beverages", Price: 80, IsAvailable: true},
		{Name: "Cold Coffee", Category: "beverages", Price: 160, IsAvailable: true},
		{Name: "Mineral Water", Category: "beverages", Price: 40, IsAvailable: true},
	}

	// Get all existing item names from database
	var existingNames []string
	if err := db.Model(&food.MenuItem{}).Pluck("name", &existingNames).Error; err != nil {
		log.Printf("❌ Failed to fetch existing menu item names: %v", err)
		return
	}

	existingMap := make(map[string]bool)
	for _, name := range existingNames {
		existingMap[name] = true
	}

	var missingItems []food.MenuItem
	for _, item := range items {
		if !existingMap[item.Name] {
			missingItems = append(missingItems, item)
		}
	}

	if len(missingItems) == 0 {
		log.Printf("✅ All menu items are already present. No seeding needed.")
		return
	}

	log.Printf("🌱 Seeding %d missing menu items...", len(missingItems))

	successCount := 0
	failureCount := 0

	for _, item := range missingItems {
		if err := db.Create(&item).Error; err != nil {
			log.Printf("❌ Failed to seed menu item %s: %v", item.Name, err)
			failureCount++
		} else {
			log.Printf("✅ Added menu item: %s (%s)", item.Name, item.Category)
			successCount++
		}
	}

	log.Printf("🎉 Menu seeding completed! Successfully inserted %d items, %d failures", successCount, failureCount)
}
