package seeders

import (
	"log"

	"hotel-frontdesk/models/room"

	"gorm.io/gorm"
)

func SeedRooms(db *gorm.DB) {
	log.Printf("🔍 Checking room inventory data integrity...")

	floor1 := "1"
	floor2 := "2"
	floor3 := "3"

	rooms := []room.Room{
		{RoomNumber: "101", RoomType: "standard", Price: 2500, Floor: &floor1},
		{RoomNumber: "102", RoomType: "standard", Price: 2500, Floor: &floor1},
		{RoomNumber: "103", RoomType: "standard", Price: 2500, Floor: &floor1},
		{RoomNumber: "104", RoomType: "twin", Price: 3000, Floor: &floor1},
		{RoomNumber: "105", RoomType: "twin", Price: 3000, Floor: &floor1},
		{RoomNumber: "201", RoomType: "deluxe", Price: 4000, Floor: &floor2},
		{RoomNumber: "202", RoomType: "deluxe", Price: 4000, Floor: &floor2},
		{RoomNumber: "203", RoomType: "deluxe", Price: 4200, Floor: &floor2},
		{RoomNumber: "204", RoomType: "family", Price: 5500, Floor: &floor2},
		{RoomNumber: "301", RoomType: "suite", Price: 8000, Floor: &floor3},
		{RoomNumber: "302", RoomType: "suite", Price: 8500, Floor: &floor3},
	}

	// Get all existing room numbers from database
	var existingNumbers []string
	if err := db.Model(&room.Room{}).Pluck("room_number", &existingNumbers).Error; err != nil {
		log.Printf("❌ Failed to fetch existing room numbers: %v", err)
		return
	}

	existingMap := make(map[string]bool)
	for _, number := range existingNumbers {
		existingMap[number] = true
	}

	var missingRooms []room.Room
	for _, rm := range rooms {
		if !existingMap[rm.RoomNumber] {
			missingRooms = append(missingRooms, rm)
		}
	}

	if len(missingRooms) == 0 {
		log.Printf("✅ All rooms are already present. No seeding needed.")
		return
	}

	log.Printf("🌱 Seeding %d missing rooms...", len(missingRooms))

	successCount := 0
	failureCount := 0

	for _, rm := range missingRooms {
		if err := db.Create(&rm).Error; err != nil {
			log.Printf("❌ Failed to seed room %s: %v", rm.RoomNumber, err)
			failureCount++
		} else {
			log.Printf("✅ Added room: %s (%s)", rm.RoomNumber, rm.RoomType)
			successCount++
		}
	}

	log.Printf("🎉 Room seeding completed! Successfully inserted %d rooms, %d failures", successCount, failureCount)
}
