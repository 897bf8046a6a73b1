package database

import (
	"fmt"
	"log"

	config "github.com/anjiri1684/quick_stay/configs"
	"github.com/anjiri1684/quick_stay/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedDemoHotel provisions one hotel owner with a couple of rooms so the
// owner dashboard has something to aggregate on a fresh install. Skipped
// entirely when OWNER_EMAIL is not configured.
func SeedDemoHotel() {
	ownerEmail := config.Config("OWNER_EMAIL")
	ownerPassword := config.Config("OWNER_PASSWORD")
	if ownerEmail == "" || ownerPassword == "" {
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", ownerEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for owner user: %v", err)
	}
	if count > 0 {
		log.Println("Demo hotel owner already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash owner password: %v", err)
	}

	owner := models.User{
		FullName: "QuickStay Demo Owner",
		Email:    ownerEmail,
		Password: string(hashedPassword),
		Role:     "hotelOwner",
	}
	if err := DB.Create(&owner).Error; err != nil {
		log.Fatalf("🔥 Failed to seed owner user: %v", err)
	}

	hotel := models.Hotel{
		Name:    "QuickStay Demo Hotel",
		Address: "Main Road 123",
		City:    "New York",
		Contact: "+1 234 567 890",
		OwnerID: owner.ID,
	}
	if err := DB.Create(&hotel).Error; err != nil {
		log.Fatalf("🔥 Failed to seed hotel: %v", err)
	}

	rooms := []models.Room{
		{HotelID: hotel.ID, RoomType: "Single Bed", PricePerNight: 100},
		{HotelID: hotel.ID, RoomType: "Double Bed", PricePerNight: 250},
		{HotelID: hotel.ID, RoomType: "Luxury Room", PricePerNight: 400},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Fatalf("🔥 Failed to seed rooms: %v", err)
	}

	log.Println("✅ Demo hotel seeded successfully")
}
