package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wedding-backend/config"
	"wedding-backend/models"
)

var DB *gorm.DB

// Connect establishes a connection to the database
func Connect() {
	var err error

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		config.C.DBHost, config.C.DBUser, config.C.DBPass, config.C.DBName, config.C.DBPort)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")
}

// Migrate automatically migrates the database schema
func Migrate() {
	DB.AutoMigrate(&models.Guest{}, &models.RSVP{})
	log.Println("Database migration completed")
}
