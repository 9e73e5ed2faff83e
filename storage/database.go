package storage

import (
	"log"
	"os"

	"github.com/Divyansh670/FeedbackHub/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")

	var db *gorm.DB
	var dbError error
	if dsn != "" {
		db, dbError = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		// Single-file local store for development.
		db, dbError = gorm.Open(sqlite.Open("feedback.db"), &gorm.Config{})
	}
	if dbError != nil {
		log.Panic("error connecting to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Feedback{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	if err := SeedDemoData(db); err != nil {
		log.Panic("error seeding demo data: " + err.Error())
	}
	return db
}
