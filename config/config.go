package config

import (
	"fmt"
	"log"
	"os"

	"github.com/jayuttam/fitness-diet-recommendation-system/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv reads .env if present; in deployed environments the variables come
// from the platform and the file is absent.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.DailyLog{},
		&models.Rating{},
		&models.Referral{},
		&models.Contact{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
