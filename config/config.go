package config

import (
	"log"
	"net/url"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to the hosted store. STORE_URL is the Postgres URL of the
// managed database and STORE_SERVICE_KEY its service credential; starting
// without either is a configuration error, not something to limp through.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	storeURL := os.Getenv("STORE_URL")
	serviceKey := os.Getenv("STORE_SERVICE_KEY")
	if storeURL == "" || serviceKey == "" {
		log.Fatalf("STORE_URL and STORE_SERVICE_KEY must be set")
	}

	u, err := url.Parse(storeURL)
	if err != nil {
		log.Fatalf("Invalid STORE_URL: %v", err)
	}
	user := u.User.Username()
	if user == "" {
		user = "postgres"
	}
	u.User = url.UserPassword(user, serviceKey)

	db, err := gorm.Open(postgres.Open(u.String()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.FoodItem{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// Port returns the listen address, defaulting to :8080.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}
