package main

import (
	"log"
	"os"

	"restro-orders-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding notification types...")
	SeedNotificationTypes(db)

	color.Cyan("Seeding menu catalog...")
	SeedCatalog(db)

	color.Cyan("Seeding admin account...")
	SeedAdmin(db)

	color.Green("✅ Seeding completed.")
}
