package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"cjpowerhouse-backend/config"
	"cjpowerhouse-backend/internal/database"
)

func main() {
	fmt.Println("Starting database seeding...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found, using system environment variables.")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)

	fmt.Println("Seeding done.")
}
