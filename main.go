package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/muniras-delights/bakery-app/config"
	"github.com/muniras-delights/bakery-app/database"
	"github.com/muniras-delights/bakery-app/router"
	"github.com/muniras-delights/bakery-app/services"
	"github.com/muniras-delights/bakery-app/utils"
)

func init() {
	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open catalog database: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed catalog: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	telegram := services.NewTelegramService(cfg.Telegram)

	r := router.SetupRouter(db, telegram)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
