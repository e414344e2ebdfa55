package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/utils"
)

// TelegramConfig holds the credentials and options for the notification
// chat. Built once at startup and handed to the relay service; nothing
// reads these environment variables per request.
type TelegramConfig struct {
	BotToken string
	ChatID   string
	// APIBase is the Telegram Bot API root; tests point it at a stub.
	APIBase string
	// Markdown switches outgoing order messages to MarkdownV2 with the
	// reserved character set escaped. Plain-text sends skip escaping.
	Markdown bool
}

// Configured reports whether both credentials are present.
func (tc TelegramConfig) Configured() bool {
	return tc.BotToken != "" && tc.ChatID != ""
}

// Config is the full runtime configuration of the storefront service.
type Config struct {
	Port     string
	Telegram TelegramConfig
}

// Load reads configuration from the environment. Missing Telegram
// credentials are a loud warning, never a crash: handlers degrade to a
// success-with-warning response instead.
func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Telegram: TelegramConfig{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
			APIBase:  getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
			Markdown: os.Getenv("TELEGRAM_MARKDOWN") == "true",
		},
	}

	if !cfg.Telegram.Configured() {
		utils.ErrorLogger.Println("Warning: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID is not set; order notifications will not reach the operator")
	}

	return cfg
}

// InitDB opens the in-memory catalog database and migrates the menu table.
// The catalog is the only table in the system; orders are never persisted.
func InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.MenuItem{}); err != nil {
		return nil, err
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
