package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global PostgreSQL database connection.
var DB *gorm.DB

// Rdb is the global Redis client.
var Rdb *redis.Client

// Ctx is the context for Redis operations.
var Ctx = context.Background()

// Config holds application settings loaded from the environment.
type Config struct {
	Port string

	// MonthlyDue is the fixed dues amount each member owes per month.
	MonthlyDue float64
	// DefaultBasePrice is used by the simulated price source for tickers
	// it has no base price for.
	DefaultBasePrice float64
	// AlertThreshold is the absolute percent change that triggers a
	// price-change alert.
	AlertThreshold float64
	// HighPriorityThreshold is the absolute percent change above which a
	// price-change alert is classified high priority.
	HighPriorityThreshold float64

	// RefreshSpec is the cron spec for the periodic price refresh.
	RefreshSpec string

	// PriceSource selects the price lookup backend: "simulated" or "investing".
	PriceSource  string
	InvestingURL string

	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	SenderEmail string
	ClubEmail   string
}

// Load builds a Config from environment variables.
func Load() *Config {
	return &Config{
		Port:                  getEnv("PORT", "8080"),
		MonthlyDue:            getEnvFloat("MONTHLY_DUE", 7000),
		DefaultBasePrice:      getEnvFloat("DEFAULT_BASE_PRICE", 50.0),
		AlertThreshold:        getEnvFloat("ALERT_THRESHOLD", 5.0),
		HighPriorityThreshold: getEnvFloat("HIGH_PRIORITY_THRESHOLD", 8.0),
		RefreshSpec:           getEnv("REFRESH_SPEC", "@every 6h"),
		PriceSource:           getEnv("PRICE_SOURCE", "simulated"),
		InvestingURL:          getEnv("INVESTING_URL", "https://tr.investing.com/equities"),
		SMTPHost:              getEnv("SMTP_HOST", ""),
		SMTPPort:              getEnv("SMTP_PORT", "587"),
		SMTPUser:              getEnv("SMTP_USER", ""),
		SMTPPass:              getEnv("SMTP_PASS", ""),
		SenderEmail:           getEnv("SENDER_EMAIL", ""),
		ClubEmail:             getEnv("CLUB_EMAIL", ""),
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Istanbul",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to the database:", err)
	}
}

// InitRedis initializes the Redis connection.
func InitRedis() {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	if err := Rdb.Ping(Ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, value, defaultVal)
		return defaultVal
	}
	return f
}
