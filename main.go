package main

import (
	"context"
	"log"
	"os"
	"time"

	"club-tracker/config"
	"club-tracker/database"
	"club-tracker/handlers"
	"club-tracker/models"
	"club-tracker/notify"
	"club-tracker/prices"
	"club-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it.")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	cfg := config.Load()

	// Initialize PostgreSQL and Redis connections.
	config.InitDB()
	config.InitRedis()

	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	defer sqlDB.Close()

	// Auto-migrate models.
	if err := config.DB.AutoMigrate(
		&models.Member{},
		&models.Payment{},
		&models.Stock{},
		&models.Alert{},
		&models.Note{},
	); err != nil {
		log.Fatal("Failed to migrate models:", err)
	}

	if err := database.Seed(); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Price source: simulated by default, scraping when configured.
	var source prices.Source
	switch cfg.PriceSource {
	case "investing":
		source = prices.NewInvesting(cfg.InvestingURL, logger)
	default:
		simulated := prices.NewSimulated(time.Now().UnixNano())
		simulated.Default = cfg.DefaultBasePrice
		source = simulated
	}
	cached := prices.NewCached(source, config.Rdb, logger)

	var notifier notify.Notifier = notify.Noop{}
	if cfg.SMTPHost != "" && cfg.ClubEmail != "" {
		notifier = notify.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SenderEmail, cfg.ClubEmail, logger)
	}

	refresher := &services.Refresher{
		DB:                    config.DB,
		Source:                source,
		Cache:                 cached,
		Suggester:             services.NewStaticSuggester(time.Now().UnixNano()),
		Notifier:              notifier,
		Log:                   logger,
		AlertThreshold:        cfg.AlertThreshold,
		HighPriorityThreshold: cfg.HighPriorityThreshold,
	}

	runRefresh := func() {
		if _, err := refresher.Refresh(context.Background()); err != nil {
			logger.Errorf("Scheduled refresh failed: %v", err)
		}
	}

	// Refresh every 6 hours, plus once immediately on startup.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.RefreshSpec, runRefresh); err != nil {
		log.Fatal("Failed to schedule refresh:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()
	go runRefresh()

	handlers.SetMonthlyDue(cfg.MonthlyDue)

	router := gin.Default()

	router.GET("/dashboard", handlers.GetDashboard)

	router.GET("/members", handlers.GetMembers)
	router.POST("/members", handlers.AddMember)
	router.PUT("/members/:id", handlers.UpdateMember)
	router.DELETE("/members/:id", handlers.DeleteMember)

	router.GET("/payments", handlers.GetPayments)
	router.POST("/payments", handlers.AddPayment)
	router.PUT("/payments/:id", handlers.UpdatePayment)
	router.DELETE("/payments/:id", handlers.DeletePayment)
	router.GET("/payments/summary", handlers.GetPaymentSummary)
	router.GET("/payments/pool", handlers.GetInvestmentPool)

	router.GET("/stocks", handlers.GetStocks)
	router.POST("/stocks", handlers.AddStock(cached))
	router.PUT("/stocks/:id", handlers.UpdateStock)
	router.DELETE("/stocks/:id", handlers.DeleteStock)
	router.GET("/portfolio/summary", handlers.GetPortfolioSummary)

	router.GET("/alerts", handlers.GetAlerts)
	router.PUT("/alerts/:id/read", handlers.MarkAlertRead)
	router.PUT("/alerts/read-all", handlers.MarkAllAlertsRead)
	router.DELETE("/alerts/:id", handlers.DeleteAlert)
	router.DELETE("/alerts/read", handlers.ClearReadAlerts)

	router.GET("/notes", handlers.GetNotes)
	router.POST("/notes", handlers.AddNote)
	router.PUT("/notes/:id", handlers.UpdateNote)
	router.DELETE("/notes/:id", handlers.DeleteNote)

	router.GET("/prices/:ticker", handlers.GetStockPrice(cached))
	router.POST("/refresh", handlers.RefreshPrices(refresher))

	router.Run(":" + cfg.Port)
}
