package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/http/middleware"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/http/routes"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/services"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"

	_ "github.com/Narongrit3125/Scismo-webapp-sub000/docs" // Swagger docs
)

// @title Scismo Webapp API
// @version 1.0
// @description Student Council of Science CMS API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@scismo.org

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := config.MigrateDatabase(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}

	// Seed admin user and master data
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Register Prometheus collectors
	metrics.Register()

	// Start hourly maintenance (expired campaigns, ended activities, stale tokens)
	maintenance := services.NewMaintenanceService(
		repositories.NewActivityRepository(db),
		repositories.NewDonationRepository(db),
		repositories.NewRefreshTokenRepository(db),
	)
	if err := maintenance.Start(); err != nil {
		log.Fatalf("❌ Failed to start maintenance service: %v", err)
	}
	defer maintenance.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Scismo Webapp API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
