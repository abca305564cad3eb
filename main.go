// Package main provides the main entry point for the Simorgh insurance administration system
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirphl/Simorgh/app/handlers"
	"github.com/amirphl/Simorgh/app/router"
	"github.com/amirphl/Simorgh/app/scheduler"
	businessflow "github.com/amirphl/Simorgh/business_flow"
	"github.com/amirphl/Simorgh/config"
	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/repository"
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Application represents the main application structure
type Application struct {
	router    *router.FiberRouter
	config    *config.ProductionConfig
	server    *fiber.App
	stopFuncs []func()
}

func main() {
	log.Println("Starting Simorgh application...")

	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Route the standard logger through rotation before anything else logs
	setupLogging(cfg.Logging)

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Setup graceful shutdown
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	// Stop background workers
	for _, fn := range app.stopFuncs {
		fn()
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogging directs the standard logger to a rotating file, stdout, or both
func setupLogging(cfg config.LoggingConfig) {
	if cfg.Output == "stdout" || cfg.FilePath == "" {
		return
	}

	rotated := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	switch cfg.Output {
	case "both":
		log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	default:
		log.SetOutput(rotated)
	}
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pooling configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pooling
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// runMigrations applies the schema for all persisted entities
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Vehicle{},
		&models.Home{},
		&models.Accident{},
		&models.AutoQuote{},
		&models.HomeQuote{},
		&models.AutoPolicy{},
		&models.HomePolicy{},
		&models.RiskFactorSnapshot{},
	)
}

// ensureRiskFactors seeds the default factor table when none has been stored yet
func ensureRiskFactors(db *gorm.DB) error {
	riskFactorRepo := repository.NewRiskFactorRepository(db)

	latest, err := riskFactorRepo.Latest(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read risk factors: %w", err)
	}
	if latest != nil {
		return nil
	}

	if err := riskFactorRepo.Save(context.Background(), models.DefaultRiskFactorSnapshot()); err != nil {
		return fmt.Errorf("failed to seed risk factors: %w", err)
	}

	log.Println("Seeded default risk factor snapshot")
	return nil
}

// initializeCache initializes the Cache client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled || cfg.Provider != "redis" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	// Override DB if provided in config
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established to %s (db=%d)", cfg.RedisURL, cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if client == nil {
		return cancel
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	// Initialize database
	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := ensureRiskFactors(db); err != nil {
		return nil, err
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	cancel := startCacheHealthMonitor(context.Background(), rc, cfg.Cache.CleanupInterval)
	stopFuncs = append(stopFuncs, cancel)

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	homeRepo := repository.NewHomeRepository(db)
	accidentRepo := repository.NewAccidentRepository(db)
	autoQuoteRepo := repository.NewAutoQuoteRepository(db)
	homeQuoteRepo := repository.NewHomeQuoteRepository(db)
	autoPolicyRepo := repository.NewAutoPolicyRepository(db)
	homePolicyRepo := repository.NewHomePolicyRepository(db)
	riskFactorRepo := repository.NewRiskFactorRepository(db)

	// Initialize flows
	riskFactorFlow := businessflow.NewRiskFactorFlow(riskFactorRepo, &cfg.Cache, rc)

	ratingFlow := businessflow.NewRatingFlow(
		customerRepo,
		vehicleRepo,
		homeRepo,
		accidentRepo,
		autoQuoteRepo,
		homeQuoteRepo,
		autoPolicyRepo,
		homePolicyRepo,
		riskFactorFlow,
	)

	quoteFlow := businessflow.NewQuoteFlow(
		customerRepo,
		autoQuoteRepo,
		homeQuoteRepo,
	)

	policyFlow := businessflow.NewPolicyFlow(
		customerRepo,
		autoQuoteRepo,
		homeQuoteRepo,
		autoPolicyRepo,
		homePolicyRepo,
		repository.NewGormTransactionManager(db),
	)

	reportFlow := businessflow.NewReportFlow(autoPolicyRepo, homePolicyRepo)

	// Initialize handlers
	quoteHandler := handlers.NewQuoteHandler(ratingFlow, quoteFlow)
	policyHandler := handlers.NewPolicyHandler(policyFlow)
	riskFactorAdminHandler := handlers.NewRiskFactorAdminHandler(riskFactorFlow)
	reportAdminHandler := handlers.NewReportAdminHandler(reportFlow)

	// Initialize router
	appRouter := router.NewFiberRouter(
		quoteHandler,
		policyHandler,
		riskFactorAdminHandler,
		reportAdminHandler,
		cfg.Metrics.Enabled,
	)

	// Start the policy expiry sweep
	sched := scheduler.NewPolicyExpiryScheduler(policyFlow, log.Default(), cfg.Scheduler.PolicyExpiryInterval)
	stopScheduler := sched.Start(context.Background())
	stopFuncs = append(stopFuncs, stopScheduler)

	// Create application struct from FiberRouter
	fiberRouter := appRouter.(*router.FiberRouter)
	application := &Application{
		router:    fiberRouter,
		config:    cfg,
		server:    fiberRouter.GetApp(),
		stopFuncs: stopFuncs,
	}

	return application, nil
}
