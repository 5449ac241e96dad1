// Roomline Core - Hotel Room Reservation Service
//
// This is the main entry point for the Roomline Core application.
// Roomline manages a fixed 97-room hotel inventory entirely in memory,
// allocating rooms to minimise walking time between them, and exposes
// the booking operations over HTTP and WebSocket.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/roomline/roomline-core/migrations"

	"github.com/roomline/roomline-core/internal/allocator"
	"github.com/roomline/roomline-core/internal/api"
	"github.com/roomline/roomline-core/internal/audit"
	"github.com/roomline/roomline-core/internal/booking"
	"github.com/roomline/roomline-core/internal/infrastructure/config"
	"github.com/roomline/roomline-core/internal/infrastructure/database"
	"github.com/roomline/roomline-core/internal/infrastructure/logging"
	"github.com/roomline/roomline-core/internal/inventory"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Roomline Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open the audit database (optional). Room occupancy lives in memory;
	// SQLite only records booking history.
	var auditRepo *audit.SQLiteRepository
	if cfg.Audit.Enabled {
		db, dbErr := database.Open(ctx, database.Config{
			Path:        cfg.Database.Path,
			WALMode:     cfg.Database.WALMode,
			BusyTimeout: cfg.Database.BusyTimeout,
		})
		if dbErr != nil {
			return fmt.Errorf("opening database: %w", dbErr)
		}
		defer func() {
			log.Info("closing database")
			if closeErr := db.Close(); closeErr != nil {
				log.Error("error closing database", "error", closeErr)
			}
		}()
		log.Info("database connected", "path", cfg.Database.Path)

		if migrateErr := db.Migrate(ctx); migrateErr != nil {
			return fmt.Errorf("running migrations: %w", migrateErr)
		}
		log.Info("database migrations complete")

		auditRepo = audit.NewSQLiteRepository(db.DB)
	} else {
		log.Info("audit trail disabled")
	}

	// Initialise the inventory and booking service
	store := inventory.NewStore()
	service := booking.NewService(store, allocator.New(nil), cfg.Booking.RandomSeed)
	service.SetLogger(log)
	if auditRepo != nil {
		service.SetRecorder(auditRepo)
	}
	log.Info("inventory initialised", "rooms", inventory.TotalRooms)

	// Start the API server
	deps := api.Deps{
		Config:  cfg.API,
		WS:      cfg.WebSocket,
		Logger:  log,
		Service: service,
		Version: version,
	}
	if auditRepo != nil {
		deps.Audit = auditRepo
	}
	server, err := api.New(deps)
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if startErr := server.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		log.Info("stopping API server")
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error stopping API server", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("Roomline Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses ROOMLINE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("ROOMLINE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
