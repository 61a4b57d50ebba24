// Domus Core - Home Automation Registry
//
// This is the main entry point for the Domus Core application. It owns
// the shared in-memory device registry, keeps it in sync with the SQLite
// device store, and optionally announces device lifecycle over MQTT.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/domus-home/domus-core/migrations"

	"github.com/domus-home/domus-core/internal/announce"
	"github.com/domus-home/domus-core/internal/controller"
	"github.com/domus-home/domus-core/internal/device"
	"github.com/domus-home/domus-core/internal/infrastructure/config"
	"github.com/domus-home/domus-core/internal/infrastructure/database"
	"github.com/domus-home/domus-core/internal/infrastructure/logging"
	"github.com/domus-home/domus-core/internal/infrastructure/mqtt"
	"github.com/domus-home/domus-core/internal/registry"
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
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
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
	log.Info("starting Domus Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
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

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	applied, _, statusErr := db.GetMigrationStatus(ctx)
	if statusErr != nil {
		return fmt.Errorf("checking migration status: %w", statusErr)
	}
	log.Info("database migrations complete", "applied", len(applied))

	// Build the shared device registry
	reg := registry.Shared()
	reg.SetLogger(log.With("component", "registry"))

	// Wire the service layer over the registry and the store
	store := device.NewSQLiteStore(db.DB)
	devices := controller.NewDeviceController(reg, store)
	devices.SetLogger(log.With("component", "controller"))

	// Restore persisted devices into the registry
	restored, err := devices.Hydrate(ctx)
	if err != nil {
		return fmt.Errorf("restoring devices: %w", err)
	}
	log.Info("device registry initialised", "devices", restored)

	// Connect to MQTT broker (optional)
	if cfg.MQTT.Enabled {
		mqttClient, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})

		// Announce lifecycle events and republish restored device state
		// so retained topics match the registry after a restart.
		announcer := announce.New(mqttClient, log.With("component", "announce"), byte(cfg.MQTT.QoS))
		devices.SetAnnouncer(announcer)
		for id, dev := range devices.Devices() {
			announcer.DeviceStateChanged(id, dev)
		}

		if err := mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt health check: %w", err)
		}
	} else {
		log.Info("MQTT disabled")
	}

	// Verify the database is healthy before declaring readiness
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal",
		"devices", devices.Count(),
	)

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order: MQTT, then database.

	log.Info("Domus Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses DOMUS_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("DOMUS_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
