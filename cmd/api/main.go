package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/api"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/db"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/room"
	"github.com/urmzd/roomstatus/pkg/telemetry"

	_ "github.com/urmzd/roomstatus/docs"
)

// @title           Room Status API
// @version         1.0
// @description     Room status endpoint for campus AV monitoring

// @host      localhost:8080
// @BasePath  /udmcws
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/roomstatus/roomstatus.db)")
	importPath := flag.String("import", "", "Room configuration file to validate and store in the active profile")
	roomName := flag.String("name", "", "Name of the imported room (default: file name without extension)")
	basePath := flag.String("base", "", "Path room routes are mounted under; stored in the active profile")
	flag.Parse()

	ctx := context.Background()

	// Open database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	// Migrate and bootstrap on first run
	bootstrapped, err := database.Init(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	if bootstrapped {
		log.Info().Msg("First run detected, database bootstrapped")
	}

	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if *basePath != "" && *basePath != cfg.Profile.BasePath {
		cfg.Profile.BasePath = *basePath
		if err := database.Profiles().Update(ctx, cfg.Profile); err != nil {
			log.Fatal().Err(err).Msg("Failed to update base path")
		}
	}

	if *importPath != "" {
		name := *roomName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(*importPath), filepath.Ext(*importPath))
		}
		if err := importRoom(ctx, database, cfg.Profile.ID, name, *importPath); err != nil {
			log.Fatal().Err(err).Str("file", *importPath).Msg("Failed to import room")
		}
		log.Info().Str("room", name).Str("file", *importPath).Msg("Room imported")

		if cfg, err = database.ActiveConfig(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to reload configuration")
		}
	}

	log.Info().
		Str("profile", cfg.Profile.Name).
		Str("base_path", cfg.BasePath()).
		Str("api_address", cfg.APIAddress()).
		Int("rooms", len(cfg.Rooms)).
		Msg("Configuration loaded")

	// Device adapters register into the registry; none are built in.
	registry := device.NewMemoryRegistry()
	metrics := telemetry.New()

	rooms, err := room.Load(cfg.Rooms, registry, metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build rooms")
	}
	if rooms.Len() == 0 {
		log.Warn().Msg("No rooms configured, use -import to add one")
	}

	// Create and start API router
	router := api.NewRouter(rooms, registry, metrics, cfg.BasePath())

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	// Start server
	addr := cfg.APIAddress()
	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// importRoom validates a room configuration file and stores it under name.
func importRoom(ctx context.Context, database *db.DB, profileID int64, name, path string) error {
	if _, err := config.Load(path); err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return database.Rooms().Save(ctx, &db.Room{
		ProfileID: profileID,
		Name:      name,
		Document:  raw,
	})
}
