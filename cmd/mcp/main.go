package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/db"
	"github.com/urmzd/roomstatus/pkg/device"
	roommcp "github.com/urmzd/roomstatus/pkg/mcp"
	"github.com/urmzd/roomstatus/pkg/room"
	"github.com/urmzd/roomstatus/pkg/telemetry"
)

func main() {
	// Logging must go to stderr, stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/roomstatus/roomstatus.db)")
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

	if _, err := database.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	registry := device.NewMemoryRegistry()

	rooms, err := room.Load(cfg.Rooms, registry, telemetry.New())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build rooms")
	}

	// Create and start MCP server
	mcpServer := roommcp.NewServer(rooms, registry, cfg.BasePath())

	log.Info().Int("rooms", rooms.Len()).Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
