package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/radiowatch/radiowatch/pkg/api"
	"github.com/radiowatch/radiowatch/pkg/api/handlers"
	"github.com/radiowatch/radiowatch/pkg/device"
	"github.com/radiowatch/radiowatch/pkg/device/schema"
	"github.com/radiowatch/radiowatch/pkg/journal"
	"github.com/radiowatch/radiowatch/pkg/scan"

	_ "github.com/radiowatch/radiowatch/docs"
)

// @title           Radiowatch API
// @version         1.0
// @description     Live view of nearby Wi-Fi access points and BLE peripherals

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	addr := flag.String("addr", ":8080", "HTTP listen address")
	historyCap := flag.Int("history", device.DefaultHistoryCap, "Signal history samples kept per device")
	wifiInterval := flag.Duration("wifi-interval", 5*time.Second, "Wi-Fi scan interval")
	noBLE := flag.Bool("no-ble", false, "Disable the BLE scanner")
	probePort := flag.String("probe", "", "Serial port of an external probe (empty = disabled)")
	journalPath := flag.String("journal", "", "Path to the sighting journal database (empty = disabled)")
	journalInterval := flag.Duration("journal-interval", time.Minute, "How often to journal a snapshot")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the store; an invalid capacity is a configuration error.
	resolver := device.NewResolver(device.OUIBackend{})
	store, err := device.NewStore(*historyCap, resolver)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid store configuration")
	}

	validator, err := schema.NewValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to compile observation schema")
	}

	// Optional sighting journal
	var reader handlers.SightingReader
	var db *journal.DB
	if *journalPath != "" {
		db, err = journal.Open(*journalPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open journal")
		}
		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate journal")
		}
		reader = db
		log.Info().Str("path", db.Path()).Msg("Journal opened")

		go journalLoop(ctx, store, db, *journalInterval)
	}

	// Kick off background scanners
	go scan.NewWiFiSource(store, *wifiInterval).Run(ctx)

	if !*noBLE {
		go func() {
			if err := scan.NewBLESource(store).Run(ctx); err != nil {
				log.Warn().Err(err).Msg("BLE scanner unavailable")
			}
		}()
	}

	if *probePort != "" {
		go func() {
			if err := scan.NewProbeSource(store, *probePort).Run(ctx); err != nil {
				log.Warn().Err(err).Msg("Serial probe unavailable")
			}
		}()
	}

	// Create the API router
	router := api.NewRouter(store, validator, reader)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		cancel()
		if db != nil {
			if err := db.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close journal")
			}
		}
		os.Exit(0)
	}()

	log.Info().Str("address", *addr).Int("history", *historyCap).Msg("Starting API server")

	if err := router.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// journalLoop records a snapshot every interval until cancelled.
// Journal failures are logged, never fatal.
func journalLoop(ctx context.Context, store *device.Store, db *journal.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := db.RecordSnapshot(ctx, store.Snapshot(), time.Now()); err != nil {
				log.Warn().Err(err).Msg("Failed to journal snapshot")
			}
		}
	}
}
