package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/radiowatch/radiowatch/pkg/device"
	radiowatchmcp "github.com/radiowatch/radiowatch/pkg/mcp"
	"github.com/radiowatch/radiowatch/pkg/scan"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	historyCap := flag.Int("history", device.DefaultHistoryCap, "Signal history samples kept per device")
	wifiInterval := flag.Duration("wifi-interval", 5*time.Second, "Wi-Fi scan interval")
	noBLE := flag.Bool("no-ble", false, "Disable the BLE scanner")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver := device.NewResolver(device.OUIBackend{})
	store, err := device.NewStore(*historyCap, resolver)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid store configuration")
	}

	// The MCP process runs its own scanners, so the snapshot fills up
	// while the server is attached.
	go scan.NewWiFiSource(store, *wifiInterval).Run(ctx)

	if !*noBLE {
		go func() {
			if err := scan.NewBLESource(store).Run(ctx); err != nil {
				log.Warn().Err(err).Msg("BLE scanner unavailable")
			}
		}()
	}

	mcpServer := radiowatchmcp.NewServer(store)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
