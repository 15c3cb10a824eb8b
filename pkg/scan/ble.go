package scan

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"tinygo.org/x/bluetooth"

	"github.com/radiowatch/radiowatch/pkg/device"
)

// BLESource runs a continuous Bluetooth Low-Energy scan and ingests
// every received advertisement.
type BLESource struct {
	store   Ingester
	adapter *bluetooth.Adapter
}

// NewBLESource creates a BLE source on the default adapter.
func NewBLESource(store Ingester) *BLESource {
	return &BLESource{
		store:   store,
		adapter: bluetooth.DefaultAdapter,
	}
}

// Run enables the BLE stack and scans until the context is cancelled.
// Scan blocks for its whole lifetime; cancellation is delivered by
// stopping the scan from a watcher goroutine.
func (s *BLESource) Run(ctx context.Context) error {
	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("enable BLE stack: %w", err)
	}

	go func() {
		<-ctx.Done()
		if err := s.adapter.StopScan(); err != nil {
			log.Warn().Err(err).Msg("BLE scan stop failed")
		}
	}()

	log.Info().Msg("BLE scanner started")

	err := s.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
		rssi := int(result.RSSI)
		s.store.Update(device.Observation{
			Type:   device.TypeBLE,
			Addr:   result.Address.String(),
			Name:   result.LocalName(),
			Signal: &rssi,
		})
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("BLE scan: %w", err)
	}

	log.Info().Msg("BLE scanner stopped")
	return nil
}
