// Package scan implements the background observation producers: a
// polling Wi-Fi source, a continuous BLE source, and a line-oriented
// serial probe source. Each runs as a cancellable goroutine and feeds
// observations into an Ingester.
package scan

import "github.com/radiowatch/radiowatch/pkg/device"

// Ingester receives observations from scan sources. Satisfied by
// *device.Store; tests substitute a recording fake.
type Ingester interface {
	Update(obs device.Observation)
}
