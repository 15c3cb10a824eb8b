package scan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"

	"github.com/radiowatch/radiowatch/pkg/device"
)

// ProbeSource ingests observations from external scanner hardware
// (e.g. an ESP32 probe) streaming lines over a serial port. One
// observation per line:
//
//	wifi,AA:BB:CC:DD:EE:FF,-42,HomeNet
//	ble,11:22:33:44:55:66,-70,Tile Tracker
//	ble,11:22:33:44:55:67,-88
//
// Blank lines and lines starting with '#' are ignored; anything else
// that does not parse is skipped.
type ProbeSource struct {
	store Ingester
	path  string
	open  func(path string) (io.ReadCloser, error)
}

// NewProbeSource creates a probe source reading from the serial port
// at path (115200 baud, 8N1).
func NewProbeSource(store Ingester, path string) *ProbeSource {
	return &ProbeSource{
		store: store,
		path:  path,
		open:  openProbePort,
	}
}

func openProbePort(path string) (io.ReadCloser, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, err
	}
	return port, nil
}

// Run reads lines until the context is cancelled or the port fails.
// Closing the port from the watcher goroutine unblocks the reader.
func (s *ProbeSource) Run(ctx context.Context) error {
	port, err := s.open(s.path)
	if err != nil {
		return fmt.Errorf("open probe port %s: %w", s.path, err)
	}

	go func() {
		<-ctx.Done()
		_ = port.Close()
	}()

	log.Info().Str("port", s.path).Msg("Serial probe started")

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		obs, ok := ParseProbeLine(scanner.Text())
		if !ok {
			continue
		}
		s.store.Update(obs)
	}

	if ctx.Err() != nil {
		log.Info().Str("port", s.path).Msg("Serial probe stopped")
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read probe port %s: %w", s.path, err)
	}
	return nil
}

// ParseProbeLine parses one probe line into an observation. Reports
// false for comments, blank lines and anything malformed.
func ParseProbeLine(line string) (device.Observation, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return device.Observation{}, false
	}

	fields := strings.SplitN(line, ",", 4)
	if len(fields) < 3 {
		return device.Observation{}, false
	}

	var devType device.Type
	switch strings.ToLower(strings.TrimSpace(fields[0])) {
	case "wifi":
		devType = device.TypeWiFi
	case "ble":
		devType = device.TypeBLE
	default:
		return device.Observation{}, false
	}

	rssi, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return device.Observation{}, false
	}

	obs := device.Observation{
		Type:   devType,
		Addr:   strings.TrimSpace(fields[1]),
		Signal: &rssi,
	}
	if len(fields) == 4 {
		name := strings.TrimSpace(fields[3])
		if devType == device.TypeWiFi {
			obs.SSID = name
		} else {
			obs.Name = name
		}
	}
	return obs, true
}
