package scan

import (
	"context"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/radiowatch/radiowatch/pkg/device"
)

// HiddenSSID is the fallback display name for access points that
// broadcast an empty SSID.
const HiddenSSID = "(hidden)"

// AccessPoint is one row of a Wi-Fi scan listing.
type AccessPoint struct {
	BSSID  string
	SSID   string
	Signal int // raw value: 0-100 quality or already dBm
}

// WiFiSource polls the system Wi-Fi adapter via nmcli and ingests the
// visible access points every interval.
type WiFiSource struct {
	store    Ingester
	interval time.Duration
	scan     func(ctx context.Context) (string, error)
}

// NewWiFiSource creates a Wi-Fi source scanning every interval.
func NewWiFiSource(store Ingester, interval time.Duration) *WiFiSource {
	return &WiFiSource{
		store:    store,
		interval: interval,
		scan:     runNmcli,
	}
}

// Run polls until the context is cancelled. A failing scan is logged
// and retried next tick; nmcli being absent makes every tick fail,
// which is noisy but harmless.
func (s *WiFiSource) Run(ctx context.Context) {
	log.Info().Dur("interval", s.interval).Msg("Wi-Fi scanner started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.scanOnce(ctx)
		select {
		case <-ctx.Done():
			log.Info().Msg("Wi-Fi scanner stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *WiFiSource) scanOnce(ctx context.Context) {
	out, err := s.scan(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn().Err(err).Msg("Wi-Fi scan failed")
		}
		return
	}

	for _, ap := range ParseNmcliList(out) {
		dbm := QualityToDBM(ap.Signal)
		obs := device.Observation{
			Type:   device.TypeWiFi,
			Addr:   ap.BSSID,
			SSID:   ap.SSID,
			Signal: &dbm,
		}
		if ap.SSID == "" {
			obs.Name = HiddenSSID
		}
		s.store.Update(obs)
	}
}

func runNmcli(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "nmcli", "-t", "-f", "BSSID,SSID,SIGNAL",
		"device", "wifi", "list", "--rescan", "yes")
	out, err := cmd.Output()
	return string(out), err
}

// ParseNmcliList parses `nmcli -t -f BSSID,SSID,SIGNAL device wifi
// list` output. In terse mode fields are colon-separated and literal
// colons (every one in a BSSID) are backslash-escaped:
//
//	AA\:BB\:CC\:DD\:EE\:FF:HomeNet:72
//	AA\:BB\:CC\:DD\:EE\:00::35
//
// Rows that do not yield three fields with a numeric signal are
// skipped.
func ParseNmcliList(output string) []AccessPoint {
	var aps []AccessPoint
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := splitTerse(line)
		if len(fields) != 3 {
			continue
		}
		signal, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		aps = append(aps, AccessPoint{
			BSSID:  fields[0],
			SSID:   fields[1],
			Signal: signal,
		})
	}
	return aps
}

// splitTerse splits an nmcli terse line on unescaped colons and
// unescapes `\:` and `\\` within fields.
func splitTerse(line string) []string {
	var fields []string
	var b strings.Builder
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == ':':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	return append(fields, b.String())
}

// QualityToDBM converts a raw signal value to dBm. Values in 0..100
// are link quality and map linearly onto -100..-50 dBm; anything else
// is assumed to already be dBm.
func QualityToDBM(raw int) int {
	if raw >= 0 && raw <= 100 {
		return int(math.Round(float64(raw)/2.0 - 100))
	}
	return raw
}
