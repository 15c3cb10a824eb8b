package scan

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/radiowatch/radiowatch/pkg/device"
)

func TestParseProbeLine(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		ok       bool
		wantType device.Type
		wantAddr string
		wantRSSI int
		wantSSID string
		wantName string
	}{
		{
			name: "wifi with ssid", line: "wifi,AA:BB:CC:DD:EE:FF,-42,HomeNet",
			ok: true, wantType: device.TypeWiFi, wantAddr: "AA:BB:CC:DD:EE:FF",
			wantRSSI: -42, wantSSID: "HomeNet",
		},
		{
			name: "ble with name", line: "ble,11:22:33:44:55:66,-70,Tile Tracker",
			ok: true, wantType: device.TypeBLE, wantAddr: "11:22:33:44:55:66",
			wantRSSI: -70, wantName: "Tile Tracker",
		},
		{
			name: "ble without name", line: "ble,11:22:33:44:55:67,-88",
			ok: true, wantType: device.TypeBLE, wantAddr: "11:22:33:44:55:67",
			wantRSSI: -88,
		},
		{
			name: "padded fields", line: " wifi , AA:BB:CC:DD:EE:FF , -42 , HomeNet ",
			ok: true, wantType: device.TypeWiFi, wantAddr: "AA:BB:CC:DD:EE:FF",
			wantRSSI: -42, wantSSID: "HomeNet",
		},
		{name: "comment", line: "# probe v1.2 boot", ok: false},
		{name: "blank", line: "   ", ok: false},
		{name: "unknown kind", line: "zigbee,AA:BB:CC:DD:EE:FF,-42", ok: false},
		{name: "missing rssi", line: "wifi,AA:BB:CC:DD:EE:FF", ok: false},
		{name: "non-numeric rssi", line: "wifi,AA:BB:CC:DD:EE:FF,weak", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obs, ok := ParseProbeLine(tc.line)
			if ok != tc.ok {
				t.Fatalf("ParseProbeLine(%q) ok = %v, want %v", tc.line, ok, tc.ok)
			}
			if !ok {
				return
			}
			if obs.Type != tc.wantType || obs.Addr != tc.wantAddr {
				t.Errorf("parsed %+v, want type %s addr %s", obs, tc.wantType, tc.wantAddr)
			}
			if obs.Signal == nil || *obs.Signal != tc.wantRSSI {
				t.Errorf("Signal = %v, want %d", obs.Signal, tc.wantRSSI)
			}
			if obs.SSID != tc.wantSSID || obs.Name != tc.wantName {
				t.Errorf("SSID = %q Name = %q, want %q / %q", obs.SSID, obs.Name, tc.wantSSID, tc.wantName)
			}
		})
	}
}

func TestProbeSource_IngestsLines(t *testing.T) {
	store := &fakeIngester{}
	src := NewProbeSource(store, "/dev/fake")
	src.open = func(path string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(
			"# probe boot\nwifi,AA:BB:CC:DD:EE:FF,-42,HomeNet\nnoise\nble,11:22:33:44:55:66,-70,Tag\n",
		)), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := src.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	obs := store.all()
	if len(obs) != 2 {
		t.Fatalf("got %d observations, want 2", len(obs))
	}
	if obs[0].Type != device.TypeWiFi || obs[1].Type != device.TypeBLE {
		t.Errorf("observation types = %s, %s", obs[0].Type, obs[1].Type)
	}
}
