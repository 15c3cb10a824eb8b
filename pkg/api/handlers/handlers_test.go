package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/radiowatch/radiowatch/pkg/api/types"
	"github.com/radiowatch/radiowatch/pkg/device"
	"github.com/radiowatch/radiowatch/pkg/device/schema"
	"github.com/radiowatch/radiowatch/pkg/journal"
)

func intp(v int) *int { return &v }

func newTestStore(t *testing.T) *device.Store {
	t.Helper()
	s, err := device.NewStore(10, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func newTestValidator(t *testing.T) *schema.Validator {
	t.Helper()
	v, err := schema.NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	return v
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestListDevices(t *testing.T) {
	store := newTestStore(t)
	store.Update(device.Observation{Type: device.TypeBLE, Addr: "11:22:33:44:55:66", Name: "Tag", Signal: intp(-70)})
	store.Update(device.Observation{Type: device.TypeWiFi, Addr: "77:88:99:AA:BB:CC", SSID: "Cafe", Signal: intp(-30)})

	engine := gin.New()
	engine.GET("/api/v1/devices", NewDevicesHandler(store).ListDevices)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp types.ListDevicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 2 || len(resp.Devices) != 2 {
		t.Fatalf("count = %d, devices = %d, want 2", resp.Count, len(resp.Devices))
	}
	// Wi-Fi sorts before BLE.
	if resp.Devices[0].Type != device.TypeWiFi || resp.Devices[1].Type != device.TypeBLE {
		t.Errorf("order = %s, %s; want wifi, ble", resp.Devices[0].Type, resp.Devices[1].Type)
	}
	if resp.Devices[0].LastSeenISO == "" {
		t.Error("LastSeenISO is empty")
	}
	if resp.ServerTime == 0 {
		t.Error("ServerTime is zero")
	}
}

func TestHealth(t *testing.T) {
	store := newTestStore(t)
	store.Update(device.Observation{Type: device.TypeBLE, Addr: "11:22:33:44:55:66", Name: "Tag", Signal: intp(-70)})

	engine := gin.New()
	engine.GET("/health", NewHealthHandler(store).Health)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp types.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "healthy" || resp.Devices != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestIngest_ValidObservation(t *testing.T) {
	store := newTestStore(t)
	engine := gin.New()
	engine.POST("/api/v1/observations", NewObservationsHandler(store, newTestValidator(t)).Ingest)

	body := `{"type":"wifi","mac":"aa:bb:cc:11:22:33","ssid":"HomeNet","signal_dbm":-40}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/observations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", w.Code, w.Body.String())
	}

	views := store.Snapshot()
	if len(views) != 1 || views[0].Addr != "AA:BB:CC:11:22:33" {
		t.Fatalf("store views = %+v, want one normalized record", views)
	}
	if views[0].Name != "HomeNet" {
		t.Errorf("Name = %q, want HomeNet", views[0].Name)
	}
}

func TestIngest_SchemaViolation(t *testing.T) {
	store := newTestStore(t)
	engine := gin.New()
	engine.POST("/api/v1/observations", NewObservationsHandler(store, newTestValidator(t)).Ingest)

	for _, body := range []string{
		`{"type":"zigbee","mac":"aa:bb:cc:11:22:33","signal_dbm":-40}`,
		`{"type":"wifi","signal_dbm":-40}`,
		`{"type":"wifi","mac":"aa:bb:cc:11:22:33","signal_dbm":40}`,
		`not json`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/observations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status for %q = %d, want 400", body, w.Code)
		}
	}

	if n := store.Len(); n != 0 {
		t.Errorf("store has %d records after rejected payloads, want 0", n)
	}
}

func TestIngest_IncompleteObservationAcceptedButDropped(t *testing.T) {
	store := newTestStore(t)
	engine := gin.New()
	engine.POST("/api/v1/observations", NewObservationsHandler(store, newTestValidator(t)).Ingest)

	// Structurally valid, but no signal: the store drops it.
	body := `{"type":"ble","mac":"11:22:33:44:55:66","signal_dbm":null}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/observations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	if n := store.Len(); n != 0 {
		t.Errorf("store has %d records, want 0", n)
	}
}

// fakeSightingReader serves canned journal rows.
type fakeSightingReader struct {
	sightings []journal.Sighting
	gotMAC    string
	gotLimit  int
}

func (f *fakeSightingReader) RecentSightings(ctx context.Context, mac string, limit int) ([]journal.Sighting, error) {
	f.gotMAC = mac
	f.gotLimit = limit
	return f.sightings, nil
}

func TestSightings(t *testing.T) {
	reader := &fakeSightingReader{
		sightings: []journal.Sighting{
			{ID: 2, Kind: "wifi", MAC: "AA:BB:CC:11:22:33", Name: "HomeNet", SignalDBM: intp(-42), SeenAt: 1700000060},
			{ID: 1, Kind: "wifi", MAC: "AA:BB:CC:11:22:33", Name: "HomeNet", SignalDBM: intp(-40), SeenAt: 1700000000},
		},
	}

	engine := gin.New()
	engine.GET("/api/v1/devices/:mac/sightings", NewSightingsHandler(reader).Sightings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/aa-bb-cc-11-22-33/sightings?limit=5", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	// Path addresses normalize before hitting the journal.
	if reader.gotMAC != "AA:BB:CC:11:22:33" || reader.gotLimit != 5 {
		t.Errorf("journal queried with mac %q limit %d", reader.gotMAC, reader.gotLimit)
	}

	var resp types.SightingsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Count)
	}
}

func TestSightings_JournalDisabled(t *testing.T) {
	engine := gin.New()
	engine.GET("/api/v1/devices/:mac/sightings", NewSightingsHandler(nil).Sightings)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/devices/AA:BB:CC:11:22:33/sightings", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
