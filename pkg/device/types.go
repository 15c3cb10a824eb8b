package device

// Type classifies which scan source a device was last seen by.
type Type string

const (
	TypeWiFi Type = "wifi"
	TypeBLE  Type = "ble"
)

// Observation is one reported sighting of a device from a scan source.
// Addr is the raw hardware address as delivered by the source; the
// store normalizes it. Signal is nil when the source could not measure
// one, in which case the observation is dropped.
type Observation struct {
	Type   Type
	Addr   string // raw hardware address
	Name   string // BLE advertised name, or Wi-Fi fallback display name
	SSID   string // Wi-Fi broadcast network name
	Signal *int   // dBm, typically -100..0
}

// View is a read-only copy of one device record as returned by
// Store.Snapshot. Mutating the store after a snapshot does not affect
// previously returned views.
type View struct {
	Type      Type   `json:"type"`
	Addr      string `json:"mac"`
	Name      string `json:"name"`   // resolved: BLE name, else SSID, else "(unknown)"
	Vendor    string `json:"vendor"` // resolved vendor, or "Unknown"
	SignalDBM *int   `json:"signal_dbm"`
	FirstSeen int64  `json:"first_seen"` // Unix seconds
	LastSeen  int64  `json:"last_seen"`  // Unix seconds
	History   []int  `json:"history"`    // dBm samples, oldest first
}

// UnknownName is the display name used when a device advertised
// neither a name nor an SSID.
const UnknownName = "(unknown)"
