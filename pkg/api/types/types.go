package types

import (
	"github.com/radiowatch/radiowatch/pkg/device"
	"github.com/radiowatch/radiowatch/pkg/journal"
)

// --- Request DTOs ---

// ObservationRequest is the request body for POST /observations.
// Remote probes push sightings they collected themselves.
type ObservationRequest struct {
	Type      string  `json:"type"`
	MAC       string  `json:"mac"`
	Name      *string `json:"name"`
	SSID      *string `json:"ssid"`
	SignalDBM *int    `json:"signal_dbm"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Devices   int    `json:"devices"`
	Timestamp int64  `json:"timestamp"`
}

// DeviceView is one device in a snapshot response. Extends the store
// view with an ISO form of last_seen for human consumers.
type DeviceView struct {
	device.View
	LastSeenISO string `json:"last_seen_iso"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices    []DeviceView `json:"devices"`
	Count      int          `json:"count"`
	ServerTime int64        `json:"server_time"`
}

// ObservationResponse is returned from POST /observations
type ObservationResponse struct {
	Status string `json:"status"`
}

// SightingsResponse is returned from GET /devices/:mac/sightings
type SightingsResponse struct {
	MAC       string             `json:"mac"`
	Sightings []journal.Sighting `json:"sightings"`
	Count     int                `json:"count"`
}
