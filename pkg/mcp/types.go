package mcp

import "github.com/radiowatch/radiowatch/pkg/device"

// --- Health Tool ---

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status    string `json:"status" jsonschema:"description=Overall service status"`
	Devices   int    `json:"devices" jsonschema:"description=Number of devices currently tracked"`
	Timestamp string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- List Devices Tool ---

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []device.View `json:"devices" jsonschema:"description=Observed devices in presentation order"`
	Count   int           `json:"count" jsonschema:"description=Total number of devices"`
}

// --- Get Device Tool ---

// GetDeviceInput is the input for the get_device tool
type GetDeviceInput struct {
	MAC string `json:"mac" jsonschema:"required,description=Device hardware address"`
}

// GetDeviceOutput is the output for the get_device tool
type GetDeviceOutput struct {
	Device device.View `json:"device" jsonschema:"description=Device snapshot including signal history"`
}
