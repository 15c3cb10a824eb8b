package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/radiowatch/radiowatch/pkg/device"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := GetHealthOutput{
		Status:    "healthy",
		Devices:   s.store.Len(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	views := s.store.Snapshot()
	out := ListDevicesOutput{
		Devices: views,
		Count:   len(views),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mac, err := requiredString(request, "mac")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	addr := device.NormalizeAddr(mac)
	for _, v := range s.store.Snapshot() {
		if v.Addr == addr {
			return mcp.NewToolResultText(formatJSON(GetDeviceOutput{Device: v})), nil
		}
	}

	return mcp.NewToolResultError(fmt.Sprintf("no device observed at %s", addr)), nil
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	v, ok := request.GetArguments()[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	return v, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("failed to format response: %s", err)
	}
	return string(b)
}
