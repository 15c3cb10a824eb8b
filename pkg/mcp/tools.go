package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the radiowatch service status and the number of devices currently tracked"),
		),
		s.handleGetHealth,
	)

	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List every observed wireless device: Wi-Fi access points first, then BLE peripherals, strongest signal first"),
		),
		s.handleListDevices,
	)

	// Get device
	s.mcpServer.AddTool(
		mcp.NewTool("get_device",
			mcp.WithDescription("Get one observed device by hardware address, including its signal history"),
			mcp.WithString("mac",
				mcp.Required(),
				mcp.Description("Device hardware address, any common spelling (AA:BB:CC:11:22:33, aa-bb-cc-11-22-33, aabbcc112233)"),
			),
		),
		s.handleGetDevice,
	)
}
