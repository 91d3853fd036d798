package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the health of the room status service: configured rooms and registered devices"),
		),
		s.handleGetHealth,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_rooms",
			mcp.WithDescription("List configured rooms with their routes and write settings"),
		),
		s.handleListRooms,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List the keys of all devices currently registered"),
		),
		s.handleListDevices,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_room_status",
			mcp.WithDescription("Build the current room status document (state, occupancy, device slots, custom properties)"),
			mcp.WithString("room",
				mcp.Required(),
				mcp.Description("Room name"),
			),
		),
		s.handleGetRoomStatus,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("set_room_state",
			mcp.WithDescription("Turn a room on or off and/or change its activity. Only state and activity are writable."),
			mcp.WithString("room",
				mcp.Required(),
				mcp.Description("Room name"),
			),
			mcp.WithString("state",
				mcp.Description("Desired room state"),
				mcp.Enum("on", "off"),
			),
			mcp.WithString("activity",
				mcp.Description("Desired activity, as named in the room's activity mapping"),
			),
		),
		s.handleSetRoomState,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("validate_room_config",
			mcp.WithDescription("Validate a room configuration document without applying it"),
			mcp.WithString("document",
				mcp.Required(),
				mcp.Description("Room configuration as a JSON string"),
			),
		),
		s.handleValidateRoomConfig,
	)
}
