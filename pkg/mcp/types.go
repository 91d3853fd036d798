package mcp

import "github.com/urmzd/roomstatus/pkg/status"

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status    string `json:"status" jsonschema:"description=Overall health status"`
	Rooms     int    `json:"rooms" jsonschema:"description=Number of configured rooms"`
	Devices   int    `json:"devices" jsonschema:"description=Number of registered devices"`
	Timestamp string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// RoomInfo describes a configured room in tool outputs
type RoomInfo struct {
	Name         string `json:"name" jsonschema:"description=Room name"`
	Route        string `json:"route" jsonschema:"description=HTTP route of the room status endpoint"`
	FeedbackMode string `json:"feedback_mode" jsonschema:"description=immediate or deferred"`
	PSKRequired  bool   `json:"psk_required" jsonschema:"description=Whether HTTP clients must send PDT-PSK"`
	Devices      int    `json:"devices" jsonschema:"description=Number of mapped device slots"`
}

// ListRoomsOutput is the output for the list_rooms tool
type ListRoomsOutput struct {
	Rooms []RoomInfo `json:"rooms"`
	Count int        `json:"count"`
}

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []string `json:"devices" jsonschema:"description=Registered device keys"`
	Count   int      `json:"count"`
}

// GetRoomStatusOutput is the output for the get_room_status tool
type GetRoomStatusOutput struct {
	Room   string           `json:"room"`
	Status *status.Document `json:"status"`
}

// SetRoomStateOutput is the output for the set_room_state tool. Status is
// set for rooms with immediate feedback.
type SetRoomStateOutput struct {
	Room     string           `json:"room"`
	Message  string           `json:"message"`
	State    string           `json:"state,omitempty"`
	Activity string           `json:"activity,omitempty"`
	Status   *status.Document `json:"status,omitempty"`
}

// ValidateRoomConfigOutput is the output for the validate_room_config tool
type ValidateRoomConfigOutput struct {
	Valid        bool   `json:"valid"`
	Route        string `json:"route,omitempty"`
	FeedbackMode string `json:"feedback_mode,omitempty"`
	Devices      int    `json:"devices,omitempty"`
}
