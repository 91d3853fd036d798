package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/room"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := GetHealthOutput{
		Status:    "healthy",
		Rooms:     s.rooms.Len(),
		Devices:   s.registry.Len(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListRooms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := make([]RoomInfo, 0, s.rooms.Len())
	for _, r := range s.rooms.All() {
		cfg := r.Config()
		infos = append(infos, RoomInfo{
			Name:         r.Name(),
			Route:        path.Join("/", s.basePath, cfg.RoutePath()),
			FeedbackMode: string(cfg.FeedbackMode),
			PSKRequired:  cfg.PSKRequired(),
			Devices:      len(cfg.DeviceMappings),
		})
	}

	out := ListRoomsOutput{Rooms: infos, Count: len(infos)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := s.registry.Keys()
	out := ListDevicesOutput{Devices: keys, Count: len(keys)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetRoomStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, errResult := s.lookupRoom(request)
	if errResult != nil {
		return errResult, nil
	}

	out := GetRoomStatusOutput{Room: r.Name(), Status: r.Status()}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetRoomState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, errResult := s.lookupRoom(request)
	if errResult != nil {
		return errResult, nil
	}

	state, err := optionalString(request, "state")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	activity, err := optionalString(request, "activity")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if state == "" && activity == "" {
		return mcp.NewToolResultError("No writable properties provided. Only state and activity are writable"), nil
	}
	if state != "" && !strings.EqualFold(state, "on") && !strings.EqualFold(state, "off") {
		return mcp.NewToolResultError(fmt.Sprintf("state must be \"on\" or \"off\", got %q", state)), nil
	}

	if err := execute(r, state, activity); err != nil {
		log.Error().Err(err).Str("room", r.Name()).Msg("State change failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to apply state change: %s", err)), nil
	}

	out := SetRoomStateOutput{
		Room:     r.Name(),
		Message:  "State change accepted",
		State:    state,
		Activity: activity,
	}
	if r.Config().FeedbackMode == config.FeedbackImmediate {
		out.Status = r.Status()
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleValidateRoomConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := requiredString(request, "document")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg, err := config.Parse([]byte(doc))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid room configuration: %s", err)), nil
	}

	out := ValidateRoomConfigOutput{
		Valid:        true,
		Route:        path.Join("/", s.basePath, cfg.RoutePath()),
		FeedbackMode: string(cfg.FeedbackMode),
		Devices:      len(cfg.DeviceMappings),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func (s *Server) lookupRoom(request mcp.CallToolRequest) (*room.Room, *mcp.CallToolResult) {
	name, err := requiredString(request, "room")
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	r, err := s.rooms.Get(name)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return r, nil
}

// execute runs a state change and reports a device panic as an error.
func execute(r *room.Room, state, activity string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()
	r.Execute(state, activity)
	return nil
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func optionalString(request mcp.CallToolRequest, key string) (string, error) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
