package types

import "time"

// ErrorResponse is the body of every error reply: {"error": "<message>"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a deferred write
type MessageResponse struct {
	Message string `json:"message"`
}

// PatchRequest documents the writable subset of the room status document
type PatchRequest struct {
	APIVersion string        `json:"apiVersion" example:"1.0.0"`
	Standard   PatchStandard `json:"standard"`
}

// PatchStandard holds the writable standard properties
type PatchStandard struct {
	State    string `json:"state,omitempty" example:"on"`
	Activity string `json:"activity,omitempty" example:"presentation"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Rooms     int       `json:"rooms"`
	Devices   int       `json:"devices"`
	Timestamp time.Time `json:"timestamp"`
}
