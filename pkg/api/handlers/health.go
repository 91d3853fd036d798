package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/roomstatus/pkg/api/types"
)

// Counter reports a number of items.
type Counter interface {
	Len() int
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	rooms   Counter
	devices Counter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(rooms, devices Counter) *HealthHandler {
	return &HealthHandler{rooms: rooms, devices: devices}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the service status with the number of rooms and registered devices
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		Rooms:     h.rooms.Len(),
		Devices:   h.devices.Len(),
		Timestamp: time.Now(),
	})
}
