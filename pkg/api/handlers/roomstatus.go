package handlers

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/api/types"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/protocol"
	"github.com/urmzd/roomstatus/pkg/room"
	"github.com/urmzd/roomstatus/pkg/telemetry"
)

// Request headers of the room status protocol.
const (
	HeaderPSK        = "PDT-PSK"
	HeaderAPIVersion = "PDT-API-VERSION"
)

// Response messages.
const (
	MsgAuthFailed     = "Authentication failed"
	MsgAccepted       = "State change accepted"
	MsgNotImplemented = "Not implemented"
	MsgInternalError  = "Internal server error"
)

// RoomStatusHandler serves GET and PATCH on one room's /roomstatus route
type RoomStatusHandler struct {
	room    *room.Room
	metrics *telemetry.Metrics
}

// NewRoomStatusHandler creates a handler for r. metrics may be nil.
func NewRoomStatusHandler(r *room.Room, metrics *telemetry.Metrics) *RoomStatusHandler {
	return &RoomStatusHandler{room: r, metrics: metrics}
}

// Get handles GET <routePrefix>/roomstatus
// @Summary      Get room status
// @Description  Builds the current room status document from the configured devices
// @Tags         roomstatus
// @Produce      json
// @Param        PDT-PSK          header    string  false  "Pre-shared key, required when the room has one"
// @Param        PDT-API-VERSION  header    string  false  "Client API version"
// @Success      200  {object}  status.Document
// @Failure      401  {object}  types.ErrorResponse  "Authentication failed"
// @Failure      500  {object}  types.ErrorResponse  "Internal server error"
// @Router       /roomstatus [get]
func (h *RoomStatusHandler) Get(c *gin.Context) {
	if !h.checkHeaders(c) {
		return
	}

	c.JSON(http.StatusOK, h.room.Status())
}

// Patch handles PATCH <routePrefix>/roomstatus
// @Summary      Change room state or activity
// @Description  Applies standard.state and/or standard.activity. Deferred rooms answer 202, immediate rooms return the rebuilt document
// @Tags         roomstatus
// @Accept       json
// @Produce      json
// @Param        PDT-PSK          header    string              false  "Pre-shared key, required when the room has one"
// @Param        PDT-API-VERSION  header    string              false  "Client API version"
// @Param        request          body      types.PatchRequest  true   "Desired state"
// @Success      200  {object}  status.Document        "Immediate feedback"
// @Success      202  {object}  types.MessageResponse  "Deferred feedback"
// @Failure      400  {object}  types.ErrorResponse    "Invalid request"
// @Failure      401  {object}  types.ErrorResponse    "Authentication failed"
// @Failure      500  {object}  types.ErrorResponse    "State change failed"
// @Router       /roomstatus [patch]
func (h *RoomStatusHandler) Patch(c *gin.Context) {
	if !h.checkHeaders(c) {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Warn().Err(err).Str("room", h.room.Name()).Msg("Failed to read request body")
		body = nil
	}

	intent, err := protocol.ParsePatch(body)
	if err != nil {
		var verr *protocol.ValidationError
		if !errors.As(err, &verr) {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: MsgInternalError})
			return
		}
		log.Warn().Str("room", h.room.Name()).Str("reason", verr.Message).Msg("PATCH validation failed")
		h.metrics.RecordRejection(h.room.Name(), "validation")
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: verr.Message})
		return
	}

	if err := h.execute(intent); err != nil {
		log.Error().Err(err).Str("room", h.room.Name()).Msg("State change failed")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}

	if h.room.Config().FeedbackMode == config.FeedbackImmediate {
		c.JSON(http.StatusOK, h.room.Status())
		return
	}
	c.JSON(http.StatusAccepted, types.MessageResponse{Message: MsgAccepted})
}

// execute runs the intent and turns a device panic into an error.
func (h *RoomStatusHandler) execute(intent protocol.Intent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	h.room.Execute(intent.State, intent.Activity)
	return nil
}

// checkHeaders validates PDT-PSK and logs PDT-API-VERSION mismatches. It
// writes the 401 response itself and reports whether to continue.
func (h *RoomStatusHandler) checkHeaders(c *gin.Context) bool {
	cfg := h.room.Config()
	logger := log.With().Str("room", h.room.Name()).Logger()

	switch version := c.GetHeader(HeaderAPIVersion); {
	case version == "":
		logger.Warn().Msg("No API version in request headers")
	case version != cfg.APIVersion:
		logger.Warn().Str("expected", cfg.APIVersion).Str("received", version).Msg("API version mismatch")
	}

	psk := c.GetHeader(HeaderPSK)
	if !cfg.PSKRequired() {
		if psk != "" {
			logger.Warn().Msg("PSK in request but none configured, ignoring")
		}
		return true
	}

	if psk == "" || subtle.ConstantTimeCompare([]byte(psk), []byte(cfg.PSK)) != 1 {
		logger.Error().Bool("provided", psk != "").Msg("PSK validation failed")
		h.metrics.RecordRejection(h.room.Name(), "auth")
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: MsgAuthFailed})
		return false
	}

	return true
}

// NotImplemented answers methods the room status protocol does not define.
func NotImplemented(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, types.ErrorResponse{Error: MsgNotImplemented})
}
