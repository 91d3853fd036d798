// Package action carries out validated write intents against room devices.
package action

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/mapping"
)

// Action kinds reported to the observer.
const (
	KindState    = "state"
	KindActivity = "activity"
)

// Executor delivers state and activity changes. Panics raised by device
// calls are not recovered here; the caller decides how to report them.
type Executor struct {
	cfg      *config.Config
	registry device.Registry
	handler  *mapping.Handler
	observe  func(kind, value string)
}

// NewExecutor creates an Executor for one room.
func NewExecutor(cfg *config.Config, registry device.Registry, handler *mapping.Handler) *Executor {
	return &Executor{
		cfg:      cfg,
		registry: registry,
		handler:  handler,
	}
}

// OnAction registers fn to be told about every executed action.
func (e *Executor) OnAction(fn func(kind, value string)) {
	e.observe = fn
}

// ExecuteStateChange applies a desired room state ("on"/"off") and activity.
// Empty values are skipped.
func (e *Executor) ExecuteStateChange(desiredState, desiredActivity string) {
	if desiredState != "" {
		log.Info().Str("state", desiredState).Msg("Executing state change")
		e.executeRoomState(desiredState)
	}

	if desiredActivity != "" {
		log.Info().Str("activity", desiredActivity).Msg("Activity change requested")
		e.executeActivity(desiredActivity)
	}
}

func (e *Executor) executeRoomState(state string) {
	var turnOn bool
	switch strings.ToLower(state) {
	case "on":
		turnOn = true
	case "off":
		turnOn = false
	default:
		log.Warn().Str("state", state).Msg("Invalid state value, expected on or off")
		return
	}

	room, ok := e.roomLifecycle()
	if !ok {
		return
	}

	if turnOn {
		log.Info().Msg("Powering on room")
		room.PowerOnToDefaultOrLastSource()
	} else {
		log.Info().Msg("Shutting down room")
		room.Shutdown()
	}
	e.record(KindState, strings.ToLower(state))
}

func (e *Executor) executeActivity(activity string) {
	am := e.cfg.StandardProperties.ActivityMapping

	if _, mapped := am.SetFunction(activity); !mapped && e.cfg.ActivityOffShutsDown && strings.EqualFold(activity, "off") {
		if room, ok := e.roomLifecycle(); ok {
			log.Info().Msg("Activity off has no mapped function, shutting down room")
			room.Shutdown()
			e.record(KindActivity, activity)
		}
		return
	}

	if am == nil {
		log.Warn().Str("activity", activity).Msg("No activity mapping configured")
		return
	}

	e.handler.SetActivity(am, activity)
	e.record(KindActivity, activity)
}

func (e *Executor) roomLifecycle() (device.RoomLifecycle, bool) {
	key := e.cfg.StandardProperties.RoomDeviceKey
	if key == "" {
		log.Error().Msg("No room device key configured")
		return nil, false
	}

	dev := e.registry.Lookup(key)
	if dev == nil {
		log.Error().Str("device", key).Msg("Room device not found")
		return nil, false
	}

	room, ok := dev.(device.RoomLifecycle)
	if !ok {
		log.Error().Str("device", key).Msg("Room device has no lifecycle control")
		return nil, false
	}
	return room, true
}

func (e *Executor) record(kind, value string) {
	if e.observe != nil {
		e.observe(kind, value)
	}
}
