package state

import (
	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/status"
)

// PopulateStandard fills version, state, occupancy and, for rooms with a
// lifecycle, the help message.
func PopulateStandard(std *status.Standard, sp *config.StandardProperties, registry device.Registry) {
	std.Version = sp.Version
	if std.Version == "" {
		std.Version = config.DefaultVersion
	}

	std.State = nil
	populateRoomState(std, sp.RoomDeviceKey, registry)

	std.Occupancy = nil
	populateOccupancy(std, sp.OccupancyDeviceKey, registry)
}

func populateRoomState(std *status.Standard, key string, registry device.Registry) {
	if key == "" {
		log.Debug().Msg("No room device key configured")
		return
	}

	room := registry.Lookup(key)
	if room == nil {
		log.Warn().Str("device", key).Msg("Room device not found")
		return
	}

	if fb, ok := room.(device.OnOffFeedback); ok {
		device.Guard(key, "on/off", func() {
			std.State = stateString(fb.IsOn())
		})
		return
	}

	if lc, ok := room.(device.RoomLifecycle); ok {
		device.Guard(key, "lifecycle", func() {
			std.State = stateString(lc.RoomIsOn())
		})
		if hm, ok := room.(device.HelpMessenger); ok {
			device.Guard(key, "help", func() {
				std.HelpRequest = hm.HelpMessage()
			})
		}
		return
	}

	log.Warn().Str("device", key).Msg("Room device reports no on/off state")
}

func populateOccupancy(std *status.Standard, key string, registry device.Registry) {
	if key == "" {
		return
	}

	dev := registry.Lookup(key)
	if dev == nil {
		log.Warn().Str("device", key).Msg("Occupancy device not found")
		return
	}

	occ, ok := dev.(device.OccupancyProvider)
	if !ok {
		log.Warn().Str("device", key).Msg("Occupancy device reports no occupancy")
		return
	}

	device.Guard(key, "occupancy", func() {
		occupied, _ := occ.RoomIsOccupied()
		std.Occupancy = status.Bool(occupied)
	})
}

func stateString(on bool) *string {
	if on {
		return status.String(status.StateOn)
	}
	return status.String(status.StateOff)
}
