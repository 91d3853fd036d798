package room

import (
	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/db"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/telemetry"
)

// Load builds a Set from stored room configurations. Rooms whose document
// fails validation are logged and skipped.
func Load(stored []*db.Room, registry device.Registry, metrics *telemetry.Metrics) (*Set, error) {
	rooms := make([]*Room, 0, len(stored))
	for _, s := range stored {
		cfg, err := config.Parse(s.Document)
		if err != nil {
			log.Error().Err(err).Str("room", s.Name).Msg("Skipping invalid room configuration")
			continue
		}
		rooms = append(rooms, New(s.Name, cfg, registry, metrics))
	}
	return NewSet(rooms...)
}
