package device

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Guard runs fn and converts a panic raised by a device implementation into a
// logged failure. It reports whether fn completed normally.
func Guard(key, capability string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("device", key).
				Str("capability", capability).
				Str("panic", fmt.Sprint(r)).
				Msg("Device capability call failed")
			ok = false
		}
	}()

	fn()
	return true
}
