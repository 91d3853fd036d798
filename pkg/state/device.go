package state

import (
	"time"

	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/status"
)

// ErrDeviceOffline is reported for devices whose online flag is false.
const ErrDeviceOffline = "Device Offline"

// DeviceOptions tunes the device populator.
type DeviceOptions struct {
	// StandbyIsOn promotes an online call endpoint in standby from "Off" to "On".
	StandbyIsOn bool

	// Now is the reference time for usage sessions.
	Now time.Time
}

// PopulateDevice fills one device slot from the capabilities dev implements.
// Later rules override earlier ones when their capability is present.
func PopulateDevice(dev device.Device, st *status.DeviceStatus, m config.DeviceMapping, opts DeviceOptions) {
	key := dev.Key()

	st.Label = m.CustomLabel
	if st.Label == "" {
		st.Label = key
	}
	st.Description = m.Description

	st.Status = powerStatus(dev, key, opts.StandbyIsOn)
	st.Usage = usage(dev, key, opts.Now)
	st.Error = communicationError(dev, key)
}

func powerStatus(dev device.Device, key string, standbyIsOn bool) string {
	s := status.StatusOff

	if p, ok := dev.(device.PowerFeedback); ok {
		device.Guard(key, "power", func() {
			if p.PowerIsOn() {
				s = status.StatusOn
			} else {
				s = status.StatusOff
			}
		})
	}

	if wc, ok := dev.(device.WarmingCooling); ok {
		device.Guard(key, "warming", func() {
			switch {
			case wc.IsWarmingUp():
				s = status.StatusWarming
			case wc.IsCoolingDown():
				s = status.StatusCooling
			}
		})
	}

	if call, ok := dev.(device.CallEndpoint); ok {
		if cm, ok := dev.(device.CommunicationMonitor); ok && standbyIsOn && s == status.StatusOff {
			device.Guard(key, "communication", func() {
				if cm.CommunicationOnline() {
					s = status.StatusOn
				}
			})
		}
		device.Guard(key, "call", func() {
			if call.IsInCall() {
				s = status.StatusInCall
			}
		})
	}

	return s
}

// usage prefers the current session over cumulative lamp hours.
func usage(dev device.Device, key string, now time.Time) *int {
	if ut, ok := dev.(device.UsageTracking); ok {
		var minutes *int
		if device.Guard(key, "usage", func() {
			if ut.UsageTrackingStarted() {
				minutes = status.Int(int(now.Sub(ut.UsageStartTime()).Minutes()))
			}
		}) {
			return minutes
		}
	}

	if lh, ok := dev.(device.LampHours); ok {
		var hours *int
		device.Guard(key, "lamp hours", func() {
			if h, ok := lh.LampHours(); ok {
				hours = status.Int(h)
			}
		})
		return hours
	}

	return nil
}

// communicationError lets a communication monitor decide on its own; the
// plain online flag is only consulted for devices without one.
func communicationError(dev device.Device, key string) *string {
	if cm, ok := dev.(device.CommunicationMonitor); ok {
		var msg *string
		if device.Guard(key, "communication", func() {
			if m := cm.CommunicationMessage(); m != "" {
				msg = status.String(m)
			}
		}) {
			return msg
		}
	}

	if on, ok := dev.(device.OnlineStatus); ok {
		var msg *string
		device.Guard(key, "online", func() {
			if !on.IsOnline() {
				msg = status.String(ErrDeviceOffline)
			}
		})
		return msg
	}

	return nil
}
