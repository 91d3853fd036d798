package state

import (
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/status"
)

// PopulateRouting reports the routed source name as both the video and audio
// source. Both are null when the device routes nothing.
func PopulateRouting(dev device.Device, st *status.DeviceStatus) {
	st.VideoSource = nil
	st.AudioSource = nil

	sink, ok := dev.(device.RoutingSink)
	if !ok {
		return
	}

	var src *device.SourceInfo
	device.Guard(dev.Key(), "routing", func() {
		src = sink.CurrentSource()
	})
	if src == nil {
		return
	}

	st.VideoSource = status.String(src.Name)
	st.AudioSource = status.String(src.Name)
}
