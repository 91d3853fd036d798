package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/status"
)

func registryWith(t *testing.T, devs ...device.Device) *device.MemoryRegistry {
	t.Helper()
	reg := device.NewMemoryRegistry()
	for _, d := range devs {
		require.NoError(t, reg.Register(d))
	}
	return reg
}

func TestPopulateStandard_Version(t *testing.T) {
	var std status.Standard

	PopulateStandard(&std, &config.StandardProperties{}, registryWith(t))
	assert.Equal(t, config.DefaultVersion, std.Version)

	PopulateStandard(&std, &config.StandardProperties{Version: "2.1.0"}, registryWith(t))
	assert.Equal(t, "2.1.0", std.Version)
}

func TestPopulateStandard_State(t *testing.T) {
	tests := []struct {
		name     string
		dev      device.Device
		wantNil  bool
		want     string
		wantHelp string
	}{
		{name: "direct feedback on", dev: &feedbackRoom{key: "room", on: true}, want: status.StateOn},
		{name: "direct feedback off", dev: &feedbackRoom{key: "room"}, want: status.StateOff},
		{name: "lifecycle with help", dev: &lifecycleRoom{key: "room", on: true, help: "Need HDMI cable"}, want: status.StateOn, wantHelp: "Need HDMI cable"},
		{name: "no room capability", dev: &display{key: "room", on: true}, wantNil: true},
		{name: "device missing", dev: &display{key: "other"}, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var std status.Standard
			PopulateStandard(&std, &config.StandardProperties{RoomDeviceKey: "room"}, registryWith(t, tt.dev))

			if tt.wantNil {
				assert.Nil(t, std.State)
				return
			}
			require.NotNil(t, std.State)
			assert.Equal(t, tt.want, *std.State)
			assert.Equal(t, tt.wantHelp, std.HelpRequest)
		})
	}
}

func TestPopulateStandard_NoRoomKey(t *testing.T) {
	var std status.Standard
	PopulateStandard(&std, &config.StandardProperties{}, registryWith(t, &feedbackRoom{key: "room", on: true}))
	assert.Nil(t, std.State)
	assert.Nil(t, std.Occupancy)
}

func TestPopulateStandard_Occupancy(t *testing.T) {
	sp := &config.StandardProperties{OccupancyDeviceKey: "occ"}

	var std status.Standard
	PopulateStandard(&std, sp, registryWith(t, &sensor{key: "occ", occupied: true, reported: true}))
	require.NotNil(t, std.Occupancy)
	assert.True(t, *std.Occupancy)

	PopulateStandard(&std, sp, registryWith(t, &sensor{key: "occ"}))
	require.NotNil(t, std.Occupancy)
	assert.False(t, *std.Occupancy, "unreported feedback reads as unoccupied")

	PopulateStandard(&std, sp, registryWith(t, &display{key: "occ"}))
	assert.Nil(t, std.Occupancy)

	PopulateStandard(&std, sp, registryWith(t))
	assert.Nil(t, std.Occupancy)

	assert.NotPanics(t, func() {
		PopulateStandard(&std, sp, registryWith(t, &faulty{key: "occ"}))
	})
	assert.Nil(t, std.Occupancy)
}
