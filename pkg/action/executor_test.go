package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/roomstatus/pkg/accessor"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/mapping"
)

type room struct {
	key   string
	calls []string
}

func (r *room) Key() string                   { return r.key }
func (r *room) RoomIsOn() bool                { return false }
func (r *room) Shutdown()                     { r.calls = append(r.calls, "Shutdown") }
func (r *room) PowerOnToDefaultOrLastSource() { r.calls = append(r.calls, "PowerOn") }
func (r *room) Method(name string) (device.Method, bool) {
	if name != "SetPresentation" {
		return nil, false
	}
	return func(...any) error {
		r.calls = append(r.calls, name)
		return nil
	}, true
}

type plainDevice struct{ key string }

func (p *plainDevice) Key() string { return p.key }

type explodingRoom struct{ room }

func (e *explodingRoom) PowerOnToDefaultOrLastSource() { panic("relay stuck") }

func newExecutor(t *testing.T, cfg *config.Config, devs ...device.Device) *Executor {
	t.Helper()
	reg := device.NewMemoryRegistry()
	for _, d := range devs {
		require.NoError(t, reg.Register(d))
	}
	return NewExecutor(cfg, reg, mapping.New(accessor.New(), reg))
}

func roomConfig() *config.Config {
	return &config.Config{
		StandardProperties: config.StandardProperties{
			RoomDeviceKey: "room1",
			ActivityMapping: &config.ActivityMapping{
				GetProperty:  &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Activity"},
				SetFunctions: map[string]string{"presentation": "SetPresentation"},
			},
		},
	}
}

func TestExecuteStateChange_State(t *testing.T) {
	tests := []struct {
		state string
		want  []string
	}{
		{"on", []string{"PowerOn"}},
		{"ON", []string{"PowerOn"}},
		{"Off", []string{"Shutdown"}},
		{"standby", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			r := &room{key: "room1"}
			newExecutor(t, roomConfig(), r).ExecuteStateChange(tt.state, "")
			assert.Equal(t, tt.want, r.calls)
		})
	}
}

func TestExecuteStateChange_RoomWithoutLifecycle(t *testing.T) {
	e := newExecutor(t, roomConfig(), &plainDevice{key: "room1"})
	assert.NotPanics(t, func() { e.ExecuteStateChange("on", "") })

	e = newExecutor(t, roomConfig())
	assert.NotPanics(t, func() { e.ExecuteStateChange("on", "") })

	e = newExecutor(t, &config.Config{}, &room{key: "room1"})
	assert.NotPanics(t, func() { e.ExecuteStateChange("off", "") })
}

func TestExecuteStateChange_Activity(t *testing.T) {
	r := &room{key: "room1"}
	e := newExecutor(t, roomConfig(), r)

	var kinds []string
	e.OnAction(func(kind, _ string) { kinds = append(kinds, kind) })

	e.ExecuteStateChange("on", "presentation")
	assert.Equal(t, []string{"PowerOn", "SetPresentation"}, r.calls)
	assert.Equal(t, []string{KindState, KindActivity}, kinds)
}

func TestExecuteStateChange_ActivityOff(t *testing.T) {
	r := &room{key: "room1"}
	newExecutor(t, roomConfig(), r).ExecuteStateChange("", "off")
	assert.Empty(t, r.calls)

	cfg := roomConfig()
	cfg.ActivityOffShutsDown = true
	r = &room{key: "room1"}
	newExecutor(t, cfg, r).ExecuteStateChange("", "off")
	assert.Equal(t, []string{"Shutdown"}, r.calls)
}

func TestExecuteStateChange_NoActivityMapping(t *testing.T) {
	r := &room{key: "room1"}
	cfg := &config.Config{StandardProperties: config.StandardProperties{RoomDeviceKey: "room1"}}
	assert.NotPanics(t, func() {
		newExecutor(t, cfg, r).ExecuteStateChange("", "presentation")
	})
	assert.Empty(t, r.calls)
}

func TestExecuteStateChange_DevicePanicPropagates(t *testing.T) {
	e := newExecutor(t, roomConfig(), &explodingRoom{room{key: "room1"}})
	assert.PanicsWithValue(t, "relay stuck", func() { e.ExecuteStateChange("on", "") })
}
