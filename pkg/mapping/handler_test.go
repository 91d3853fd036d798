package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/roomstatus/pkg/accessor"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
)

type roomDevice struct {
	key     string
	props   map[string]any
	invoked []string
}

func (r *roomDevice) Key() string { return r.key }

func (r *roomDevice) Property(name string) (any, bool) {
	v, ok := r.props[name]
	return v, ok
}

func (r *roomDevice) Method(name string) (device.Method, bool) {
	switch name {
	case "StartPresentation", "StartVideoCall", "Shutdown":
		return func(...any) error {
			r.invoked = append(r.invoked, name)
			return nil
		}, true
	}
	return nil, false
}

func newHandler(t *testing.T, devs ...device.Device) (*Handler, *device.MemoryRegistry) {
	t.Helper()
	reg := device.NewMemoryRegistry()
	for _, d := range devs {
		require.NoError(t, reg.Register(d))
	}
	return New(accessor.New(), reg), reg
}

func TestMappedValue_ValueMapAndFormat(t *testing.T) {
	room := &roomDevice{key: "room1", props: map[string]any{"Temp": 21, "Mode": "pres"}}
	h, _ := newHandler(t, room)

	temp := &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Temp", Format: "%s°C"}
	assert.Equal(t, "21°C", h.MappedValue("custom_property1", temp))

	mode := &config.PropertyMapping{
		DeviceKey:    "room1",
		PropertyPath: "Mode",
		ValueMap:     map[string]string{"pres": "Presentation"},
		Format:       "Mode: {0}",
	}
	assert.Equal(t, "Mode: Presentation", h.MappedValue("custom_property2", mode))
}

func TestMappedValue_Defaults(t *testing.T) {
	room := &roomDevice{key: "room1", props: map[string]any{"Empty": nil}}
	h, _ := newHandler(t, room)

	assert.Equal(t, "", h.MappedValue("k", nil))

	missing := &config.PropertyMapping{DeviceKey: "ghost", PropertyPath: "X", DefaultValue: "n/a"}
	assert.Equal(t, "n/a", h.MappedValue("k1", missing))

	nilValue := &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Empty", DefaultValue: "unknown"}
	assert.Equal(t, "unknown", h.MappedValue("k2", nilValue))

	badPath := &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Nope.Deeper", DefaultValue: "-"}
	assert.Equal(t, "-", h.MappedValue("k3", badPath))
}

func TestMappedValue_BadFormatKeepsValue(t *testing.T) {
	room := &roomDevice{key: "room1", props: map[string]any{"Level": "high"}}
	h, _ := newHandler(t, room)

	m := &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Level", Format: "%d%d"}
	assert.Equal(t, "high", h.MappedValue("k", m))
}

func TestMappedValue_LazyCompileAfterLateRegistration(t *testing.T) {
	h, reg := newHandler(t)
	cfg := &config.Config{StandardProperties: config.StandardProperties{
		HelpRequestMapping: &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Help"},
	}}

	h.Initialize(cfg)
	assert.False(t, h.accessor.HasGetter(config.HelpRequestKey))

	require.NoError(t, reg.Register(&roomDevice{key: "room1", props: map[string]any{"Help": "Projector broken"}}))

	v, ok := h.HelpRequest(&cfg.StandardProperties)
	assert.True(t, ok)
	assert.Equal(t, "Projector broken", v)
	assert.True(t, h.accessor.HasGetter(config.HelpRequestKey))
}

func TestInitialize_CompilesEverything(t *testing.T) {
	room := &roomDevice{key: "room1", props: map[string]any{"Activity": "idle", "Help": ""}}
	h, _ := newHandler(t, room)

	cfg := &config.Config{StandardProperties: config.StandardProperties{
		ActivityMapping: &config.ActivityMapping{
			GetProperty:  &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Activity"},
			SetFunctions: map[string]string{"presentation": "StartPresentation", "bogus": "NoSuchMethod"},
		},
		HelpRequestMapping: &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Help"},
		CustomPropertyMappings: []config.CustomPropertyMapping{
			{PropertyKey: "property1", Label: "Activity", Mapping: &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Activity"}},
		},
	}}

	h.Initialize(cfg)

	assert.True(t, h.accessor.HasGetter("activity_get"))
	assert.True(t, h.accessor.HasGetter("help_request"))
	assert.True(t, h.accessor.HasGetter("custom_property1"))
	assert.True(t, h.accessor.HasMethod("activity_set_presentation"))
	assert.False(t, h.accessor.HasMethod("activity_set_bogus"))

	assert.Equal(t, "idle", h.Activity(&cfg.StandardProperties))
	assert.Equal(t, "idle", h.CustomValue(cfg.StandardProperties.CustomPropertyMappings[0]))
}

func TestActivity_Unmapped(t *testing.T) {
	h, _ := newHandler(t)
	assert.Equal(t, "", h.Activity(&config.StandardProperties{}))

	_, ok := h.HelpRequest(&config.StandardProperties{})
	assert.False(t, ok)
}

func TestSetActivity(t *testing.T) {
	room := &roomDevice{key: "room1"}
	h, _ := newHandler(t, room)

	am := &config.ActivityMapping{
		GetProperty:  &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Activity"},
		SetFunctions: map[string]string{"presentation": "StartPresentation", "video": "StartVideoCall"},
	}

	// not cached at startup; cached on first use
	h.SetActivity(am, "presentation")
	h.SetActivity(am, "video")
	h.SetActivity(am, "unmapped")

	assert.Equal(t, []string{"StartPresentation", "StartVideoCall"}, room.invoked)
}

func TestSetActivity_UsesSetDeviceKey(t *testing.T) {
	display := &roomDevice{key: "room1"}
	controller := &roomDevice{key: "controller"}
	h, _ := newHandler(t, display, controller)

	am := &config.ActivityMapping{
		GetProperty:  &config.PropertyMapping{DeviceKey: "room1", PropertyPath: "Activity"},
		SetFunctions: map[string]string{"off": "Shutdown"},
		SetDeviceKey: "controller",
	}
	h.SetActivity(am, "off")

	assert.Empty(t, display.invoked)
	assert.Equal(t, []string{"Shutdown"}, controller.invoked)
}

func TestSetActivity_AbsentDevice(t *testing.T) {
	h, _ := newHandler(t)
	am := &config.ActivityMapping{
		SetFunctions: map[string]string{"presentation": "StartPresentation"},
		SetDeviceKey: "ghost",
	}

	assert.NotPanics(t, func() {
		h.SetActivity(am, "presentation")
		h.SetActivity(nil, "presentation")
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format, value, want string
		wantErr             bool
	}{
		{"%s%%", "50", "50%", false},
		{"{0} people", "4", "4 people", false},
		{"[{0}|{0}]", "x", "[x|x]", false},
		{"static", "ignored", "static", false},
		{"%d", "abc", "", true},
		{"%s %s", "a", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := Format(tt.format, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
