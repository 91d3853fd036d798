package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
	"apiVersion": "1.0.0",
	"psk": "abc",
	"feedbackMode": "Immediate",
	"routePrefix": "/room1/",
	"deviceMappings": [
		{"deviceKey": "display-1", "deviceIndex": 1, "customLabel": "Front Display"},
		{"deviceKey": "codec-1", "deviceIndex": 3, "description": "Room codec"}
	],
	"standardProperties": {
		"roomDeviceKey": "room-1",
		"occupancyDeviceKey": "occ-1",
		"activityMapping": {
			"getProperty": {"deviceKey": "room-1", "propertyPath": "Activity"},
			"setFunctions": {"present": "StartPresentation", "call": "StartCall"}
		},
		"helpRequestMapping": {"deviceKey": "room-1", "propertyPath": "HelpRequest", "defaultValue": "none"},
		"customPropertyMappings": [
			{"propertyKey": "property2", "label": "Temperature", "mapping": {"deviceKey": "room-1", "propertyPath": "Climate.Temp", "format": "%s°F"}}
		]
	}
}`

func TestParse_Sample(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, FeedbackImmediate, cfg.FeedbackMode)
	assert.Equal(t, "room1/roomstatus", cfg.RoutePath())
	assert.True(t, cfg.PSKRequired())
	assert.True(t, cfg.StandbyIsOn())
	assert.Equal(t, DefaultVersion, cfg.StandardProperties.Version)
	require.Len(t, cfg.DeviceMappings, 2)
	assert.Equal(t, 3, cfg.DeviceMappings[1].DeviceIndex)
	assert.Equal(t, "room-1", cfg.StandardProperties.ActivityMapping.SetTarget())
	assert.Equal(t, "custom_property2", cfg.StandardProperties.CustomPropertyMappings[0].CacheKey())
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIVersion, cfg.APIVersion)
	assert.Equal(t, FeedbackDeferred, cfg.FeedbackMode)
	assert.Equal(t, "roomstatus", cfg.RoutePath())
	assert.False(t, cfg.PSKRequired())
	assert.False(t, cfg.ActivityOffShutsDown)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ``},
		{"malformed", `{"apiVersion": `},
		{"index out of range", `{"deviceMappings": [{"deviceKey": "d", "deviceIndex": 21}]}`},
		{"index zero", `{"deviceMappings": [{"deviceKey": "d", "deviceIndex": 0}]}`},
		{"duplicate index", `{"deviceMappings": [{"deviceKey": "a", "deviceIndex": 2}, {"deviceKey": "b", "deviceIndex": 2}]}`},
		{"missing device key", `{"deviceMappings": [{"deviceIndex": 2}]}`},
		{"bad feedback mode", `{"feedbackMode": "eventually"}`},
		{"bad property key", `{"standardProperties": {"customPropertyMappings": [{"propertyKey": "property21", "mapping": {}}]}}`},
		{"duplicate property key", `{"standardProperties": {"customPropertyMappings": [
			{"propertyKey": "property1", "mapping": {}},
			{"propertyKey": "property1", "mapping": {}}]}}`},
		{"wrong type", `{"psk": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParse_ErrorsWrapSentinel(t *testing.T) {
	_, err := Parse([]byte(`{"feedbackMode": "later"}`))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStandbyIsOn_Disabled(t *testing.T) {
	cfg, err := Parse([]byte(`{"codecStandbyIsOn": false}`))
	require.NoError(t, err)
	assert.False(t, cfg.StandbyIsOn())
}

func TestActivityMapping_SetTarget(t *testing.T) {
	var nilMapping *ActivityMapping
	assert.Equal(t, "", nilMapping.SetTarget())

	m := &ActivityMapping{
		GetProperty:  &PropertyMapping{DeviceKey: "room-1"},
		SetDeviceKey: "codec-1",
	}
	assert.Equal(t, "codec-1", m.SetTarget())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.PSK)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
