// Package config defines the room status configuration: which devices feed
// which document slots, how configurable properties are mapped, and how the
// /roomstatus endpoint authenticates and answers writes.
//
// A configuration is loaded once at startup and never mutated afterwards.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Default values applied by Parse.
const (
	DefaultAPIVersion = "1.0.0"
	DefaultVersion    = "1.0.0"
)

// Cache keys used for configurable property mappings.
const (
	ActivityGetKey       = "activity_get"
	ActivitySetKeyPrefix = "activity_set_"
	HelpRequestKey       = "help_request"
	CustomKeyPrefix      = "custom_"
)

// FeedbackMode selects how PATCH requests are answered.
type FeedbackMode string

const (
	// FeedbackDeferred acknowledges a write with 202 without waiting for its effect.
	FeedbackDeferred FeedbackMode = "deferred"

	// FeedbackImmediate rebuilds the document after a write and returns it with 200.
	FeedbackImmediate FeedbackMode = "immediate"
)

// UnmarshalJSON accepts the mode names case-insensitively.
func (m *FeedbackMode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*m = FeedbackMode(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

// Config is the complete configuration of one room status endpoint.
type Config struct {
	APIVersion         string             `json:"apiVersion"`
	PSK                string             `json:"psk"`
	FeedbackMode       FeedbackMode       `json:"feedbackMode"`
	RoutePrefix        string             `json:"routePrefix"`
	DeviceMappings     []DeviceMapping    `json:"deviceMappings"`
	StandardProperties StandardProperties `json:"standardProperties"`

	// CodecStandbyIsOn reports an online codec in standby as "On". Defaults to true.
	CodecStandbyIsOn *bool `json:"codecStandbyIsOn,omitempty"`

	// ActivityOffShutsDown shuts the room down when activity "off" has no mapped function.
	ActivityOffShutsDown bool `json:"activityOffShutsDown"`
}

// DeviceMapping binds a registry device to a device slot (1-20).
type DeviceMapping struct {
	DeviceKey   string `json:"deviceKey"`
	DeviceIndex int    `json:"deviceIndex"`
	CustomLabel string `json:"customLabel,omitempty"`
	Description string `json:"description,omitempty"`
}

// StandardProperties configures the room-level properties.
type StandardProperties struct {
	Version                string                  `json:"version"`
	RoomDeviceKey          string                  `json:"roomDeviceKey,omitempty"`
	OccupancyDeviceKey     string                  `json:"occupancyDeviceKey,omitempty"`
	ActivityMapping        *ActivityMapping        `json:"activityMapping,omitempty"`
	HelpRequestMapping     *PropertyMapping        `json:"helpRequestMapping,omitempty"`
	CustomPropertyMappings []CustomPropertyMapping `json:"customPropertyMappings,omitempty"`
}

// PropertyMapping maps a device property path to a document value.
type PropertyMapping struct {
	DeviceKey    string            `json:"deviceKey"`
	PropertyPath string            `json:"propertyPath"`
	ValueMap     map[string]string `json:"valueMap,omitempty"`
	Format       string            `json:"format,omitempty"`
	DefaultValue string            `json:"defaultValue,omitempty"`
}

// ActivityMapping maps the room activity to a readable property and a set of
// per-activity methods.
type ActivityMapping struct {
	GetProperty  *PropertyMapping  `json:"getProperty,omitempty"`
	SetFunctions map[string]string `json:"setFunctions,omitempty"`
	SetDeviceKey string            `json:"setDeviceKey,omitempty"`
}

// SetTarget returns the key of the device activity methods are invoked on.
func (a *ActivityMapping) SetTarget() string {
	if a == nil {
		return ""
	}
	if a.SetDeviceKey != "" {
		return a.SetDeviceKey
	}
	if a.GetProperty != nil {
		return a.GetProperty.DeviceKey
	}
	return ""
}

// SetFunction returns the method name mapped to activity.
func (a *ActivityMapping) SetFunction(activity string) (string, bool) {
	if a == nil {
		return "", false
	}
	method, ok := a.SetFunctions[activity]
	return method, ok
}

// CustomPropertyMapping maps a custom property slot (property1-20).
type CustomPropertyMapping struct {
	PropertyKey string           `json:"propertyKey"`
	Label       string           `json:"label"`
	Mapping     *PropertyMapping `json:"mapping"`
}

// CacheKey returns the accessor cache key for this custom property.
func (c CustomPropertyMapping) CacheKey() string {
	return CustomKeyPrefix + c.PropertyKey
}

// StandbyIsOn reports whether online codecs in standby count as "On".
func (c *Config) StandbyIsOn() bool {
	return c.CodecStandbyIsOn == nil || *c.CodecStandbyIsOn
}

// PSKRequired reports whether requests must carry a matching PDT-PSK header.
func (c *Config) PSKRequired() bool {
	return c.PSK != ""
}

// RoutePath returns the room's route below the server base path,
// e.g. "room1/roomstatus" or "roomstatus".
func (c *Config) RoutePath() string {
	prefix := strings.Trim(c.RoutePrefix, "/")
	if prefix == "" {
		return "roomstatus"
	}
	return fmt.Sprintf("%s/roomstatus", prefix)
}

// applyDefaults fills unset fields with their documented defaults.
func (c *Config) applyDefaults() {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.FeedbackMode == "" {
		c.FeedbackMode = FeedbackDeferred
	}
	if c.StandardProperties.Version == "" {
		c.StandardProperties.Version = DefaultVersion
	}
}

// validate performs the checks the JSON schema cannot express.
func (c *Config) validate() error {
	switch c.FeedbackMode {
	case FeedbackDeferred, FeedbackImmediate:
	default:
		return fmt.Errorf("%w: feedbackMode %q must be \"immediate\" or \"deferred\"", ErrInvalid, c.FeedbackMode)
	}

	seenIndex := make(map[int]string, len(c.DeviceMappings))
	for _, m := range c.DeviceMappings {
		if m.DeviceIndex < 1 || m.DeviceIndex > 20 {
			return fmt.Errorf("%w: device %q has deviceIndex %d outside 1-20", ErrInvalid, m.DeviceKey, m.DeviceIndex)
		}
		if other, dup := seenIndex[m.DeviceIndex]; dup {
			return fmt.Errorf("%w: devices %q and %q share deviceIndex %d", ErrInvalid, other, m.DeviceKey, m.DeviceIndex)
		}
		seenIndex[m.DeviceIndex] = m.DeviceKey
	}

	seenKey := make(map[string]bool, len(c.StandardProperties.CustomPropertyMappings))
	for _, m := range c.StandardProperties.CustomPropertyMappings {
		if seenKey[m.PropertyKey] {
			return fmt.Errorf("%w: custom property %q is mapped twice", ErrInvalid, m.PropertyKey)
		}
		seenKey[m.PropertyKey] = true
	}

	return nil
}
