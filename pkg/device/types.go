package device

import "time"

// Device is anything the registry can hand out. Everything beyond the key is
// optional and discovered through the capability interfaces below.
type Device interface {
	Key() string
}

// PowerFeedback is implemented by devices that report whether they are powered on.
type PowerFeedback interface {
	PowerIsOn() bool
}

// WarmingCooling is implemented by devices with warm-up and cool-down periods
// (projectors, displays, rooms).
type WarmingCooling interface {
	IsWarmingUp() bool
	IsCoolingDown() bool
}

// CallEndpoint is implemented by video and audio codecs.
type CallEndpoint interface {
	IsInCall() bool
}

// UsageTracking is implemented by devices that track the current usage session.
type UsageTracking interface {
	UsageTrackingStarted() bool
	UsageStartTime() time.Time
}

// LampHours is implemented by displays that report cumulative runtime.
// ok is false when the device has not reported a value yet.
type LampHours interface {
	LampHours() (hours int, ok bool)
}

// CommunicationMonitor is implemented by devices whose control link is monitored.
type CommunicationMonitor interface {
	CommunicationMessage() string
	CommunicationOnline() bool
}

// OnlineStatus is implemented by devices that only expose a plain online flag.
type OnlineStatus interface {
	IsOnline() bool
}

// SourceInfo describes the source currently routed to a sink.
type SourceInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// RoutingSink is implemented by devices that display or play a routed source.
// CurrentSource returns nil when nothing is routed.
type RoutingSink interface {
	CurrentSource() *SourceInfo
}

// OccupancyProvider is implemented by occupancy sensors.
// ok is false when the sensor has not reported yet.
type OccupancyProvider interface {
	RoomIsOccupied() (occupied bool, ok bool)
}

// OnOffFeedback is implemented by room devices that expose a direct on/off feedback.
type OnOffFeedback interface {
	IsOn() bool
}

// RoomLifecycle is implemented by room devices that can be started and shut down.
type RoomLifecycle interface {
	RoomIsOn() bool
	Shutdown()
	PowerOnToDefaultOrLastSource()
}

// HelpMessenger is implemented by rooms that carry a help request message.
type HelpMessenger interface {
	HelpMessage() string
}

// PropertyProvider exposes a declared table of named, readable properties.
// Property paths configured by users are resolved one hop at a time through it.
type PropertyProvider interface {
	Property(name string) (value any, ok bool)
}

// Method is a callable exposed through a MethodProvider.
type Method func(args ...any) error

// MethodProvider exposes a declared table of named methods.
type MethodProvider interface {
	Method(name string) (Method, bool)
}
