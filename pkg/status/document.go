// Package status defines the room status document served on /roomstatus.
package status

import "fmt"

// SlotCount is the fixed number of device and custom property slots.
const SlotCount = 20

// Canonical device status values.
const (
	StatusOff     = "Off"
	StatusOn      = "On"
	StatusWarming = "Warming"
	StatusCooling = "Cooling"
	StatusInCall  = "In Call"
)

// Room state values reported in standard.state.
const (
	StateOn  = "On"
	StateOff = "Off"
)

// Document is the root of the room status document.
type Document struct {
	APIVersion string                     `json:"apiVersion"`
	Standard   Standard                   `json:"standard"`
	Status     Status                     `json:"status"`
	Custom     map[string]*CustomProperty `json:"custom"`
}

// Standard holds the room-level properties.
type Standard struct {
	Version     string  `json:"version"`
	State       *string `json:"state"`
	Error       string  `json:"error"`
	Occupancy   *bool   `json:"occupancy"`
	HelpRequest string  `json:"helpRequest"`
	Activity    string  `json:"activity"`
}

// Status holds the per-device slots.
type Status struct {
	Devices map[string]*DeviceStatus `json:"devices"`
}

// DeviceStatus is the state reported for one device slot.
type DeviceStatus struct {
	Label       string  `json:"label"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	VideoSource *string `json:"videoSource"`
	AudioSource *string `json:"audioSource"`
	Usage       *int    `json:"usage"`
	Error       *string `json:"error"`
}

// CustomProperty is a labelled free-form room property.
type CustomProperty struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DeviceSlot returns the slot key for a 1-based device index ("device3").
func DeviceSlot(index int) string {
	return fmt.Sprintf("device%d", index)
}

// PropertySlot returns the slot key for a 1-based custom property index ("property3").
func PropertySlot(index int) string {
	return fmt.Sprintf("property%d", index)
}

// NewDeviceStatus returns a slot at its unpopulated defaults.
func NewDeviceStatus() *DeviceStatus {
	return &DeviceStatus{Status: StatusOff}
}

// New returns a document with every device and custom slot present at its defaults.
func New() *Document {
	doc := &Document{
		Status: Status{Devices: make(map[string]*DeviceStatus, SlotCount)},
		Custom: make(map[string]*CustomProperty, SlotCount),
	}
	for i := 1; i <= SlotCount; i++ {
		doc.Status.Devices[DeviceSlot(i)] = NewDeviceStatus()
		doc.Custom[PropertySlot(i)] = &CustomProperty{}
	}
	return doc
}

// String returns a pointer to s, for the nullable string fields.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to n.
func Int(n int) *int {
	return &n
}
