// Package state assembles the room status document from the device registry.
//
// The populators are stateless: each reads the capabilities a device
// implements, in a fixed priority order, and writes the matching document
// fields. Builder runs them for every configured device and overlays the
// configurable property mappings.
package state

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/mapping"
	"github.com/urmzd/roomstatus/pkg/status"
)

// Builder produces a fresh document per call. It keeps no document between calls.
type Builder struct {
	cfg      *config.Config
	registry device.Registry
	handler  *mapping.Handler

	now     func() time.Time
	observe func(time.Duration)
}

// NewBuilder creates a Builder for one room.
func NewBuilder(cfg *config.Config, registry device.Registry, handler *mapping.Handler) *Builder {
	log.Info().Int("devices", len(cfg.DeviceMappings)).Msg("State builder initialized")
	return &Builder{
		cfg:      cfg,
		registry: registry,
		handler:  handler,
		now:      time.Now,
	}
}

// OnBuild registers fn to receive the duration of every Build.
func (b *Builder) OnBuild(fn func(time.Duration)) {
	b.observe = fn
}

// SetClock replaces the clock used for usage sessions.
func (b *Builder) SetClock(now func() time.Time) {
	b.now = now
}

// Build returns a newly populated document.
func (b *Builder) Build() *status.Document {
	start := time.Now()
	doc := status.New()
	b.Populate(doc)
	if b.observe != nil {
		b.observe(time.Since(start))
	}
	return doc
}

// Populate writes the current room state into doc.
func (b *Builder) Populate(doc *status.Document) {
	sp := &b.cfg.StandardProperties

	doc.APIVersion = b.cfg.APIVersion

	PopulateStandard(&doc.Standard, sp, b.registry)
	doc.Standard.Activity = b.handler.Activity(sp)
	if help, ok := b.handler.HelpRequest(sp); ok {
		doc.Standard.HelpRequest = help
	}

	opts := DeviceOptions{
		StandbyIsOn: b.cfg.StandbyIsOn(),
		Now:         b.now(),
	}
	for _, m := range b.cfg.DeviceMappings {
		b.populateSlot(doc, m, opts)
	}

	for _, cp := range sp.CustomPropertyMappings {
		doc.Custom[cp.PropertyKey] = &status.CustomProperty{
			Label: cp.Label,
			Value: b.handler.CustomValue(cp),
		}
	}
}

func (b *Builder) populateSlot(doc *status.Document, m config.DeviceMapping, opts DeviceOptions) {
	dev := b.registry.Lookup(m.DeviceKey)
	if dev == nil {
		log.Warn().Str("device", m.DeviceKey).Int("index", m.DeviceIndex).Msg("Device not found")
		return
	}

	slot := status.DeviceSlot(m.DeviceIndex)
	st, ok := doc.Status.Devices[slot]
	if !ok {
		st = status.NewDeviceStatus()
		doc.Status.Devices[slot] = st
	}

	PopulateDevice(dev, st, m, opts)
	PopulateRouting(dev, st)
}
