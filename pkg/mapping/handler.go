// Package mapping resolves user-configured property mappings (activity, help
// request and custom properties) into document strings and dispatches
// activity writes to configured device methods.
package mapping

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/accessor"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
)

// Handler applies value maps, formats and defaults on top of an Accessor.
type Handler struct {
	accessor *accessor.Accessor
	registry device.Registry
}

// New creates a Handler that resolves devices through registry.
func New(acc *accessor.Accessor, registry device.Registry) *Handler {
	return &Handler{
		accessor: acc,
		registry: registry,
	}
}

// Initialize eagerly compiles every configured mapping. Devices that are not
// registered yet are skipped and compiled lazily on first read.
func (h *Handler) Initialize(cfg *config.Config) {
	sp := cfg.StandardProperties
	log.Info().Msg("Initializing property mappings")

	if am := sp.ActivityMapping; am != nil {
		if am.GetProperty != nil {
			h.compile(config.ActivityGetKey, am.GetProperty)
		}
		h.cacheSetFunctions(am)
	}

	if sp.HelpRequestMapping != nil {
		h.compile(config.HelpRequestKey, sp.HelpRequestMapping)
	}

	for _, cp := range sp.CustomPropertyMappings {
		h.compile(cp.CacheKey(), cp.Mapping)
	}
}

func (h *Handler) compile(cacheKey string, m *config.PropertyMapping) {
	if m == nil || m.DeviceKey == "" {
		return
	}

	dev := h.registry.Lookup(m.DeviceKey)
	if dev == nil {
		log.Warn().
			Str("key", cacheKey).
			Str("device", m.DeviceKey).
			Msg("Device not found for mapping")
		return
	}

	h.accessor.CompileGetter(cacheKey, dev, m.PropertyPath)
}

func (h *Handler) cacheSetFunctions(am *config.ActivityMapping) {
	if len(am.SetFunctions) == 0 {
		return
	}

	target := am.SetTarget()
	if target == "" {
		return
	}
	dev := h.registry.Lookup(target)
	if dev == nil {
		log.Warn().Str("device", target).Msg("Activity device not found, set functions will be cached on first use")
		return
	}

	for activity, method := range am.SetFunctions {
		h.accessor.CacheMethod(config.ActivitySetKeyPrefix+activity, dev, method)
	}
}

// MappedValue reads and transforms the value behind m. A nil mapping yields
// "", a missing device or nil value yields the mapping's default value.
func (h *Handler) MappedValue(cacheKey string, m *config.PropertyMapping) string {
	if m == nil {
		return ""
	}

	dev := h.registry.Lookup(m.DeviceKey)
	if dev == nil {
		return m.DefaultValue
	}

	raw, cached := h.accessor.Value(cacheKey, dev)
	if !cached {
		h.accessor.CompileGetter(cacheKey, dev, m.PropertyPath)
		raw, _ = h.accessor.Value(cacheKey, dev)
	}
	if raw == nil {
		return m.DefaultValue
	}

	s := fmt.Sprint(raw)
	if mapped, ok := m.ValueMap[s]; ok {
		s = mapped
	}

	if m.Format != "" {
		formatted, err := Format(m.Format, s)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Format error")
		} else {
			s = formatted
		}
	}

	return s
}

// Activity returns the configured activity value, or "" when unmapped.
func (h *Handler) Activity(sp *config.StandardProperties) string {
	if sp.ActivityMapping == nil || sp.ActivityMapping.GetProperty == nil {
		return ""
	}
	return h.MappedValue(config.ActivityGetKey, sp.ActivityMapping.GetProperty)
}

// HelpRequest returns the configured help request value. ok is false when no
// mapping is configured.
func (h *Handler) HelpRequest(sp *config.StandardProperties) (value string, ok bool) {
	if sp.HelpRequestMapping == nil {
		return "", false
	}
	return h.MappedValue(config.HelpRequestKey, sp.HelpRequestMapping), true
}

// CustomValue returns the value of one custom property mapping.
func (h *Handler) CustomValue(cp config.CustomPropertyMapping) string {
	return h.MappedValue(cp.CacheKey(), cp.Mapping)
}

// SetActivity invokes the method mapped to activity. Unmapped activities and
// absent devices are logged and ignored.
func (h *Handler) SetActivity(am *config.ActivityMapping, activity string) {
	method, mapped := am.SetFunction(activity)
	if !mapped {
		log.Warn().Str("activity", activity).Msg("No set function configured for activity")
		return
	}

	target := am.SetTarget()
	if target == "" {
		log.Error().Str("activity", activity).Msg("No device key for activity set")
		return
	}

	dev := h.registry.Lookup(target)
	if dev == nil {
		log.Error().Str("device", target).Msg("Device not found for activity set")
		return
	}

	cacheKey := config.ActivitySetKeyPrefix + activity
	if !h.accessor.HasMethod(cacheKey) {
		h.accessor.CacheMethod(cacheKey, dev, method)
	}
	h.accessor.Invoke(cacheKey, dev)
}

// Format substitutes value into format. Both the positional "{0}" placeholder
// and a single printf verb are accepted; a format with neither is returned as is.
func Format(format, value string) (string, error) {
	if strings.Contains(format, "{0}") {
		return strings.ReplaceAll(format, "{0}", value), nil
	}
	if !strings.Contains(format, "%") {
		return format, nil
	}

	out := fmt.Sprintf(format, value)
	if strings.Contains(out, "%!") {
		return "", fmt.Errorf("invalid format %q", format)
	}
	return out, nil
}
