// Package accessor compiles configured property paths and method names
// against a device's declared property and method tables and caches the
// result per cache key.
//
// A property path such as "CommunicationMonitor.Message" is resolved one hop
// at a time: each hop is looked up through device.PropertyProvider on the
// current value, or through a plain map for data values. A missing member or
// nil intermediate value yields nil.
package accessor

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/device"
)

// Getter reads a value from a device instance. It returns nil when any hop
// of the path is missing.
type Getter func(dev device.Device) any

// Invoker calls a method on a device instance.
type Invoker func(dev device.Device, args ...any) error

var (
	// ErrNoPropertyTable indicates the device declares no readable properties
	ErrNoPropertyTable = errors.New("device declares no property table")

	// ErrNoMethodTable indicates the device declares no callable methods
	ErrNoMethodTable = errors.New("device declares no method table")

	// ErrMethodNotFound indicates the named method is not declared by the device
	ErrMethodNotFound = errors.New("method not found")
)

// Accessor holds compiled getters and method handles keyed by cache key.
// Compilation is idempotent; concurrent compiles of the same key only
// repeat work.
type Accessor struct {
	mu      sync.RWMutex
	getters map[string]Getter
	methods map[string]Invoker
}

// New creates an Accessor with empty caches.
func New() *Accessor {
	return &Accessor{
		getters: make(map[string]Getter),
		methods: make(map[string]Invoker),
	}
}

// CompileGetter builds and caches a getter for propertyPath under cacheKey.
// Failures are logged and leave the cache untouched.
func (a *Accessor) CompileGetter(cacheKey string, dev device.Device, propertyPath string) {
	if dev == nil || strings.TrimSpace(propertyPath) == "" {
		log.Warn().Str("key", cacheKey).Msg("Cannot compile getter for nil device or empty path")
		return
	}
	if _, ok := dev.(device.PropertyProvider); !ok {
		log.Warn().
			Str("key", cacheKey).
			Str("device", dev.Key()).
			Err(ErrNoPropertyTable).
			Msg("Cannot compile getter")
		return
	}

	getter := buildGetter(strings.Split(propertyPath, "."))

	a.mu.Lock()
	a.getters[cacheKey] = getter
	a.mu.Unlock()

	log.Debug().Str("key", cacheKey).Str("path", propertyPath).Msg("Compiled property getter")
}

// CacheMethod resolves methodName on dev and caches a handle under cacheKey.
// A missing method is logged and ignored.
func (a *Accessor) CacheMethod(cacheKey string, dev device.Device, methodName string) {
	if dev == nil || methodName == "" {
		log.Warn().Str("key", cacheKey).Msg("Cannot cache method for nil device or empty name")
		return
	}

	provider, ok := dev.(device.MethodProvider)
	if !ok {
		log.Warn().
			Str("key", cacheKey).
			Str("device", dev.Key()).
			Err(ErrNoMethodTable).
			Msg("Cannot cache method")
		return
	}
	if _, ok := provider.Method(methodName); !ok {
		log.Warn().
			Str("method", methodName).
			Str("device", dev.Key()).
			Msg("Method not found on device")
		return
	}

	invoker := func(target device.Device, args ...any) error {
		p, ok := target.(device.MethodProvider)
		if !ok {
			return ErrNoMethodTable
		}
		m, ok := p.Method(methodName)
		if !ok {
			return fmt.Errorf("%s: %w", methodName, ErrMethodNotFound)
		}
		return m(args...)
	}

	a.mu.Lock()
	a.methods[cacheKey] = invoker
	a.mu.Unlock()

	log.Debug().Str("key", cacheKey).Str("method", methodName).Msg("Cached method")
}

// HasGetter reports whether a getter is cached under cacheKey.
func (a *Accessor) HasGetter(cacheKey string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.getters[cacheKey]
	return ok
}

// HasMethod reports whether a method handle is cached under cacheKey.
func (a *Accessor) HasMethod(cacheKey string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.methods[cacheKey]
	return ok
}

// Value reads the property cached under cacheKey from dev. cached is false
// when no getter has been compiled for the key.
func (a *Accessor) Value(cacheKey string, dev device.Device) (value any, cached bool) {
	a.mu.RLock()
	getter, ok := a.getters[cacheKey]
	a.mu.RUnlock()
	if !ok {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("key", cacheKey).Str("panic", fmt.Sprint(r)).Msg("Error reading property")
			value, cached = nil, true
		}
	}()

	return getter(dev), true
}

// Invoke calls the method cached under cacheKey on dev. Missing handles,
// returned errors and panics are logged and otherwise ignored.
func (a *Accessor) Invoke(cacheKey string, dev device.Device, args ...any) {
	a.mu.RLock()
	invoker, ok := a.methods[cacheKey]
	a.mu.RUnlock()
	if !ok {
		log.Warn().Str("key", cacheKey).Msg("No method cached for key")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("key", cacheKey).Str("panic", fmt.Sprint(r)).Msg("Method invocation failed")
		}
	}()

	if err := invoker(dev, args...); err != nil {
		log.Error().Err(err).Str("key", cacheKey).Msg("Method invocation failed")
		return
	}
	log.Debug().Str("key", cacheKey).Msg("Invoked method")
}

func buildGetter(parts []string) Getter {
	return func(dev device.Device) any {
		var current any = dev
		for _, part := range parts {
			next, ok := member(current, part)
			if !ok || next == nil {
				return nil
			}
			current = next
		}
		return current
	}
}

// member resolves one hop of a property path.
func member(v any, name string) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case device.PropertyProvider:
		return t.Property(name)
	case map[string]any:
		val, ok := t[name]
		return val, ok
	case map[string]string:
		val, ok := t[name]
		return val, ok
	default:
		return nil, false
	}
}
