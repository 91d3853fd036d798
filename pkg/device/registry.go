package device

import (
	"fmt"
	"sort"
	"sync"
)

// Registry resolves device keys to live device objects.
//
// Lookup must be safe to call at any time, including before a device has been
// registered, in which case it returns nil.
type Registry interface {
	Lookup(key string) Device
}

// MemoryRegistry is an in-memory Registry that device adapters register into.
// All methods are safe for concurrent use.
type MemoryRegistry struct {
	mu      sync.RWMutex
	devices map[string]Device
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		devices: make(map[string]Device),
	}
}

// Lookup returns the device registered under key, or nil.
func (r *MemoryRegistry) Lookup(key string) Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.devices[key]
}

// Register adds a device under its own key.
func (r *MemoryRegistry) Register(d Device) error {
	if d == nil || d.Key() == "" {
		return ErrInvalidKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.devices[d.Key()]; exists {
		return fmt.Errorf("register %q: %w", d.Key(), ErrDuplicateKey)
	}
	r.devices[d.Key()] = d
	return nil
}

// Unregister removes the device registered under key.
func (r *MemoryRegistry) Unregister(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.devices[key]; !exists {
		return fmt.Errorf("unregister %q: %w", key, ErrNotFound)
	}
	delete(r.devices, key)
	return nil
}

// Keys returns the registered device keys in sorted order.
func (r *MemoryRegistry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.devices))
	for k := range r.devices {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Len returns the number of registered devices.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}
