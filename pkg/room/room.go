// Package room wires one configured room: its accessor caches, mapping
// handler, state builder and action executor.
package room

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/roomstatus/pkg/accessor"
	"github.com/urmzd/roomstatus/pkg/action"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/mapping"
	"github.com/urmzd/roomstatus/pkg/state"
	"github.com/urmzd/roomstatus/pkg/status"
	"github.com/urmzd/roomstatus/pkg/telemetry"
)

var (
	// ErrNotFound indicates no room with the given name is configured
	ErrNotFound = errors.New("room not found")

	// ErrDuplicate indicates two rooms share a name or route
	ErrDuplicate = errors.New("duplicate room")
)

// Room is the status service of one configured room.
type Room struct {
	name     string
	cfg      *config.Config
	registry device.Registry
	builder  *state.Builder
	executor *action.Executor
}

// New creates a room and eagerly compiles its property mappings against the
// devices registered so far. metrics may be nil.
func New(name string, cfg *config.Config, registry device.Registry, metrics *telemetry.Metrics) *Room {
	handler := mapping.New(accessor.New(), registry)
	handler.Initialize(cfg)

	builder := state.NewBuilder(cfg, registry, handler)
	builder.OnBuild(func(d time.Duration) {
		metrics.RecordBuild(name, d)
	})

	executor := action.NewExecutor(cfg, registry, handler)
	executor.OnAction(func(kind, _ string) {
		metrics.RecordAction(name, kind)
	})

	log.Info().
		Str("room", name).
		Str("route", cfg.RoutePath()).
		Str("feedback", string(cfg.FeedbackMode)).
		Bool("psk", cfg.PSKRequired()).
		Msg("Room initialized")

	return &Room{
		name:     name,
		cfg:      cfg,
		registry: registry,
		builder:  builder,
		executor: executor,
	}
}

// Name returns the room name.
func (r *Room) Name() string { return r.name }

// Config returns the room configuration.
func (r *Room) Config() *config.Config { return r.cfg }

// Status builds the current room status document.
func (r *Room) Status() *status.Document {
	return r.builder.Build()
}

// Execute applies a desired state and activity. Device panics propagate.
func (r *Room) Execute(desiredState, desiredActivity string) {
	r.executor.ExecuteStateChange(desiredState, desiredActivity)
}

// Set is an ordered collection of rooms with unique names and routes.
type Set struct {
	rooms  []*Room
	byName map[string]*Room
}

// NewSet validates that names and routes are unique.
func NewSet(rooms ...*Room) (*Set, error) {
	s := &Set{byName: make(map[string]*Room, len(rooms))}
	routes := make(map[string]string, len(rooms))

	for _, r := range rooms {
		if _, dup := s.byName[r.name]; dup {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicate, r.name)
		}
		route := r.cfg.RoutePath()
		if other, dup := routes[route]; dup {
			return nil, fmt.Errorf("%w: rooms %q and %q both serve %s", ErrDuplicate, other, r.name, route)
		}
		routes[route] = r.name
		s.byName[r.name] = r
		s.rooms = append(s.rooms, r)
	}

	sort.Slice(s.rooms, func(i, j int) bool { return s.rooms[i].name < s.rooms[j].name })
	return s, nil
}

// Get returns the room called name.
func (s *Set) Get(name string) (*Room, error) {
	r, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return r, nil
}

// All returns the rooms sorted by name.
func (s *Set) All() []*Room {
	return s.rooms
}

// Len returns the number of rooms.
func (s *Set) Len() int {
	return len(s.rooms)
}
