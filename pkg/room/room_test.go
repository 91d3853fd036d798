package room

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/roomstatus/pkg/config"
	"github.com/urmzd/roomstatus/pkg/device"
	"github.com/urmzd/roomstatus/pkg/status"
	"github.com/urmzd/roomstatus/pkg/telemetry"
)

type lifecycle struct {
	key string
	on  bool
}

func (l *lifecycle) Key() string                   { return l.key }
func (l *lifecycle) RoomIsOn() bool                { return l.on }
func (l *lifecycle) Shutdown()                     { l.on = false }
func (l *lifecycle) PowerOnToDefaultOrLastSource() { l.on = true }

func TestRoom_ExecuteThenStatus(t *testing.T) {
	reg := device.NewMemoryRegistry()
	require.NoError(t, reg.Register(&lifecycle{key: "room1"}))

	cfg := &config.Config{
		APIVersion:         "1.0.0",
		StandardProperties: config.StandardProperties{RoomDeviceKey: "room1"},
	}
	r := New("lobby", cfg, reg, telemetry.New())

	doc := r.Status()
	require.NotNil(t, doc.Standard.State)
	assert.Equal(t, status.StateOff, *doc.Standard.State)

	r.Execute("on", "")

	doc = r.Status()
	require.NotNil(t, doc.Standard.State)
	assert.Equal(t, status.StateOn, *doc.Standard.State)
	assert.Equal(t, "lobby", r.Name())
	assert.Same(t, cfg, r.Config())
}

func TestRoom_NilMetrics(t *testing.T) {
	r := New("lobby", &config.Config{}, device.NewMemoryRegistry(), nil)
	assert.NotPanics(t, func() {
		r.Status()
		r.Execute("on", "x")
	})
}

func TestNewSet(t *testing.T) {
	reg := device.NewMemoryRegistry()
	a := New("b-room", &config.Config{RoutePrefix: "b"}, reg, nil)
	b := New("a-room", &config.Config{RoutePrefix: "a"}, reg, nil)

	set, err := NewSet(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, "a-room", set.All()[0].Name())

	got, err := set.Get("b-room")
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = set.Get("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNewSet_Duplicates(t *testing.T) {
	reg := device.NewMemoryRegistry()

	_, err := NewSet(
		New("one", &config.Config{}, reg, nil),
		New("one", &config.Config{RoutePrefix: "x"}, reg, nil),
	)
	assert.True(t, errors.Is(err, ErrDuplicate))

	_, err = NewSet(
		New("one", &config.Config{RoutePrefix: "/same/"}, reg, nil),
		New("two", &config.Config{RoutePrefix: "same"}, reg, nil),
	)
	assert.True(t, errors.Is(err, ErrDuplicate))
}
