package state

import (
	"time"

	"github.com/urmzd/roomstatus/pkg/device"
)

type display struct {
	key string
	on  bool
}

func (d *display) Key() string     { return d.key }
func (d *display) PowerIsOn() bool { return d.on }

type projector struct {
	display
	warming, cooling bool
	lamp             int
	lampReported     bool
}

func (p *projector) IsWarmingUp() bool   { return p.warming }
func (p *projector) IsCoolingDown() bool { return p.cooling }
func (p *projector) LampHours() (int, bool) {
	return p.lamp, p.lampReported
}

type codec struct {
	key     string
	online  bool
	inCall  bool
	warming bool
	message string
	started *time.Time
}

func (c *codec) Key() string                  { return c.key }
func (c *codec) IsInCall() bool               { return c.inCall }
func (c *codec) CommunicationMessage() string { return c.message }
func (c *codec) CommunicationOnline() bool    { return c.online }
func (c *codec) IsWarmingUp() bool            { return c.warming }
func (c *codec) IsCoolingDown() bool          { return false }
func (c *codec) UsageTrackingStarted() bool   { return c.started != nil }
func (c *codec) UsageStartTime() time.Time {
	if c.started == nil {
		return time.Time{}
	}
	return *c.started
}

type pingable struct {
	key    string
	online bool
}

func (p *pingable) Key() string    { return p.key }
func (p *pingable) IsOnline() bool { return p.online }

type sink struct {
	display
	source *device.SourceInfo
}

func (s *sink) CurrentSource() *device.SourceInfo { return s.source }

type faulty struct{ key string }

func (f *faulty) Key() string                       { return f.key }
func (f *faulty) PowerIsOn() bool                   { panic("power feedback unavailable") }
func (f *faulty) CommunicationMessage() string      { panic("monitor unavailable") }
func (f *faulty) CommunicationOnline() bool         { panic("monitor unavailable") }
func (f *faulty) CurrentSource() *device.SourceInfo { panic("routing unavailable") }
func (f *faulty) RoomIsOccupied() (bool, bool)      { panic("sensor unavailable") }

type lifecycleRoom struct {
	key   string
	on    bool
	help  string
	props map[string]any
}

func (r *lifecycleRoom) Key() string                   { return r.key }
func (r *lifecycleRoom) RoomIsOn() bool                { return r.on }
func (r *lifecycleRoom) Shutdown()                     {}
func (r *lifecycleRoom) PowerOnToDefaultOrLastSource() {}
func (r *lifecycleRoom) HelpMessage() string           { return r.help }
func (r *lifecycleRoom) Property(name string) (any, bool) {
	v, ok := r.props[name]
	return v, ok
}

type feedbackRoom struct {
	key string
	on  bool
}

func (r *feedbackRoom) Key() string { return r.key }
func (r *feedbackRoom) IsOn() bool  { return r.on }

type sensor struct {
	key      string
	occupied bool
	reported bool
}

func (s *sensor) Key() string                  { return s.key }
func (s *sensor) RoomIsOccupied() (bool, bool) { return s.occupied, s.reported }
