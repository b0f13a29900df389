// Package session implements the Pomodoro state machine and the event
// loop that drives it inside the daemon.
package session

import (
	"time"

	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

// Config holds the interval lengths the machine cycles through.
type Config struct {
	Work               time.Duration
	ShortBreak         time.Duration
	LongBreak          time.Duration
	CyclesPerLongBreak int
}

// ConfigFromSettings converts persisted settings into machine config.
func ConfigFromSettings(settings *models.Settings) Config {
	return Config{
		Work:               settings.WorkDuration(),
		ShortBreak:         settings.ShortBreakDuration(),
		LongBreak:          settings.LongBreakDuration(),
		CyclesPerLongBreak: settings.CyclesPerLongBreak,
	}
}

func (c *Config) normalize() {
	def := models.NewSettings()
	if c.Work <= 0 {
		c.Work = def.WorkDuration()
	}
	if c.ShortBreak <= 0 {
		c.ShortBreak = def.ShortBreakDuration()
	}
	if c.LongBreak <= 0 {
		c.LongBreak = def.LongBreakDuration()
	}
	if c.CyclesPerLongBreak <= 0 {
		c.CyclesPerLongBreak = def.CyclesPerLongBreak
	}
}

// EventType classifies machine events.
type EventType int

// Machine event types.
const (
	// EventProgress reports the countdown advancing within a phase.
	EventProgress EventType = iota
	// EventPhaseChanged reports a transition between phases,
	// including pause and resume.
	EventPhaseChanged
)

// Event is emitted by the machine after processing an input.
type Event struct {
	Type  EventType
	State models.SessionState
	// Notify marks work<->break transitions that should surface a
	// system notification, as opposed to pause/resume which only
	// refresh the presenter.
	Notify bool
}

// Machine is the Pomodoro session state machine. It is purely reactive:
// it mutates state only in response to Tick, Pause, Resume, and
// UpdateConfig, performs no I/O, and never blocks. All calls must come
// from a single goroutine; the Loop provides that serialization.
type Machine struct {
	config Config
	state  models.SessionState
}

// New creates a machine starting a work interval.
func New(config Config) *Machine {
	config.normalize()
	return &Machine{
		config: config,
		state: models.SessionState{
			Phase:     models.PhaseWork,
			Remaining: config.Work,
			UpdatedAt: time.Now().UTC(),
		},
	}
}

// State returns a copy of the current session state.
func (m *Machine) State() models.SessionState {
	return m.state
}

// Tick advances the countdown by delta. Ticks delivered while paused
// are ignored. Crossing zero transitions to the next phase and resets
// the countdown; remaining never goes negative.
func (m *Machine) Tick(delta time.Duration) (Event, bool) {
	if m.state.Phase == models.PhasePaused || delta <= 0 {
		return Event{}, false
	}

	m.state.UpdatedAt = time.Now().UTC()
	m.state.Remaining -= delta
	if m.state.Remaining > 0 {
		return Event{Type: EventProgress, State: m.state}, true
	}

	if m.state.Phase == models.PhaseWork {
		m.state.CyclesCompleted++
		if m.state.CyclesCompleted%m.config.CyclesPerLongBreak == 0 {
			m.state.Phase = models.PhaseLongBreak
			m.state.Remaining = m.config.LongBreak
		} else {
			m.state.Phase = models.PhaseShortBreak
			m.state.Remaining = m.config.ShortBreak
		}
	} else {
		m.state.Phase = models.PhaseWork
		m.state.Remaining = m.config.Work
	}

	return Event{Type: EventPhaseChanged, State: m.state, Notify: true}, true
}

// Pause freezes the timer, preserving the current phase and remaining
// time. No-op if already paused.
func (m *Machine) Pause() (Event, bool) {
	if m.state.Phase == models.PhasePaused {
		return Event{}, false
	}

	m.state.Previous = m.state.Phase
	m.state.Phase = models.PhasePaused
	m.state.UpdatedAt = time.Now().UTC()
	return Event{Type: EventPhaseChanged, State: m.state}, true
}

// Resume restores the phase and remaining time saved by Pause.
// No-op if not paused.
func (m *Machine) Resume() (Event, bool) {
	if m.state.Phase != models.PhasePaused {
		return Event{}, false
	}

	m.state.Phase = m.state.Previous
	m.state.Previous = ""
	m.state.UpdatedAt = time.Now().UTC()
	return Event{Type: EventPhaseChanged, State: m.state}, true
}

// UpdateConfig applies new interval lengths. The remaining time of the
// current phase is rescaled so elapsed time is preserved: switching from
// 25 to 45 minute work intervals 10 minutes in leaves 35 minutes.
func (m *Machine) UpdateConfig(config Config) (Event, bool) {
	config.normalize()
	old := m.config
	m.config = config

	var oldTotal, newTotal time.Duration
	switch m.state.ActivePhase() {
	case models.PhaseWork:
		oldTotal, newTotal = old.Work, config.Work
	case models.PhaseShortBreak:
		oldTotal, newTotal = old.ShortBreak, config.ShortBreak
	case models.PhaseLongBreak:
		oldTotal, newTotal = old.LongBreak, config.LongBreak
	default:
		return Event{}, false
	}

	if oldTotal == newTotal {
		return Event{}, false
	}

	elapsed := oldTotal - m.state.Remaining
	remaining := newTotal - elapsed
	if remaining < 0 {
		remaining = 0
	}
	m.state.Remaining = remaining
	m.state.UpdatedAt = time.Now().UTC()
	return Event{Type: EventProgress, State: m.state}, true
}
