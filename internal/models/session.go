package models

import (
	"fmt"
	"time"
)

// SessionPhase identifies which interval the timer is currently in.
type SessionPhase string

// Session phases.
const (
	PhaseWork       SessionPhase = "work"
	PhaseShortBreak SessionPhase = "short_break"
	PhaseLongBreak  SessionPhase = "long_break"
	PhasePaused     SessionPhase = "paused"
)

// IsBreak reports whether the phase is one of the break intervals.
func (p SessionPhase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// SessionState is a snapshot of the Pomodoro timer.
// The daemon's session loop is the only writer; everyone else gets copies.
type SessionState struct {
	Phase           SessionPhase  `yaml:"phase"`
	Previous        SessionPhase  `yaml:"previous,omitempty"` // set only while paused
	Remaining       time.Duration `yaml:"remaining"`
	CyclesCompleted int           `yaml:"cycles_completed"`
	UpdatedAt       time.Time     `yaml:"updated_at"`
}

// ActivePhase returns the phase the timer is counting down in,
// looking through a pause to the phase it will resume into.
func (s SessionState) ActivePhase() SessionPhase {
	if s.Phase == PhasePaused {
		return s.Previous
	}
	return s.Phase
}

// FormatRemaining renders the remaining time as mm:ss.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
