package models

import "time"

// Duration choices offered in the tray Settings submenu, in minutes.
var (
	WorkDurationOptions  = []int{1, 15, 20, 25, 30, 45, 60}
	BreakDurationOptions = []int{1, 3, 5, 10, 15, 20}
)

// Settings represents the persisted timer configuration.
// This corresponds to ~/.pamplemousse/settings.yaml.
type Settings struct {
	Version            int  `yaml:"version"`
	WorkMinutes        int  `yaml:"work_minutes"`
	ShortBreakMinutes  int  `yaml:"short_break_minutes"`
	LongBreakMinutes   int  `yaml:"long_break_minutes"`
	CyclesPerLongBreak int  `yaml:"cycles_per_long_break"`
	Notifications      bool `yaml:"notifications"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:            1,
		WorkMinutes:        25,
		ShortBreakMinutes:  5,
		LongBreakMinutes:   15,
		CyclesPerLongBreak: 4,
		Notifications:      true,
	}
}

// Normalize replaces out-of-range values with defaults so a hand-edited
// settings file can never stall the timer.
func (s *Settings) Normalize() {
	def := NewSettings()
	if s.WorkMinutes <= 0 {
		s.WorkMinutes = def.WorkMinutes
	}
	if s.ShortBreakMinutes <= 0 {
		s.ShortBreakMinutes = def.ShortBreakMinutes
	}
	if s.LongBreakMinutes <= 0 {
		s.LongBreakMinutes = def.LongBreakMinutes
	}
	if s.CyclesPerLongBreak <= 0 {
		s.CyclesPerLongBreak = def.CyclesPerLongBreak
	}
}

// WorkDuration returns the work interval length.
func (s *Settings) WorkDuration() time.Duration {
	return time.Duration(s.WorkMinutes) * time.Minute
}

// ShortBreakDuration returns the short break length.
func (s *Settings) ShortBreakDuration() time.Duration {
	return time.Duration(s.ShortBreakMinutes) * time.Minute
}

// LongBreakDuration returns the long break length.
func (s *Settings) LongBreakDuration() time.Duration {
	return time.Duration(s.LongBreakMinutes) * time.Minute
}
