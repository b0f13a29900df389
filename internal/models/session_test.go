package models

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{name: "zero", d: 0, expected: "00:00"},
		{name: "negative clamps", d: -5 * time.Second, expected: "00:00"},
		{name: "seconds only", d: 42 * time.Second, expected: "00:42"},
		{name: "minutes and seconds", d: 24*time.Minute + 59*time.Second, expected: "24:59"},
		{name: "over an hour", d: 61 * time.Minute, expected: "61:00"},
		{name: "sub-second rounds", d: 1500 * time.Millisecond, expected: "00:02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRemaining(tt.d); got != tt.expected {
				t.Errorf("FormatRemaining(%s) = %q, want %q", tt.d, got, tt.expected)
			}
		})
	}
}

func TestActivePhase(t *testing.T) {
	running := SessionState{Phase: PhaseWork}
	if got := running.ActivePhase(); got != PhaseWork {
		t.Errorf("ActivePhase = %s, want %s", got, PhaseWork)
	}

	paused := SessionState{Phase: PhasePaused, Previous: PhaseLongBreak}
	if got := paused.ActivePhase(); got != PhaseLongBreak {
		t.Errorf("ActivePhase = %s, want %s", got, PhaseLongBreak)
	}
}

func TestIsBreak(t *testing.T) {
	if PhaseWork.IsBreak() {
		t.Error("work is not a break")
	}
	if !PhaseShortBreak.IsBreak() || !PhaseLongBreak.IsBreak() {
		t.Error("break phases should report IsBreak")
	}
	if PhasePaused.IsBreak() {
		t.Error("paused is not a break")
	}
}
