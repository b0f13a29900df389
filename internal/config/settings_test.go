package config

import (
	"testing"

	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.WorkMinutes != 25 {
		t.Errorf("WorkMinutes = %d, want 25", settings.WorkMinutes)
	}
	if settings.ShortBreakMinutes != 5 {
		t.Errorf("ShortBreakMinutes = %d, want 5", settings.ShortBreakMinutes)
	}
	if settings.CyclesPerLongBreak != 4 {
		t.Errorf("CyclesPerLongBreak = %d, want 4", settings.CyclesPerLongBreak)
	}
	if !settings.Notifications {
		t.Error("Notifications = false, want true")
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	settings := models.NewSettings()
	settings.WorkMinutes = 45
	settings.ShortBreakMinutes = 10
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded.WorkMinutes != 45 {
		t.Errorf("WorkMinutes = %d, want 45", loaded.WorkMinutes)
	}
	if loaded.ShortBreakMinutes != 10 {
		t.Errorf("ShortBreakMinutes = %d, want 10", loaded.ShortBreakMinutes)
	}
}

// A hand-edited file with nonsense values must not stall the timer.
func TestLoadSettingsNormalizesBadValues(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	broken := &models.Settings{Version: 1, WorkMinutes: -3}
	if err := SaveSettings(broken); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded.WorkMinutes <= 0 {
		t.Errorf("WorkMinutes = %d, want > 0", loaded.WorkMinutes)
	}
	if loaded.CyclesPerLongBreak <= 0 {
		t.Errorf("CyclesPerLongBreak = %d, want > 0", loaded.CyclesPerLongBreak)
	}
}
