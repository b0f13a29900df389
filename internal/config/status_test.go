package config

import (
	"testing"
	"time"

	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

func TestStatusRoundTrip(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	state := models.SessionState{
		Phase:           models.PhaseShortBreak,
		Remaining:       3 * time.Minute,
		CyclesCompleted: 2,
		UpdatedAt:       time.Now().UTC().Truncate(time.Second),
	}
	if err := SaveStatus(state); err != nil {
		t.Fatalf("SaveStatus: %v", err)
	}

	loaded, err := LoadStatus()
	if err != nil {
		t.Fatalf("LoadStatus: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadStatus = nil, want snapshot")
	}
	if loaded.Phase != state.Phase {
		t.Errorf("Phase = %s, want %s", loaded.Phase, state.Phase)
	}
	if loaded.Remaining != state.Remaining {
		t.Errorf("Remaining = %s, want %s", loaded.Remaining, state.Remaining)
	}
	if loaded.CyclesCompleted != state.CyclesCompleted {
		t.Errorf("CyclesCompleted = %d, want %d", loaded.CyclesCompleted, state.CyclesCompleted)
	}
}

func TestLoadStatusAbsent(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	state, err := LoadStatus()
	if err != nil {
		t.Fatalf("LoadStatus: %v", err)
	}
	if state != nil {
		t.Errorf("LoadStatus = %+v, want nil", state)
	}
}

func TestRemoveStatusIdempotent(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	if err := RemoveStatus(); err != nil {
		t.Errorf("RemoveStatus on absent file: %v", err)
	}

	if err := SaveStatus(models.SessionState{Phase: models.PhaseWork}); err != nil {
		t.Fatalf("SaveStatus: %v", err)
	}
	if err := RemoveStatus(); err != nil {
		t.Errorf("RemoveStatus: %v", err)
	}
	if err := RemoveStatus(); err != nil {
		t.Errorf("second RemoveStatus: %v", err)
	}
}
