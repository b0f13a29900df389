package registry

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pamplemousse-io/pamplemousse/internal/config"
	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

// deadPID returns a PID that is guaranteed not to be alive: it runs a
// short-lived child and waits for it, so the PID has been reaped.
func deadPID(t *testing.T) int {
	t.Helper()
	cmd := exec.Command("true")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to run helper process: %v", err)
	}
	return cmd.Process.Pid
}

func writeRecord(t *testing.T, record *models.InstanceRecord) {
	t.Helper()
	path, err := config.InstanceFile()
	if err != nil {
		t.Fatalf("InstanceFile: %v", err)
	}
	data, err := yaml.Marshal(record)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write record: %v", err)
	}
}

func TestProbeAbsent(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())

	record, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if record != nil {
		t.Errorf("Probe = %+v, want nil", record)
	}
}

func TestRegisterThenProbe(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())

	pid := os.Getpid()
	if err := Register(pid); err != nil {
		t.Fatalf("Register: %v", err)
	}

	record, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if record == nil {
		t.Fatal("Probe = nil, want record")
	}
	if record.PID != pid {
		t.Errorf("PID = %d, want %d", record.PID, pid)
	}
	if record.StartedAt.IsZero() {
		t.Error("StartedAt is zero")
	}
}

// Two probes with no intervening state change agree.
func TestProbeIsStable(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())

	if err := Register(os.Getpid()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	first, err := Probe()
	if err != nil {
		t.Fatalf("first Probe: %v", err)
	}
	second, err := Probe()
	if err != nil {
		t.Fatalf("second Probe: %v", err)
	}
	if first == nil || second == nil {
		t.Fatal("Probe flapped to nil")
	}
	if first.PID != second.PID {
		t.Errorf("PIDs differ across probes: %d vs %d", first.PID, second.PID)
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())

	if err := Register(os.Getpid()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := Register(os.Getpid())
	if !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("second Register = %v, want ErrAlreadyActive", err)
	}
}

// Concurrent registrations with no prior record: exactly one wins.
func TestConcurrentRegister(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())

	const workers = 16
	results := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Register(os.Getpid())
		}(i)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrAlreadyActive):
			losses++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("wins = %d, want exactly 1", wins)
	}
	if losses != workers-1 {
		t.Errorf("losses = %d, want %d", losses, workers-1)
	}
}

func TestProbeHealsStaleRecord(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())
	if err := config.EnsureGlobalDir(); err != nil {
		t.Fatalf("EnsureGlobalDir: %v", err)
	}

	writeRecord(t, &models.InstanceRecord{
		Version:   1,
		PID:       deadPID(t),
		StartedAt: time.Now().UTC().Add(-time.Hour),
	})

	record, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if record != nil {
		t.Errorf("Probe = %+v, want nil (stale record healed)", record)
	}

	path, _ := config.InstanceFile()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("stale record file was not removed")
	}

	// A fresh daemon can register without manual cleanup.
	if err := Register(os.Getpid()); err != nil {
		t.Errorf("Register after heal: %v", err)
	}
}

func TestProbeHealsMalformedRecord(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())
	if err := config.EnsureGlobalDir(); err != nil {
		t.Fatalf("EnsureGlobalDir: %v", err)
	}

	path, _ := config.InstanceFile()
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	record, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if record != nil {
		t.Errorf("Probe = %+v, want nil", record)
	}
}

func TestProbeHealsFutureStartedAt(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())
	if err := config.EnsureGlobalDir(); err != nil {
		t.Fatalf("EnsureGlobalDir: %v", err)
	}

	writeRecord(t, &models.InstanceRecord{
		Version:   1,
		PID:       os.Getpid(),
		StartedAt: time.Now().UTC().Add(24 * time.Hour),
	})

	record, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if record != nil {
		t.Errorf("Probe = %+v, want nil (future start time)", record)
	}
}

func TestUnregister(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())

	if err := Register(os.Getpid()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Unregister(); err != nil {
		t.Fatalf("Unregister: %v", err)
	}

	record, err := Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if record != nil {
		t.Errorf("Probe after Unregister = %+v, want nil", record)
	}

	// Unregister is idempotent.
	if err := Unregister(); err != nil {
		t.Errorf("second Unregister: %v", err)
	}
}

func TestRequestStopDeadProcess(t *testing.T) {
	err := RequestStop(deadPID(t))
	if !errors.Is(err, ErrNotRunning) {
		t.Errorf("RequestStop = %v, want ErrNotRunning", err)
	}
}

func TestProcessAlive(t *testing.T) {
	if !ProcessAlive(os.Getpid()) {
		t.Error("ProcessAlive(self) = false, want true")
	}
	if ProcessAlive(deadPID(t)) {
		t.Error("ProcessAlive(dead) = true, want false")
	}
	if ProcessAlive(0) {
		t.Error("ProcessAlive(0) = true, want false")
	}
	if ProcessAlive(-1) {
		t.Error("ProcessAlive(-1) = true, want false")
	}
}
