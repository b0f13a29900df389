// Package registry enforces the single-daemon-instance guarantee.
//
// The "singleton" spans two OS processes (the CLI invocation and the
// detached daemon), so it is modeled as an on-disk instance record with
// exclusive-create semantics rather than any in-memory flag. The CLI
// and the daemon coordinate only through this record and OS signals.
package registry

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pamplemousse-io/pamplemousse/internal/config"
	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

// ErrAlreadyActive indicates another daemon registered first.
var ErrAlreadyActive = errors.New("instance already active")

// ErrNotRunning indicates a stop was requested for a dead or absent instance.
var ErrNotRunning = errors.New("instance not running")

// startedAtSkew is how far in the future a recorded start time may lie
// before the record is considered garbage. Guards against clock jumps
// and a recycled PID paired with a nonsense record.
const startedAtSkew = time.Minute

// Probe reads the instance record and verifies the recorded process is
// actually alive. Returns nil if no valid record exists. Stale records
// (dead PID, malformed content) are removed, never surfaced as errors.
func Probe() (*models.InstanceRecord, error) {
	path, err := config.InstanceFile()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read instance record: %w", err)
	}

	var record models.InstanceRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		_ = os.Remove(path)
		return nil, nil
	}

	if isStale(&record) {
		_ = os.Remove(path)
		return nil, nil
	}

	return &record, nil
}

// Register atomically creates the instance record for the given PID.
// The O_EXCL create closes the race window between two invocations that
// both observed an absent record: exactly one wins, the other gets
// ErrAlreadyActive.
func Register(pid int) error {
	if err := config.EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := config.InstanceFile()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrAlreadyActive
		}
		return fmt.Errorf("failed to create instance record: %w", err)
	}
	defer f.Close()

	data, err := yaml.Marshal(models.NewInstanceRecord(pid))
	if err != nil {
		return fmt.Errorf("failed to marshal instance record: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write instance record: %w", err)
	}
	return nil
}

// RequestStop sends SIGTERM to the recorded daemon process.
func RequestStop(pid int) error {
	if !ProcessAlive(pid) {
		return ErrNotRunning
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return ErrNotRunning
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("%w: %v", ErrNotRunning, err)
	}
	return nil
}

// Unregister removes the instance record. Invoked by the daemon during
// graceful shutdown and from its termination signal handler.
func Unregister() error {
	path, err := config.InstanceFile()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove instance record: %w", err)
	}
	return nil
}

// ProcessAlive checks process liveness with a null signal.
func ProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		// On Unix, FindProcess always succeeds
		return false
	}

	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to another user.
	return errors.Is(err, syscall.EPERM)
}

func isStale(record *models.InstanceRecord) bool {
	if record.PID <= 0 {
		return true
	}
	// A start time in the future means the record can't describe the
	// process currently holding that PID.
	if record.StartedAt.After(time.Now().Add(startedAtSkew)) {
		return true
	}
	return !ProcessAlive(record.PID)
}
