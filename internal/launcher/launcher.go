// Package launcher starts and stops the detached daemon process.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pamplemousse-io/pamplemousse/internal/registry"
)

// DaemonBinaryName is the daemon executable the launcher looks for.
const DaemonBinaryName = "pamplemoussed"

// ErrStopTimeout indicates the daemon did not exit within the bounded wait.
var ErrStopTimeout = errors.New("daemon did not stop within timeout")

const (
	// Bounded waits for daemon startup registration and shutdown,
	// polled at pollInterval.
	startTimeout = 5 * time.Second
	stopTimeout  = 5 * time.Second
	pollInterval = 100 * time.Millisecond
)

// Launch starts the daemon binary detached from the invoking terminal
// and returns its PID immediately. The daemon registers itself in the
// instance registry once it is up; use WaitRegistered for confirmation.
func Launch() (int, error) {
	daemonPath, err := FindDaemonBinary()
	if err != nil {
		return 0, err
	}

	cmd := exec.Command(daemonPath)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	// New session: the daemon survives the terminal and ignores its
	// job-control signals.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start daemon: %w", err)
	}

	pid := cmd.Process.Pid
	// Detach fully; the daemon is not our child to wait on.
	_ = cmd.Process.Release()
	return pid, nil
}

// WaitRegistered polls the instance registry until the daemon has
// written its record, bounded by the start timeout.
func WaitRegistered() error {
	deadline := time.Now().Add(startTimeout)
	for time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		record, err := registry.Probe()
		if err == nil && record != nil {
			return nil
		}
	}
	return errors.New("daemon failed to start within timeout")
}

// Stop asks the registered daemon to terminate and polls for process
// exit so the caller gets user-visible confirmation. Returns
// ErrStopTimeout if the process is still alive after the bounded wait.
func Stop(pid int) error {
	if err := registry.RequestStop(pid); err != nil {
		return err
	}

	deadline := time.Now().Add(stopTimeout)
	for time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		if !registry.ProcessAlive(pid) {
			return nil
		}
	}
	return ErrStopTimeout
}

// FindDaemonBinary locates the pamplemoussed binary: PATH first, then
// next to the current executable.
func FindDaemonBinary() (string, error) {
	if path, err := exec.LookPath(DaemonBinaryName); err == nil {
		return path, nil
	}

	execPath, err := os.Executable()
	if err == nil {
		daemonPath := filepath.Join(filepath.Dir(execPath), DaemonBinaryName)
		if _, err := os.Stat(daemonPath); err == nil {
			return daemonPath, nil
		}
	}

	return "", fmt.Errorf("%s not found. Install or build it first", DaemonBinaryName)
}
