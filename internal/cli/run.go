package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamplemousse-io/pamplemousse/internal/autostart"
	"github.com/pamplemousse-io/pamplemousse/internal/launcher"
	"github.com/pamplemousse-io/pamplemousse/internal/registry"
)

// runRoot implements the bare invocation: start the daemon when none is
// running, otherwise offer to stop the one that is.
func runRoot(cmd *cobra.Command, args []string) error {
	ensureAutostart(cmd)

	record, err := registry.Probe()
	if err != nil {
		return fmt.Errorf("failed to check for a running instance: %w", err)
	}

	if record != nil {
		prompt := "pamplemousse already running, stop it? [y/N] "
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			return nil
		}
		if err := launcher.Stop(record.PID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "stopped")
		return nil
	}

	if _, err := launcher.Launch(); err != nil {
		return err
	}
	if err := launcher.WaitRegistered(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "pamplemousse started")
	return nil
}

// ensureAutostart installs the login item on first run, mirroring the
// original behavior of registering at login automatically. Failures are
// reported but never block starting the timer.
func ensureAutostart(cmd *cobra.Command) {
	installed, err := autostart.Installed()
	if err != nil || installed {
		return
	}

	daemonPath, err := launcher.FindDaemonBinary()
	if err != nil {
		return
	}
	if err := autostart.Install(daemonPath); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not install login item: %v\n", err)
	}
}
