package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pamplemousse-io/pamplemousse/internal/config"
	"github.com/pamplemousse-io/pamplemousse/internal/models"
	"github.com/pamplemousse-io/pamplemousse/internal/registry"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show timer status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	record, err := registry.Probe()
	if err != nil {
		return fmt.Errorf("failed to check for a running instance: %w", err)
	}

	out := cmd.OutOrStdout()
	if record == nil {
		fmt.Fprintln(out, "pamplemousse is not running.")
		return nil
	}

	uptime := time.Since(record.StartedAt).Truncate(time.Second)
	fmt.Fprintln(out, "pamplemousse is running.")
	fmt.Fprintf(out, "  PID:     %d\n", record.PID)
	fmt.Fprintf(out, "  Uptime:  %s\n", uptime)

	state, err := config.LoadStatus()
	if err != nil || state == nil {
		return nil // Non-fatal: just skip the session display
	}

	remaining := state.Remaining
	if state.Phase != models.PhasePaused {
		// The snapshot is written on transitions; project it forward.
		remaining -= time.Since(state.UpdatedAt)
		if remaining < 0 {
			remaining = 0
		}
	}

	fmt.Fprintf(out, "  Phase:   %s\n", state.Phase)
	fmt.Fprintf(out, "  Left:    %s\n", models.FormatRemaining(remaining))
	fmt.Fprintf(out, "  Cycles:  %d\n", state.CyclesCompleted)
	return nil
}
