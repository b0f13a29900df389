package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamplemousse-io/pamplemousse/internal/launcher"
	"github.com/pamplemousse-io/pamplemousse/internal/registry"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer without prompting",
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	record, err := registry.Probe()
	if err != nil {
		return fmt.Errorf("failed to check for a running instance: %w", err)
	}

	if record == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "pamplemousse is not running.")
		return nil
	}

	if err := launcher.Stop(record.PID); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "stopped")
	return nil
}
