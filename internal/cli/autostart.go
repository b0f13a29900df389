package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamplemousse-io/pamplemousse/internal/autostart"
	"github.com/pamplemousse-io/pamplemousse/internal/launcher"
)

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage the login item",
}

var autostartOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Start the timer automatically at login",
	RunE:  runAutostartOn,
}

var autostartOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Remove the login item",
	RunE:  runAutostartOff,
}

func init() {
	autostartCmd.AddCommand(autostartOnCmd)
	autostartCmd.AddCommand(autostartOffCmd)
}

func runAutostartOn(cmd *cobra.Command, args []string) error {
	daemonPath, err := launcher.FindDaemonBinary()
	if err != nil {
		return err
	}
	if err := autostart.Install(daemonPath); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "login item installed")
	return nil
}

func runAutostartOff(cmd *cobra.Command, args []string) error {
	if err := autostart.Uninstall(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "login item removed")
	return nil
}
