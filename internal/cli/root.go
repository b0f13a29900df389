// Package cli implements the pamplemousse CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pamplemousse",
	Short: "Menu bar Pomodoro timer",
	Long: `Pamplemousse runs a Pomodoro timer in the menu bar.
Invoke it once to start the background timer; invoke it again to stop it.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(autostartCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(versionCmd)
}
