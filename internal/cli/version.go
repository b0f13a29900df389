package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamplemousse-io/pamplemousse/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pamplemousse %s (%s, built %s)\n",
			buildinfo.Version, buildinfo.CommitHash, buildinfo.BuildDate)
	},
}
