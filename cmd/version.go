package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), server.FormatBuildVersion(build.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
