package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the uikit version",
	GroupID: "system",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "uikit %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
