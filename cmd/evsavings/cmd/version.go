package cmd

import (
	"github.com/spf13/cobra"
)

// version is overridable at build time with -ldflags.
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the evsavings version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("evsavings " + version)
	},
}
