package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the weave version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("weave version %s\n", Version)
	},
}
