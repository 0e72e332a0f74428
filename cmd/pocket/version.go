// Version command for the pocket CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josedab/pocket/pkg/pocket"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pocket v" + pocket.Version)
	},
}
