// Init command: create a database file without running any statement.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <database> [path]",
	Short: "Create or open a database file",
	Long: `Create or open the named database, leaving an empty database file on
disk. An optional explicit path overrides the default data-dir location.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := newBridge()
		if err != nil {
			return err
		}
		defer bridge.Close()

		path := ""
		if len(args) > 1 {
			path = args[1]
		}
		if _, err := bridge.Open(args[0], path); err != nil {
			return err
		}
		fmt.Printf("opened %s (%d bytes)\n", args[0], bridge.Size(args[0]))
		return nil
	},
}
