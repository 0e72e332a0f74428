// Delete command: remove a database's backing file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <database>",
	Short: "Delete the database's backing file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := newBridge()
		if err != nil {
			return err
		}
		defer bridge.Close()

		if err := bridge.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}
