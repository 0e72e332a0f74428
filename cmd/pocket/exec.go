// Exec command: run a write statement and print the rows-changed count.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <database> <sql> [param...]",
	Short: "Run a write statement and print the rows-changed count",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := newBridge()
		if err != nil {
			return err
		}
		defer bridge.Close()

		name := args[0]
		if _, err := bridge.Open(name, ""); err != nil {
			return err
		}

		n, err := bridge.Exec(name, args[1], parseParams(args[2:]))
		if err != nil {
			return err
		}

		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]int64{"rows_affected": n})
		}
		fmt.Printf("%d row(s) changed\n", n)
		return nil
	},
}
