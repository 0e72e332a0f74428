// Size command: print the byte size of a database file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size <database>",
	Short: "Print the byte size of the database's backing file",
	Args:  cobra.ExactArgs(1),
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

		size := bridge.Size(name)
		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]int64{"size": size})
		}
		fmt.Printf("%d\n", size)
		return nil
	},
}
