// Query command: run a read statement and print the result rows.
package main

import (
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <database> <sql> [param...]",
	Short: "Run a read statement and print the result rows",
	Long: `Run a SQL read statement against the named database and print the
result rows. Parameters bind positionally: "null", "true"/"false" and
numeric literals bind typed values, everything else binds text.`,
	Args: cobra.MinimumNArgs(2),
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

		rows, err := bridge.Query(name, args[1], parseParams(args[2:]))
		if err != nil {
			return err
		}
		return printRows(rows)
	},
}
