// Package main provides the pocket CLI, a thin shell over the bridge for
// inspecting and manipulating pocket database files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
