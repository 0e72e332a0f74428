// Shared helpers for pocket CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/josedab/pocket/pkg/pocket"
	"github.com/josedab/pocket/pkg/types"
)

// newBridge resolves the data directory and constructs a bridge. The
// caller must defer bridge.Close().
func newBridge() (*pocket.Bridge, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	bridge, err := pocket.New(types.Config{
		DataDir:   dataDir,
		TraceFile: resolveTraceFile(),
	})
	if err != nil {
		return nil, fmt.Errorf("create bridge: %w", err)
	}
	return bridge, nil
}

// parseParams converts CLI argument strings to typed parameter values:
// "null" binds NULL, "true"/"false" bind booleans, numeric literals bind
// numbers, and everything else binds text.
func parseParams(args []string) []types.Value {
	params := make([]types.Value, len(args))
	for i, a := range args {
		switch strings.ToLower(a) {
		case "null":
			params[i] = types.Null()
			continue
		case "true":
			params[i] = types.Bool(true)
			continue
		case "false":
			params[i] = types.Bool(false)
			continue
		}
		if f, err := strconv.ParseFloat(a, 64); err == nil {
			params[i] = types.Number(f)
			continue
		}
		params[i] = types.Text(a)
	}
	return params
}

// printRows writes rows to stdout, as a JSON array of objects with --json
// (NULL columns rendered as JSON null) or as tab-separated text otherwise.
func printRows(rows []types.Row) error {
	if flagJSON {
		out := make([]map[string]any, len(rows))
		for i, row := range rows {
			obj := make(map[string]any, len(row.Columns))
			for _, c := range row.Columns {
				if c.Null {
					obj[c.Name] = nil
				} else {
					obj[c.Name] = c.Value
				}
			}
			out[i] = obj
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, row := range rows {
		if i == 0 {
			names := make([]string, len(row.Columns))
			for j, c := range row.Columns {
				names[j] = c.Name
			}
			fmt.Println(strings.Join(names, "\t"))
		}
		vals := make([]string, len(row.Columns))
		for j, c := range row.Columns {
			if c.Null {
				vals[j] = "NULL"
			} else {
				vals[j] = c.Value
			}
		}
		fmt.Println(strings.Join(vals, "\t"))
	}
	return nil
}
