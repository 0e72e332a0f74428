// Root command for the pocket CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/josedab/pocket/internal/paths"
	"github.com/josedab/pocket/pkg/pocket"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagTraceFile string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir   string
	configTraceFile string
)

var rootCmd = &cobra.Command{
	Use:     "pocket",
	Short:   "Pocket is a named-database shell over embedded SQLite",
	Version: pocket.Version,
	Long: `Pocket manages a set of SQLite database files addressed by logical
name. Reads return rows, writes return rows-changed counts, and
statements can be bracketed in transactions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configTraceFile = cfg.GetString(cfgKeyTraceFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.pocket-db)")
	rootCmd.PersistentFlags().StringVar(&flagTraceFile, "trace-file", "", "statement trace journal file (default: disabled)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(deleteCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > POCKET_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > POCKET_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveTraceFile returns the trace journal path, or "" when tracing is
// disabled: --trace-file flag > config.yaml trace_file > disabled.
func resolveTraceFile() string {
	if flagTraceFile != "" {
		return flagTraceFile
	}
	return configTraceFile
}
