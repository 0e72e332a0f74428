// Package paths resolves configuration and data directory locations for
// the pocket bridge and CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".pocket"
	DefaultDataDirName   = ".pocket-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "POCKET_CONFIG_DIR"
	EnvDataDir   = "POCKET_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/pocket (fallback ~/.config/pocket)
// macOS:   ~/Library/Application Support/pocket
// Windows: %APPDATA%/pocket
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "pocket"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "pocket"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "pocket"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
// It is offered for embedding callers that want per-user storage;
// ResolveDataDir deliberately falls back to $(CWD)/.pocket-db instead,
// keeping ad-hoc CLI use self-contained.
//
// Linux:   $XDG_DATA_HOME/pocket (fallback ~/.local/share/pocket)
// macOS:   ~/Library/Application Support/pocket
// Windows: %APPDATA%/pocket
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "pocket"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "pocket"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "pocket"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > POCKET_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > POCKET_DATA_DIR env > $(CWD)/.pocket-db.
//
// The CWD-relative default keeps ad-hoc CLI use self-contained: database
// files land next to the project that created them.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
