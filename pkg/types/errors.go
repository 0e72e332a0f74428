package types

import "errors"

// Sentinel errors returned by the registry and executor.
var (
	// ErrDatabaseNotOpen is returned when an operation names a database
	// that is not currently registered. Callers can use it to tell
	// "no such database" apart from "query matched zero rows".
	ErrDatabaseNotOpen = errors.New("database not open")

	// ErrUnsupportedParameter is returned by FromAny for a dynamic value
	// outside the null/number/text/boolean variant. Parameters are never
	// silently left unbound.
	ErrUnsupportedParameter = errors.New("unsupported parameter type")

	// ErrBridgeClosed is returned by operations on a bridge after Close.
	ErrBridgeClosed = errors.New("bridge closed")

	// ErrDataDirEmpty is returned by Config.Validate when no data
	// directory is configured.
	ErrDataDirEmpty = errors.New("data dir must not be empty")
)
