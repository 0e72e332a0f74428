package types

// Config holds the parameters for constructing a Bridge.
type Config struct {
	// DataDir is the directory where database files are created when an
	// open names no explicit path.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// TraceFile, when non-empty, enables the statement trace journal and
	// names the SQLite file it is written to.
	TraceFile string `json:"trace_file" yaml:"trace_file"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
