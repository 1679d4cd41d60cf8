package config

import "errors"

// Sentinel errors for the config package.
var (
	// ErrNoCoordinates indicates a YAML file declared zero prior entries.
	ErrNoCoordinates = errors.New("config: priors list must have at least one entry")

	// ErrUnknownPriorKind indicates a prior entry named a kind other than
	// "uniform" or "normal".
	ErrUnknownPriorKind = errors.New("config: unknown prior kind")

	// ErrUnknownReducer indicates a reducer name other than "feroz" or
	// "powerlaw".
	ErrUnknownReducer = errors.New("config: unknown reducer kind")
)

// FileError wraps a failure reading or parsing the YAML config file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return "config: " + e.Path + ": " + e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

func newFileError(path string, err error) error {
	return &FileError{Path: path, Err: err}
}
