package unusedcss

import "errors"

// Fatal conditions of a run. Returned errors wrap one of these, so callers
// can test with errors.Is.
var (
	// ErrInvalidDirectory means a root does not exist or is not a directory
	ErrInvalidDirectory = errors.New("invalid directory")
	// ErrNoStyleFiles means the style root holds no file with a style extension
	ErrNoStyleFiles = errors.New("no CSS files found")
	// ErrNoSourceFiles means the source root holds no file with a source extension
	ErrNoSourceFiles = errors.New("no source files found")
	// ErrConfigParse means a configuration file could not be read or decoded
	ErrConfigParse = errors.New("invalid config")
)
