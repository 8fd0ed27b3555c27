package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadFailed indicates the catalog source could not be fetched or parsed as a whole.
	ErrLoadFailed = errors.New("catalog load failed")

	// ErrNoHeader is returned when the source has no header row.
	ErrNoHeader = errors.New("missing header row")

	// ErrUnsupportedSource is returned for sources that are neither a path nor an http(s) URL.
	ErrUnsupportedSource = errors.New("unsupported catalog source")

	// ErrStoreRequired is returned when a watcher is created without a store.
	ErrStoreRequired = errors.New("catalog store required")
)

// LoadError describes a failed catalog load.
// It matches ErrLoadFailed with errors.Is and unwraps to the underlying cause.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrLoadFailed, e.Source, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoadFailed, e.Err}
}
