package headmap

import (
	"errors"
	"fmt"
)

// Load errors. All of them abort the load; no partial cloud is produced.
var (
	// ErrFieldCount indicates a row with the wrong number of fields.
	ErrFieldCount = errors.New("headmap: wrong number of fields")

	// ErrParseValue indicates a field that is not a floating-point number.
	ErrParseValue = errors.New("headmap: field is not a number")

	// ErrSeriesLength indicates data rows with differing numbers of timesteps.
	ErrSeriesLength = errors.New("headmap: series length differs between rows")

	// ErrLineCountMismatch indicates shape and data files of different lengths.
	ErrLineCountMismatch = errors.New("headmap: shape and data line counts differ")

	// ErrEmptyData indicates there are no scalar values to normalize against.
	ErrEmptyData = errors.New("headmap: no scalar values loaded")
)

// LoadError wraps an error with the input location that caused it.
type LoadError struct {
	Path    string
	Line    int
	Wrapped error
}

func (e *LoadError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Wrapped)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Wrapped)
	}
	return e.Wrapped.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}

func withPath(err error, path string) error {
	var le *LoadError
	if errors.As(err, &le) && le.Path == "" {
		le.Path = path
		return le
	}
	return &LoadError{Path: path, Wrapped: err}
}
