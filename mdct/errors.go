package mdct

import "errors"

var (
	// ErrNullInput is returned when a required input is missing.
	ErrNullInput = errors.New("mdct: null input")

	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or when a coefficient array does not match the tile geometry.
	ErrInvalidDimensions = errors.New("mdct: invalid dimensions")

	// ErrAllocationFailed is returned when the configured allocator refused
	// memory for a scratch buffer or output array.
	ErrAllocationFailed = errors.New("mdct: allocation failed")

	// ErrInvalidTransform is returned when the transform choice is outside
	// the enumerated set.
	ErrInvalidTransform = errors.New("mdct: invalid transform choice")
)

// ErrorString returns a short human-readable description for a codec error.
// A nil error yields "Success".
func ErrorString(err error) string {
	switch {
	case err == nil:
		return "Success"
	case errors.Is(err, ErrNullInput):
		return "Null input"
	case errors.Is(err, ErrInvalidDimensions):
		return "Invalid dimensions"
	case errors.Is(err, ErrAllocationFailed):
		return "Allocation failed"
	case errors.Is(err, ErrInvalidTransform):
		return "Invalid transform choice"
	default:
		return err.Error()
	}
}
