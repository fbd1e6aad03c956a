package graphic

import "errors"

// Error taxonomy. Failures are reported by wrapping one of these sentinels,
// so callers can classify with errors.Is while still seeing the detail.
var (
	// ErrFontFamilyNotFound reports a font family name absent from the
	// registered font backend (or a zero Font value).
	ErrFontFamilyNotFound = errors.New("graphic: font family not found")

	// ErrInvalidArgument reports a malformed constructor argument, such as a
	// non-positive size or a vertex list with too few points.
	ErrInvalidArgument = errors.New("graphic: invalid argument")

	// ErrInvalidGeometry reports a rectangle that violates the
	// x2 > x1 && y2 > y1 invariant. Not constructible through the public
	// algebra; checked defensively at boundary entry points.
	ErrInvalidGeometry = errors.New("graphic: invalid geometry")

	// ErrIO reports a file write or encode failure during export.
	ErrIO = errors.New("graphic: i/o failure")
)
