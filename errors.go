package shape

import "errors"

// Sentinel errors for the shape package.
var (
	// ErrInvalidColor is returned when a colour string cannot be parsed.
	ErrInvalidColor = errors.New("shape: invalid color")

	// ErrUnknownShape is returned when no shape is registered for a type tag.
	ErrUnknownShape = errors.New("shape: unknown shape type")

	// ErrInvalidFont is returned when a CSS font string cannot be parsed.
	ErrInvalidFont = errors.New("shape: invalid font")

	// ErrUnknownFamily is returned when a font family has no registered source
	// and no generic fallback applies.
	ErrUnknownFamily = errors.New("shape: unknown font family")
)
