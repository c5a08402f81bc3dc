package spinner

import "errors"

var (
	// ErrInvalidRow is returned when a spinner is bound to a row below 1.
	ErrInvalidRow = errors.New("row must be 1 or greater")
	// ErrInvalidInterval is returned for a non-positive frame interval.
	ErrInvalidInterval = errors.New("frame interval must be positive")
	// ErrNoGlyphs is returned when the glyph sequence is empty.
	ErrNoGlyphs = errors.New("glyph sequence must not be empty")
)
