package template

import "errors"

// Sentinel errors for template parsing.
var (
	// ErrEmptyTemplate indicates the input has no non-blank lines.
	ErrEmptyTemplate = errors.New("template: input must contain at least one non-blank line")
	// ErrNonRectangular indicates rows of differing lengths in Strict mode.
	ErrNonRectangular = errors.New("template: all rows must have the same length")
	// ErrUnknownRune indicates a rune outside the template character set.
	ErrUnknownRune = errors.New("template: unrecognized rune")
)
