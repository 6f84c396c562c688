package resize

import "errors"

// Sentinel errors for template resizing.
var (
	// ErrTooSmall indicates a target dimension below the structure's
	// minimum feasible size along that axis.
	ErrTooSmall = errors.New("resize: target dimension below structural minimum")
	// ErrDegenerateSegment indicates an internal invariant violation:
	// the resized grid lost a segment or an anchor. Its presence signals
	// a bug in the resizer, not bad input.
	ErrDegenerateSegment = errors.New("resize: resized template is not isomorphic to its source")
)
