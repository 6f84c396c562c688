package geometry

import "errors"

// Sentinel errors for geometry emission.
var (
	// ErrNoPaths indicates the grid contains no traceable structure.
	ErrNoPaths = errors.New("geometry: grid contains no traceable structure")
)
