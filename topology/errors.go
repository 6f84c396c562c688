package topology

import "errors"

// Sentinel errors for topology extraction.
var (
	// ErrNoStructure indicates the grid contains no wall cells.
	ErrNoStructure = errors.New("topology: template contains no structure")
	// ErrOpenOutline indicates the primary outline does not close.
	ErrOpenOutline = errors.New("topology: outline does not close back on its start")
	// ErrDegenerate indicates a non-polygonal structure (fewer than 3
	// anchors or fewer than 3 turns).
	ErrDegenerate = errors.New("topology: degenerate structure, need at least 3 corners")
)
