package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrUnknownTemplate indicates no entry with the requested name.
	ErrUnknownTemplate = errors.New("catalog: unknown template name")
	// ErrDuplicateTemplate indicates two entries sharing one name.
	ErrDuplicateTemplate = errors.New("catalog: duplicate template name")
	// ErrInvalidEntry indicates an entry without a name or with a grid
	// that does not parse.
	ErrInvalidEntry = errors.New("catalog: invalid template entry")
)
