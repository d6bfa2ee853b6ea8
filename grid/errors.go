package grid

import "errors"

var (
	// ErrUnknownDirection indicates a token or numeric value that names none of
	// the four compass directions.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)
