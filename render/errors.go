package render

import "errors"

var (
	// ErrNilRenderer indicates Play was called without a drawing surface.
	ErrNilRenderer = errors.New("render: renderer is nil")
	// ErrNilSequence indicates Play was called without steps to draw.
	ErrNilSequence = errors.New("render: sequence is nil")
)
