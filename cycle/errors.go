// SPDX-License-Identifier: MIT
// Package: hamgrid/cycle
//
// errors.go - sentinel errors and the structured invariant violation.
//
// Error policy:
//   • Only sentinel variables are matched by callers, always with errors.Is.
//   • Context is attached with %w and a method token (MethodBuild, MethodValidate).
//   • InvariantError carries the offending index/step and unwraps to
//     ErrBuildInvariant; use errors.As when the detail matters.
//   • Nothing in this package panics on user input.

package cycle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hamgrid/grid"
)

// ErrInvalidSize indicates that the requested grid size is odd, below MinSize
// or above MaxSize. It is detected before any construction work starts.
// Usage: if errors.Is(err, ErrInvalidSize) { /* report invalid size */ }.
var ErrInvalidSize = errors.New("cycle: invalid grid size")

// ErrBuildInvariant indicates that an assembled step sequence is not a
// Hamiltonian cycle of its grid. For Build this is a defect in the
// construction itself; retrying cannot change the deterministic outcome.
// Usage: if errors.Is(err, ErrBuildInvariant) { /* report defect */ }.
var ErrBuildInvariant = errors.New("cycle: build invariant violated")

// InvariantKind names the cycle invariant that a sequence failed.
type InvariantKind int

const (
	// KindLength: the sequence does not hold exactly n² steps.
	KindLength InvariantKind = iota
	// KindBounds: a step lies outside the n×n board.
	KindBounds
	// KindDuplicate: a cell appears more than once.
	KindDuplicate
	// KindClosure: a step does not point at its successor (wrapping at the end).
	KindClosure
)

// String implements fmt.Stringer.
func (k InvariantKind) String() string {
	switch k {
	case KindLength:
		return "length"
	case KindBounds:
		return "bounds"
	case KindDuplicate:
		return "duplicate"
	case KindClosure:
		return "closure"
	default:
		return fmt.Sprintf("InvariantKind(%d)", int(k))
	}
}

// InvariantError reports the first invariant violation found in a sequence.
type InvariantError struct {
	Kind  InvariantKind
	Size  int       // grid size n
	Index int       // offending step index; for KindLength the actual length
	Step  grid.Step // offending step (zero for KindLength)
	Want  grid.Coordinate
}

// Error implements error.
func (e *InvariantError) Error() string {
	switch e.Kind {
	case KindLength:
		return fmt.Sprintf("%s invariant: n=%d: got %d steps, want %d", e.Kind, e.Size, e.Index, e.Size*e.Size)
	case KindClosure:
		return fmt.Sprintf("%s invariant: n=%d: step %d %v points at %v, want %v",
			e.Kind, e.Size, e.Index, e.Step, e.Step.Next(), e.Want)
	default:
		return fmt.Sprintf("%s invariant: n=%d: step %d %v", e.Kind, e.Size, e.Index, e.Step)
	}
}

// Unwrap lets errors.Is(err, ErrBuildInvariant) match.
func (e *InvariantError) Unwrap() error {
	return ErrBuildInvariant
}
