// Package cycle - validation of sizes and of Hamiltonian-cycle invariants.
//
// Validate mirrors the tour checks used for closed tours elsewhere: length,
// bijection onto the board and closure. It is public so that renderers and
// tests can check any step sequence, not only the ones Build produces.
package cycle

import (
	"fmt"

	"github.com/katalvlaran/hamgrid/grid"
)

// ValidateSize checks that n is an even integer in [MinSize, MaxSize].
// Returns an error wrapping ErrInvalidSize otherwise.
// Complexity: O(1).
func ValidateSize(n int) error {
	if n < MinSize || n%2 != 0 {
		return fmt.Errorf("%s: n=%d: %w", MethodBuild, n, ErrInvalidSize)
	}
	if n > MaxSize {
		return fmt.Errorf("%s: n=%d > max=%d: %w", MethodBuild, n, MaxSize, ErrInvalidSize)
	}

	return nil
}

// Validate reports whether steps form a Hamiltonian cycle of the n×n board:
//   - len(steps) == n²;
//   - every coordinate is in bounds and appears once;
//   - steps[i].Next() == steps[(i+1)%len].At for every i, including the wrap.
//
// The first violation is returned as *InvariantError (which matches
// ErrBuildInvariant), wrapped with MethodValidate context.
//
// Complexity: O(n²) time, O(n²) bits of extra space.
func Validate(steps []grid.Step, n int) error {
	if err := ValidateSize(n); err != nil {
		return err
	}
	total := n * n
	if len(steps) != total {
		return validateErr(&InvariantError{Kind: KindLength, Size: n, Index: len(steps)})
	}

	seen := make([]bool, total)
	for i, s := range steps {
		if !s.At.InBounds(n) {
			return validateErr(&InvariantError{Kind: KindBounds, Size: n, Index: i, Step: s})
		}
		idx := s.At.Index(n)
		if seen[idx] {
			return validateErr(&InvariantError{Kind: KindDuplicate, Size: n, Index: i, Step: s})
		}
		seen[idx] = true
	}

	for i, s := range steps {
		want := steps[(i+1)%total].At
		if s.Next() != want {
			return validateErr(&InvariantError{Kind: KindClosure, Size: n, Index: i, Step: s, Want: want})
		}
	}

	return nil
}

func validateErr(e *InvariantError) error {
	return fmt.Errorf("%s: %w", MethodValidate, e)
}
