package cycle_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hamgrid/cycle"
	"github.com/katalvlaran/hamgrid/grid"
)

// square2 returns the valid 2×2 loop.
func square2() []grid.Step {
	return []grid.Step{
		{At: grid.At(0, 1), Dir: grid.South},
		{At: grid.At(0, 0), Dir: grid.East},
		{At: grid.At(1, 0), Dir: grid.North},
		{At: grid.At(1, 1), Dir: grid.West},
	}
}

// TestValidate_Violations verifies each invariant is reported with its kind.
func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name  string
		steps func() []grid.Step
		kind  cycle.InvariantKind
		index int
	}{
		{"Short", func() []grid.Step { return square2()[:3] }, cycle.KindLength, 3},
		{"OutOfBounds", func() []grid.Step {
			s := square2()
			s[2].At = grid.At(2, 0)
			return s
		}, cycle.KindBounds, 2},
		{"Duplicate", func() []grid.Step {
			s := square2()
			s[3].At = grid.At(0, 0)
			return s
		}, cycle.KindDuplicate, 3},
		{"OpenEnd", func() []grid.Step {
			// The bare bottom band: its last arrow climbs off the 2×2 board.
			s := square2()
			s[3].Dir = grid.North
			return s
		}, cycle.KindClosure, 3},
		{"Reversed", func() []grid.Step {
			s := square2()
			s[0].Dir = grid.East
			return s
		}, cycle.KindClosure, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cycle.Validate(tc.steps(), 2)
			if !errors.Is(err, cycle.ErrBuildInvariant) {
				t.Fatalf("Validate error = %v; want ErrBuildInvariant", err)
			}
			var ie *cycle.InvariantError
			if !errors.As(err, &ie) {
				t.Fatalf("Validate error %v is not an *InvariantError", err)
			}
			if ie.Kind != tc.kind || ie.Index != tc.index {
				t.Errorf("violation = %v at %d; want %v at %d", ie.Kind, ie.Index, tc.kind, tc.index)
			}
			if ie.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

// TestValidate_Accepts checks a valid loop and a rotation of it.
func TestValidate_Accepts(t *testing.T) {
	s := square2()
	if err := cycle.Validate(s, 2); err != nil {
		t.Fatalf("Validate(square) = %v; want nil", err)
	}
	rotated := append(s[2:], s[:2]...)
	if err := cycle.Validate(rotated, 2); err != nil {
		t.Fatalf("Validate(rotated) = %v; want nil", err)
	}
}

// TestValidate_BadSize reports the size problem before inspecting steps.
func TestValidate_BadSize(t *testing.T) {
	if err := cycle.Validate(square2(), 3); !errors.Is(err, cycle.ErrInvalidSize) {
		t.Fatalf("Validate(n=3) error = %v; want ErrInvalidSize", err)
	}
}

// TestInvariantKindString covers the stringer including unknown kinds.
func TestInvariantKindString(t *testing.T) {
	want := map[cycle.InvariantKind]string{
		cycle.KindLength:        "length",
		cycle.KindBounds:        "bounds",
		cycle.KindDuplicate:     "duplicate",
		cycle.KindClosure:       "closure",
		cycle.InvariantKind(42): "InvariantKind(42)",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("%d.String() = %q; want %q", int(k), k.String(), s)
		}
	}
}
