// SPDX-License-Identifier: MIT
// Package: hamgrid/cycle
//
// slab.go - the 4-row interior band as an immutable, translatable template.
//
// Contract:
//   • A Template covers rows 2–5 and columns 2..n-1 of an n×n board (n ≥ 8).
//   • It enters at (n-1,2) from below and leaves (n-1,5) heading North, so
//     copies stacked every 4 rows chain into one path.
//   • Instantiate/appendTo always write into caller-owned storage; the
//     template's own slice is never shared.

package cycle

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/hamgrid/grid"
)

// Template is an immutable list of (relative coordinate, direction) pairs.
// Coordinates are relative to the template origin (0,2).
type Template struct {
	origin grid.Coordinate
	cells  []grid.Step
}

// SlabTemplate returns the interior slab template for an n×n board.
// It returns ErrInvalidSize when n is not a valid size or too small for a
// slab to fit below the top band (n < 8).
func SlabTemplate(n int) (Template, error) {
	if err := ValidateSize(n); err != nil {
		return Template{}, err
	}
	if slabCount(n) == 0 {
		return Template{}, fmt.Errorf("%s: n=%d: no slab fits below the top band: %w", MethodSlabTemplate, n, ErrInvalidSize)
	}

	return newSlabTemplate(n), nil
}

// newSlabTemplate builds the slab in four parts:
//  1. leftward run on rows 2–3 from x=n-1 down to x=5;
//  2. turnaround unit on rows 2–3, columns 2–3, stepping up a row;
//  3. turnaround unit on rows 4–5, columns 2–3;
//  4. rightward run on rows 4–5 from x=4 up to n-1.
func newSlabTemplate(n int) Template {
	y0 := slabOriginY
	// Parts 1 and 4 cover (n-4) columns on two rows each, parts 2 and 3 a block each.
	abs := make([]grid.Step, 0, slabCells(n))

	abs = appendLeftwardRun(abs, y0, n-1, slabRunStartX, grid.West)
	abs = append(abs,
		grid.Step{At: grid.At(turnaroundX+1, y0), Dir: grid.West},
		grid.Step{At: grid.At(turnaroundX, y0), Dir: grid.North},
		grid.Step{At: grid.At(turnaroundX, y0+1), Dir: grid.East},
		grid.Step{At: grid.At(turnaroundX+1, y0+1), Dir: grid.North},

		grid.Step{At: grid.At(turnaroundX+1, y0+2), Dir: grid.West},
		grid.Step{At: grid.At(turnaroundX, y0+2), Dir: grid.North},
		grid.Step{At: grid.At(turnaroundX, y0+3), Dir: grid.East},
		grid.Step{At: grid.At(turnaroundX+1, y0+3), Dir: grid.East},
	)
	abs = appendRightwardRun(abs, n, y0+bandRows, slabRunStartX)

	origin := grid.At(0, y0)
	for i := range abs {
		abs[i].At = abs[i].At.Translate(-origin.X, -origin.Y)
	}

	return Template{origin: origin, cells: abs}
}

// slabCells is the number of cells one slab covers on an n×n board.
func slabCells(n int) int {
	return slabPeriod * (n - turnaroundX)
}

// Len returns the number of steps in the template.
func (t Template) Len() int {
	return len(t.cells)
}

// Origin returns the absolute coordinate that relative (0,0) maps to.
func (t Template) Origin() grid.Coordinate {
	return t.origin
}

// At returns the i-th relative step. i must be in [0, Len()).
func (t Template) At(i int) grid.Step {
	return t.cells[i]
}

// All iterates the relative steps in order.
func (t Template) All() iter.Seq2[int, grid.Step] {
	return func(yield func(int, grid.Step) bool) {
		for i, s := range t.cells {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Instantiate returns a fresh slice holding the template translated to its
// origin and shifted up by dy rows. Directions are unchanged.
func (t Template) Instantiate(dy int) []grid.Step {
	return t.appendTo(make([]grid.Step, 0, len(t.cells)), dy)
}

// appendTo writes the translated template into dst.
func (t Template) appendTo(dst []grid.Step, dy int) []grid.Step {
	dx, oy := t.origin.X, t.origin.Y+dy
	for _, s := range t.cells {
		dst = append(dst, grid.Step{At: s.At.Translate(dx, oy), Dir: s.Dir})
	}

	return dst
}

// slabCount returns how many whole slabs fit between the bottom band and the
// top band, leaving room for the remainder cap when the interior height is
// not a multiple of slabPeriod.
func slabCount(n int) int {
	interior := n - interiorMargin
	if interior < slabPeriod {
		return 0
	}

	return interior / slabPeriod
}

// appendSlabs appends count instances of t at vertical offsets 0, 4, 8, ….
// Returns the extended slice and the start index of each instance.
func appendSlabs(dst []grid.Step, t Template, count int) ([]grid.Step, []int) {
	starts := make([]int, 0, count)
	for k := 0; k < count; k++ {
		starts = append(starts, len(dst))
		dst = t.appendTo(dst, k*slabPeriod)
	}

	return dst, starts
}
