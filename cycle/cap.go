// SPDX-License-Identifier: MIT
// Package: hamgrid/cycle
//
// cap.go - the 2-row remainder cap.
//
// When the interior height n-4 is not a multiple of the slab period the last
// two interior rows (n-4, n-3) are left over. The cap sweeps them as a U:
// row n-4 right to left, row n-3 left to right, columns 2..n-1, entering at
// (n-1,n-4) and leaving (n-1,n-3) heading North into the top band.

package cycle

import "github.com/katalvlaran/hamgrid/grid"

// needsRemainderCap reports whether the interior height leaves two rows that
// no slab covers. n=2 has no interior at all and never takes a cap.
func needsRemainderCap(n int) bool {
	interior := n - interiorMargin
	return interior > 0 && interior%slabPeriod != 0
}

// appendRemainderCap appends the cap rows. Each row holds n-2 cells.
func appendRemainderCap(dst []grid.Step, n int) []grid.Step {
	lower := n - interiorMargin
	for x := n - 1; x >= turnaroundX; x-- {
		d := grid.West
		if x == turnaroundX {
			d = grid.North
		}
		dst = append(dst, grid.Step{At: grid.At(x, lower), Dir: d})
	}

	upper := lower + 1
	for x := turnaroundX; x < n; x++ {
		d := grid.East
		if x == n-1 {
			d = grid.North
		}
		dst = append(dst, grid.Step{At: grid.At(x, upper), Dir: d})
	}

	return dst
}
