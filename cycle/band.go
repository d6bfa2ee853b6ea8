// SPDX-License-Identifier: MIT
// Package: hamgrid/cycle
//
// band.go - two-row boustrophedon runs (bottom band, top band).
//
// Both bands are a sequence of 2×2 blocks. A rightward run visits each block
// as (x,y+1)S (x,y)E (x+1,y)N (x+1,y+1)E and leaves through its last block
// heading North. A leftward run visits (x,y)N (x,y+1)W (x-1,y+1)S (x-1,y)W
// and leaves through its last block with a caller-chosen direction.
//
// Complexity: O(width) steps per run, appended in place.

package cycle

import "github.com/katalvlaran/hamgrid/grid"

// appendRightwardRun appends 2×2 blocks on rows y0,y0+1 for x = fromX,
// fromX+2, …, n-2. The final block hands off North into row y0+2.
func appendRightwardRun(dst []grid.Step, n, y0, fromX int) []grid.Step {
	for x := fromX; x+1 < n; x += 2 {
		exit := grid.East
		if x == n-2 {
			exit = grid.North
		}
		dst = append(dst,
			grid.Step{At: grid.At(x, y0+1), Dir: grid.South},
			grid.Step{At: grid.At(x, y0), Dir: grid.East},
			grid.Step{At: grid.At(x+1, y0), Dir: grid.North},
			grid.Step{At: grid.At(x+1, y0+1), Dir: exit},
		)
	}

	return dst
}

// appendLeftwardRun appends 2×2 blocks on rows y0,y0+1 for x = fromX,
// fromX-2, … while x > stopX. Every block but the last continues West;
// the last one leaves towards exit.
func appendLeftwardRun(dst []grid.Step, y0, fromX, stopX int, exit grid.Direction) []grid.Step {
	for x := fromX; x > stopX; x -= 2 {
		last := grid.West
		if x-2 <= stopX {
			last = exit
		}
		dst = append(dst,
			grid.Step{At: grid.At(x, y0), Dir: grid.North},
			grid.Step{At: grid.At(x, y0+1), Dir: grid.West},
			grid.Step{At: grid.At(x-1, y0+1), Dir: grid.South},
			grid.Step{At: grid.At(x-1, y0), Dir: last},
		)
	}

	return dst
}

// appendBottomBand emits rows 0–1 left to right, starting at (0,1) and
// leaving (n-1,1) heading North.
func appendBottomBand(dst []grid.Step, n int) []grid.Step {
	return appendRightwardRun(dst, n, 0, 0)
}

// appendTopBand emits rows n-2, n-1 right to left, starting at (n-1,n-2) and
// leaving (0,n-2) heading South into the left connector.
func appendTopBand(dst []grid.Step, n int) []grid.Step {
	return appendLeftwardRun(dst, n-bandRows, n-1, 0, grid.South)
}
