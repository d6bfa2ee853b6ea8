// SPDX-License-Identifier: MIT
// Package: hamgrid/cycle
//
// connector.go - the left-column connector.

package cycle

import "github.com/katalvlaran/hamgrid/grid"

// appendLeftConnector walks columns 0–1 of the interior rows downward in 2×2
// units: (0,y)E (1,y)S (1,y-1)W (0,y-1)S for y = n-3, n-5, …, 3.
// It picks up the path at (0,n-3) below the top band's exit and hands it to
// (0,1), the first step of the bottom band. For n ≤ 4 it emits nothing.
func appendLeftConnector(dst []grid.Step, n int) []grid.Step {
	for y := n - 3; y >= connectorStopY; y -= 2 {
		dst = append(dst,
			grid.Step{At: grid.At(0, y), Dir: grid.East},
			grid.Step{At: grid.At(1, y), Dir: grid.South},
			grid.Step{At: grid.At(1, y-1), Dir: grid.West},
			grid.Step{At: grid.At(0, y-1), Dir: grid.South},
		)
	}

	return dst
}
