// Package cycle builds a fixed-pattern Hamiltonian cycle over an even n×n grid:
// a closed, direction-labeled traversal that visits every cell exactly once
// and returns to its start.
//
// The cycle is assembled from reusable row patterns:
//
//   - Row bands:      two-row boustrophedon runs along the bottom (y=0,1) and,
//     mirrored, along the top (y=n-2,n-1).
//   - Slab template:  one 4-row band of interior tiling (rows 2–5) recorded as
//     an immutable list of (relative coordinate, direction) pairs.
//   - Slab replicas:  the template translated upward in steps of 4 rows.
//   - Remainder cap:  a 2-row sweep under the top band when the interior height
//     n-4 is not a multiple of the slab period.
//   - Left connector: 2×2 units on columns 0–1 that lead the path from the top
//     band back down to the bottom band.
//
// Layout for n=8 (arrows drawn from the cell they leave):
//
//	y=7  ↓ ← ↓ ← ↓ ← ↓ ←
//	y=6  ↓ ↑ ← ↑ ← ↑ ← ↑
//	y=5  → ↓ → → ↓ → ↓ ↑
//	y=4  ↓ ← ↑ ← → ↑ → ↑
//	y=3  → ↓ → ↑ ↓ ← ↓ ←
//	y=2  ↓ ← ↑ ← ← ↑ ← ↑
//	y=1  ↓ → ↓ → ↓ → ↓ ↑
//	y=0  → ↑ → ↑ → ↑ → ↑
//
// Guarantees:
//
//   - Determinism: the same n always yields the same step sequence.
//   - Every returned Cycle has passed Validate: n² steps, no repeated cell,
//     every cell in bounds, and each step points at the next one, the last
//     step pointing back at the first.
//   - Immutability: a Cycle never exposes its backing storage.
//
// Errors:
//
//   - ErrInvalidSize:    n is odd, smaller than MinSize, or larger than MaxSize.
//   - ErrBuildInvariant: the assembled sequence broke a cycle invariant. This
//     is a construction defect, never an input error, and is not retried.
//
// Complexity: Build is O(n²) time and allocates the step slice once.
package cycle
