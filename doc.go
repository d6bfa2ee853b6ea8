// Package hamgrid draws closed, arrow-labeled tours that visit every cell of
// an even n×n grid exactly once: a fixed-pattern Hamiltonian cycle.
//
// What is in the box?
//
//	grid/           - Coordinate, Direction (N/E/S/W), Step
//	cycle/          - the constructive tiling: row bands, slab template and
//	                  replicas, remainder cap, left connector, Validate
//	render/         - Renderer contract, paced/cancellable Play, TextCanvas,
//	                  Recorder, Stream
//	render/animate/ - bubbletea player for terminals
//	config/         - YAML settings with HAMGRID_* overrides
//	cmd/hamgrid/    - the CLI
//
// Quick ASCII example (n=4, arrows drawn from the cell they leave):
//
//	↓ ← ↓ ←
//	↓ ↑ ← ↑
//	↓ → ↓ ↑
//	→ ↑ → ↑
//
// Every even n ≥ 2 is supported; odd sizes have no Hamiltonian cycle on a
// grid at all.
//
//	go install github.com/katalvlaran/hamgrid/cmd/hamgrid@latest
package hamgrid
