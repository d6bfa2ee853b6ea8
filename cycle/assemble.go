// SPDX-License-Identifier: MIT
// Package: hamgrid/cycle
//
// assemble.go - Build: concatenates the stages and validates the result.
//
// Contract:
//   • n must be even and in [MinSize, MaxSize] (else ErrInvalidSize).
//   • Stage order is fixed: bottom band → slabs → remainder cap → top band →
//     left connector.
//   • The step slice is allocated once with capacity n².
//   • The result is validated before it is returned; a violation is reported
//     as ErrBuildInvariant and no Cycle is returned.
//
// Complexity:
//   • Time: O(n²).
//   • Space: O(n²) for the steps plus O(n) for the slab template.
//
// Determinism:
//   • No randomness, no global state; same n ⇒ identical Cycle.

package cycle

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/hamgrid/grid"
)

// Stage is the half-open span [Start, End) of steps produced by one stage.
type Stage struct {
	Name       StageName
	Start, End int
}

// Len returns the number of steps in the stage.
func (s Stage) Len() int {
	return s.End - s.Start
}

// Cycle is an assembled, validated Hamiltonian cycle over an n×n board.
// It is immutable; accessors return copies.
type Cycle struct {
	n      int
	steps  []grid.Step
	stages []Stage
}

// Build assembles the fixed-pattern Hamiltonian cycle for an n×n board.
// Any validation failure is returned immediately; no partial Cycle escapes.
func Build(n int, opts ...Option) (*Cycle, error) {
	if err := ValidateSize(n); err != nil {
		return nil, err
	}
	cfg := newBuildConfig(opts...)
	log := cfg.logger.With(zap.Int("n", n))

	a := assembler{steps: make([]grid.Step, 0, n*n)}

	a.stage(StageBottomBand, func(dst []grid.Step) []grid.Step {
		return appendBottomBand(dst, n)
	})

	if n == MinSize {
		// The bottom band already covers the whole 2×2 board; turn its last
		// arrow back West to close the loop instead of climbing to row 2.
		a.steps[len(a.steps)-1].Dir = grid.West
	} else {
		if count := slabCount(n); count > 0 {
			tpl := newSlabTemplate(n)
			var starts []int
			a.steps, starts = appendSlabs(a.steps, tpl, count)
			for _, start := range starts {
				a.stages = append(a.stages, Stage{Name: StageSlab, Start: start, End: start + tpl.Len()})
			}
			log.Debug("slabs placed", zap.Int("count", count), zap.Int("template_len", tpl.Len()))
		}
		if needsRemainderCap(n) {
			a.stage(StageRemainderCap, func(dst []grid.Step) []grid.Step {
				return appendRemainderCap(dst, n)
			})
		}
		a.stage(StageTopBand, func(dst []grid.Step) []grid.Step {
			return appendTopBand(dst, n)
		})
		a.stage(StageLeftConnector, func(dst []grid.Step) []grid.Step {
			return appendLeftConnector(dst, n)
		})
	}

	for _, st := range a.stages {
		log.Debug("stage assembled",
			zap.String("stage", string(st.Name)),
			zap.Int("start", st.Start),
			zap.Int("len", st.Len()))
	}

	if err := Validate(a.steps, n); err != nil {
		log.Error("assembled sequence is not a Hamiltonian cycle", zap.Error(err))
		return nil, fmt.Errorf("%s: n=%d: %w", MethodBuild, n, err)
	}

	return &Cycle{n: n, steps: a.steps, stages: a.stages}, nil
}

// New is an alias for Build.
func New(n int, opts ...Option) (*Cycle, error) {
	return Build(n, opts...)
}

// assembler accumulates steps and the stage spans that produced them.
type assembler struct {
	steps  []grid.Step
	stages []Stage
}

// stage runs fn on the step slice and records the span it appended.
// Empty stages are not recorded.
func (a *assembler) stage(name StageName, fn func([]grid.Step) []grid.Step) {
	start := len(a.steps)
	a.steps = fn(a.steps)
	if end := len(a.steps); end > start {
		a.stages = append(a.stages, Stage{Name: name, Start: start, End: end})
	}
}

// Size returns the board size n.
func (c *Cycle) Size() int {
	return c.n
}

// Len returns the number of steps, always Size()².
func (c *Cycle) Len() int {
	return len(c.steps)
}

// Step returns the i-th step. i must be in [0, Len()).
func (c *Cycle) Step(i int) grid.Step {
	return c.steps[i]
}

// Steps returns a copy of all steps in cycle order.
func (c *Cycle) Steps() []grid.Step {
	out := make([]grid.Step, len(c.steps))
	copy(out, c.steps)

	return out
}

// Nodes returns the visited coordinates in cycle order.
func (c *Cycle) Nodes() []grid.Coordinate {
	out := make([]grid.Coordinate, len(c.steps))
	for i, s := range c.steps {
		out[i] = s.At
	}

	return out
}

// Directions returns the moves as one-letter tokens, e.g. "SENW" for n=2.
func (c *Cycle) Directions() string {
	var b strings.Builder
	b.Grow(len(c.steps))
	for _, s := range c.steps {
		b.WriteByte(s.Dir.Letter())
	}

	return b.String()
}

// All iterates over (index, step) pairs in cycle order.
func (c *Cycle) All() iter.Seq2[int, grid.Step] {
	return func(yield func(int, grid.Step) bool) {
		for i, s := range c.steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Stages returns the spans of the stages that produced the cycle, in order.
func (c *Cycle) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)

	return out
}

// Grid returns the direction drawn on every cell, indexed [y][x].
func (c *Cycle) Grid() [][]grid.Direction {
	out := make([][]grid.Direction, c.n)
	for y := range out {
		out[y] = make([]grid.Direction, c.n)
	}
	for _, s := range c.steps {
		out[s.At.Y][s.At.X] = s.Dir
	}

	return out
}

// String returns a compact debug form: "Cycle(n=4, 16 steps)".
func (c *Cycle) String() string {
	return fmt.Sprintf("Cycle(n=%d, %d steps)", c.n, len(c.steps))
}
