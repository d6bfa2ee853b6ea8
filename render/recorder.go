package render

import (
	"sync"

	"github.com/katalvlaran/hamgrid/grid"
)

// Recorder is a Renderer that remembers every call.
type Recorder struct {
	mu     sync.Mutex
	clears int
	draws  []grid.Step
}

// Clear implements Renderer.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

// Draw implements Renderer.
func (r *Recorder) Draw(at grid.Coordinate, d grid.Direction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draws = append(r.draws, grid.Step{At: at, Dir: d})
}

// Clears returns how many times Clear was called.
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

// Draws returns a copy of the recorded draws in call order.
func (r *Recorder) Draws() []grid.Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]grid.Step, len(r.draws))
	copy(out, r.draws)
	return out
}
