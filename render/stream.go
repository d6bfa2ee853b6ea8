package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hamgrid/grid"
)

// Stream is a Renderer that writes one "x y D" line per arrow to w and a
// "clear" line on Clear. The first write error is kept and later calls become
// no-ops.
type Stream struct {
	w   io.Writer
	err error
}

// NewStream returns a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Clear implements Renderer.
func (s *Stream) Clear() {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, "clear\n")
}

// Draw implements Renderer.
func (s *Stream) Draw(at grid.Coordinate, d grid.Direction) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, "%d %d %c\n", at.X, at.Y, d.Letter())
}

// Err returns the first write error, if any.
func (s *Stream) Err() error {
	return s.err
}
