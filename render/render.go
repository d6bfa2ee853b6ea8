package render

import (
	"context"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/hamgrid/grid"
)

// Renderer is a drawing surface for direction arrows.
type Renderer interface {
	// Clear resets the surface.
	Clear()
	// Draw renders one arrow at the coordinate pointing in the direction.
	Draw(at grid.Coordinate, d grid.Direction)
}

// Sequence is an ordered list of steps, such as *cycle.Cycle.
type Sequence interface {
	Len() int
	All() iter.Seq2[int, grid.Step]
}

// Option customizes Play.
type Option func(*playConfig)

type playConfig struct {
	delay  time.Duration
	logger *zap.Logger
}

// WithDelay pauses for d between consecutive steps. Zero disables pacing.
// Panics on a negative duration.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic("render: WithDelay(negative)")
	}
	return func(c *playConfig) {
		c.delay = d
	}
}

// WithLogger attaches a logger for playback progress. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("render: WithLogger(nil)")
	}
	return func(c *playConfig) {
		c.logger = l
	}
}

// Play clears r and draws every step of seq in order, pausing between steps
// when WithDelay is set. It returns the number of steps drawn.
//
// Cancelling ctx stops playback before the next step; Play then returns the
// count so far together with ctx.Err(). The delay follows a step, never the
// last one, so an unpaced run and a paced run draw the same arrows.
func Play(ctx context.Context, r Renderer, seq Sequence, opts ...Option) (int, error) {
	if r == nil {
		return 0, ErrNilRenderer
	}
	if seq == nil {
		return 0, ErrNilSequence
	}
	cfg := playConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	total := seq.Len()
	cfg.logger.Debug("playback started", zap.Int("steps", total), zap.Duration("delay", cfg.delay))
	r.Clear()

	var timer *time.Timer
	if cfg.delay > 0 {
		timer = time.NewTimer(cfg.delay)
		timer.Stop()
		defer timer.Stop()
	}

	drawn := 0
	for i, s := range seq.All() {
		if err := ctx.Err(); err != nil {
			cfg.logger.Debug("playback cancelled", zap.Int("drawn", drawn), zap.Error(err))
			return drawn, err
		}
		r.Draw(s.At, s.Dir)
		drawn++

		if timer == nil || i == total-1 {
			continue
		}
		timer.Reset(cfg.delay)
		select {
		case <-ctx.Done():
			cfg.logger.Debug("playback cancelled", zap.Int("drawn", drawn), zap.Error(ctx.Err()))
			return drawn, ctx.Err()
		case <-timer.C:
		}
	}

	cfg.logger.Debug("playback finished", zap.Int("drawn", drawn))
	return drawn, nil
}
