// SPDX-License-Identifier: MIT
// Package: hamgrid/cycle
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors panic on meaningless inputs (nil logger); Build
//     itself never panics.
//   • Options never change the produced sequence, only its observation.

package cycle

import "go.uber.org/zap"

// Option customizes Build by mutating a buildConfig before assembly begins.
type Option func(*buildConfig)

// buildConfig aggregates all knobs used by Build. Passed by value.
type buildConfig struct {
	// logger receives one debug entry per stage; zap.NewNop() by default.
	logger *zap.Logger
}

// WithLogger attaches a logger that traces each assembled stage at debug level.
// Panics on nil to surface programmer error early.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("cycle: WithLogger(nil)")
	}
	return func(c *buildConfig) {
		c.logger = l
	}
}

// newBuildConfig applies opts in order over deterministic defaults.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
