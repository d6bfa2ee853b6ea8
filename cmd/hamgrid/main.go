// Command hamgrid prints or animates the fixed-pattern Hamiltonian cycle of an
// even n×n grid.
//
// Usage:
//
//	hamgrid [n] [--mode text|animate|stream|none] [--delay 50ms] [--config hamgrid.yaml]
//	hamgrid validate --from 2 --to 200
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hamgrid/config"
	"github.com/katalvlaran/hamgrid/cycle"
	"github.com/katalvlaran/hamgrid/render"
	"github.com/katalvlaran/hamgrid/render/animate"
)

// invalidSizeMessage is printed verbatim for odd or too small sizes.
const invalidSizeMessage = "n must be an even integer >= 2"

// cli holds the flag values and the state resolved before a command runs.
type cli struct {
	configPath string
	size       int
	delay      time.Duration
	mode       string
	noColor    bool
	hold       bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "hamgrid [n]",
		Short: "Draw a Hamiltonian cycle over an even n×n grid",
		Long: `hamgrid builds a closed path that visits every cell of an n×n grid
exactly once (n even, n >= 2) and draws it as arrows.

The size comes from the first argument, --size, the config file or
HAMGRID_SIZE, in that order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runDraw,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "hamgrid.yaml", "path to the YAML config file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.Flags().IntVarP(&c.size, "size", "n", 0, "grid size (even, >= 2)")
	root.Flags().DurationVarP(&c.delay, "delay", "d", 0, "pause between arrows when animating or streaming")
	root.Flags().StringVarP(&c.mode, "mode", "m", "", "render mode: text, animate, stream, none")
	root.Flags().BoolVar(&c.noColor, "no-color", false, "disable colors in text mode")
	root.Flags().BoolVar(&c.hold, "hold", false, "keep the animation open when it finishes")

	root.AddCommand(newValidateCmd(c))

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = c.size
	}
	if flags.Changed("delay") {
		cfg.Render.Delay = c.delay.String()
	}
	if flags.Changed("mode") {
		cfg.Render.Mode = c.mode
	}
	if flags.Changed("no-color") {
		cfg.Render.Color = !c.noColor
	}
	if flags.Changed("hold") {
		cfg.Render.Hold = c.hold
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	if c.logger == nil {
		logger, err := newLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		c.logger = logger
	}

	return nil
}

// runDraw builds the cycle for the requested size and runs the renderer pass.
func (c *cli) runDraw(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	n := c.cfg.Size
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("size %q is not an integer", args[0])
		}
		n = v
	}
	if n%2 != 0 || n < cycle.MinSize {
		fmt.Fprintln(out, invalidSizeMessage)
		return nil
	}

	log := c.logger.With(zap.Int("n", n))
	cyc, err := cycle.Build(n, cycle.WithLogger(log))
	if err != nil {
		log.Error("build failed", zap.Error(err))
		return err
	}
	fmt.Fprintf(out, "%d nodes; %d moves\n", len(cyc.Nodes()), len(cyc.Directions()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	delay := c.cfg.GetDelay()

	switch c.cfg.Render.Mode {
	case config.ModeText:
		var opts []render.CanvasOption
		if c.cfg.Render.Color {
			opts = append(opts, render.WithColor())
		}
		canvas := render.NewTextCanvas(n, opts...)
		if _, err := render.Play(ctx, canvas, cyc, render.WithLogger(log)); err != nil {
			return err
		}
		if c.cfg.Render.Color {
			fmt.Fprintln(out, canvas.Frame(fmt.Sprintf("n=%d", n)))
		} else {
			fmt.Fprintln(out, canvas.String())
		}

	case config.ModeStream:
		s := render.NewStream(out)
		if _, err := render.Play(ctx, s, cyc, render.WithDelay(delay), render.WithLogger(log)); err != nil {
			return err
		}
		if err := s.Err(); err != nil {
			return fmt.Errorf("stream: %w", err)
		}

	case config.ModeAnimate:
		opts := []animate.Option{animate.WithDelay(delay)}
		if c.cfg.Render.Hold {
			opts = append(opts, animate.WithHold())
		}
		if c.cfg.Render.Color {
			opts = append(opts, animate.WithCanvasOptions(render.WithColor()))
		}
		m, err := animate.Run(ctx, cyc, n, cmd.InOrStdin(), out, opts...)
		if err != nil {
			return err
		}
		drawn, total := m.Progress()
		log.Debug("animation ended", zap.Int("drawn", drawn), zap.Int("total", total), zap.Bool("quit", m.Quit()))

	case config.ModeNone:
	}

	return nil
}
