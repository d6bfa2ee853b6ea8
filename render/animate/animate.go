// Package animate plays a traversal on a terminal, one arrow per tick, using
// bubbletea for the event loop and lipgloss for the board.
package animate

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hamgrid/grid"
	"github.com/katalvlaran/hamgrid/render"
)

// DefaultDelay is the pause between two arrows when none is configured.
const DefaultDelay = 50 * time.Millisecond

// tickMsg asks the model to draw the next arrow. Ticks from an older
// generation (before a pause/resume) are ignored so only one chain runs.
type tickMsg struct{ gen int }

// Option customizes a Model.
type Option func(*Model)

// WithDelay sets the pause between arrows. Non-positive values draw on every
// tick without waiting longer than a millisecond.
func WithDelay(d time.Duration) Option {
	return func(m *Model) {
		if d <= 0 {
			d = time.Millisecond
		}
		m.delay = d
	}
}

// WithHold keeps the program running after the last arrow until a quit key.
func WithHold() Option {
	return func(m *Model) {
		m.hold = true
	}
}

// WithCanvasOptions passes options to the underlying render.TextCanvas.
func WithCanvasOptions(opts ...render.CanvasOption) Option {
	return func(m *Model) {
		m.canvasOpts = append(m.canvasOpts, opts...)
	}
}

// Model is a bubbletea model that reveals a traversal step by step.
// It drives its TextCanvas through the render.Renderer contract: one Clear
// on Init, then one Draw per step in order.
type Model struct {
	steps      []grid.Step
	size       int
	canvas     *render.TextCanvas
	canvasOpts []render.CanvasOption

	delay  time.Duration
	hold   bool
	next   int
	gen    int
	paused bool
	done   bool
	quit   bool
}

// New returns a model for seq on a size×size board.
func New(seq render.Sequence, size int, opts ...Option) *Model {
	m := &Model{size: size, delay: DefaultDelay}
	if seq != nil {
		m.steps = make([]grid.Step, 0, seq.Len())
		for _, s := range seq.All() {
			m.steps = append(m.steps, s)
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	m.canvas = render.NewTextCanvas(size, m.canvasOpts...)

	return m
}

// Init is called once when the program starts.
func (m *Model) Init() tea.Cmd {
	m.canvas.Clear()
	if len(m.steps) == 0 {
		m.done = true
		if !m.hold {
			return tea.Quit
		}
		return nil
	}

	return m.tick()
}

// Update is called when a message is received.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen || m.paused || m.done {
			return m, nil
		}
		return m, m.advance()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quit = true
			return m, tea.Quit
		case " ", "p":
			if m.done {
				return m, nil
			}
			m.paused = !m.paused
			m.gen++
			if m.paused {
				return m, nil
			}
			return m, m.tick()
		case "n", "right":
			if m.paused && !m.done {
				m.drawNext()
				if m.done && !m.hold {
					return m, tea.Quit
				}
			}
			return m, nil
		case "f":
			for !m.done {
				m.drawNext()
			}
			m.gen++
			if !m.hold {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m, nil
}

// advance draws one arrow and schedules the next tick or finishes.
func (m *Model) advance() tea.Cmd {
	m.drawNext()
	if m.done {
		if m.hold {
			return nil
		}
		return tea.Quit
	}

	return m.tick()
}

func (m *Model) drawNext() {
	if m.next >= len(m.steps) {
		m.done = true
		return
	}
	s := m.steps[m.next]
	m.canvas.Draw(s.At, s.Dir)
	m.next++
	if m.next == len(m.steps) {
		m.done = true
	}
}

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Progress returns the number of arrows drawn and the total.
func (m *Model) Progress() (drawn, total int) {
	return m.next, len(m.steps)
}

// Done reports whether every arrow has been drawn.
func (m *Model) Done() bool {
	return m.done
}

// Quit reports whether the user asked to quit.
func (m *Model) Quit() bool {
	return m.quit
}

// View renders the board, a progress line and the key help.
func (m *Model) View() string {
	status := fmt.Sprintf("n=%d  %d/%d", m.size, m.next, len(m.steps))
	switch {
	case m.done:
		status += "  done"
	case m.paused:
		status += "  paused"
	}
	board := m.canvas.Frame(status)
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render("space: pause · n: step · f: finish · q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, board, footer) + "\n"
}

// Run plays seq in a bubbletea program reading keys from in and drawing to
// out. It returns when the animation finishes, the user quits, or ctx ends.
func Run(ctx context.Context, seq render.Sequence, size int, in io.Reader, out io.Writer, opts ...Option) (*Model, error) {
	m := New(seq, size, opts...)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return m, fmt.Errorf("animate: %w", err)
	}

	return m, nil
}
