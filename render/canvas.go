package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hamgrid/grid"
)

// emptyCell is printed for cells no arrow has been drawn on yet.
const emptyCell = "·"

// TextCanvas is an n×n board of arrows rendered as text, top row first.
// Draws outside the board are counted and otherwise ignored.
type TextCanvas struct {
	mu      sync.RWMutex
	n       int
	cells   []grid.Direction
	set     []bool
	head    int // row-major index of the latest arrow, -1 when none
	drawn   int
	dropped int

	styled     bool
	arrowStyle lipgloss.Style
	headStyle  lipgloss.Style
	frameStyle lipgloss.Style
}

// CanvasOption customizes a TextCanvas.
type CanvasOption func(*TextCanvas)

// WithArrowStyle styles every drawn arrow.
func WithArrowStyle(s lipgloss.Style) CanvasOption {
	return func(c *TextCanvas) {
		c.styled = true
		c.arrowStyle = s
	}
}

// WithHeadStyle styles the most recently drawn arrow.
func WithHeadStyle(s lipgloss.Style) CanvasOption {
	return func(c *TextCanvas) {
		c.styled = true
		c.headStyle = s
	}
}

// WithColor applies the default colored palette.
func WithColor() CanvasOption {
	return func(c *TextCanvas) {
		c.styled = true
		c.arrowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
		c.headStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
		c.frameStyle = c.frameStyle.BorderForeground(lipgloss.Color("#444444"))
	}
}

// NewTextCanvas returns an empty canvas for an n×n board.
// A non-positive n yields a canvas that drops every draw.
func NewTextCanvas(n int, opts ...CanvasOption) *TextCanvas {
	if n < 0 {
		n = 0
	}
	c := &TextCanvas{
		n:          n,
		cells:      make([]grid.Direction, n*n),
		set:        make([]bool, n*n),
		head:       -1,
		arrowStyle: lipgloss.NewStyle(),
		headStyle:  lipgloss.NewStyle(),
		frameStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Clear implements Renderer.
func (c *TextCanvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.cells)
	clear(c.set)
	c.head = -1
	c.drawn = 0
	c.dropped = 0
}

// Draw implements Renderer.
func (c *TextCanvas) Draw(at grid.Coordinate, d grid.Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !at.InBounds(c.n) || !d.Valid() {
		c.dropped++
		return
	}
	idx := at.Index(c.n)
	c.cells[idx] = d
	c.set[idx] = true
	c.head = idx
	c.drawn++
}

// Size returns the board size.
func (c *TextCanvas) Size() int {
	return c.n
}

// Drawn returns how many arrows landed on the board since the last Clear.
func (c *TextCanvas) Drawn() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.drawn
}

// Dropped returns how many draws fell outside the board since the last Clear.
func (c *TextCanvas) Dropped() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dropped
}

// At returns the arrow drawn at the coordinate, if any.
func (c *TextCanvas) At(at grid.Coordinate) (grid.Direction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !at.InBounds(c.n) {
		return 0, false
	}
	idx := at.Index(c.n)

	return c.cells[idx], c.set[idx]
}

// String renders the board, row y=n-1 first, cells separated by one space.
func (c *TextCanvas) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	for y := c.n - 1; y >= 0; y-- {
		for x := 0; x < c.n; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.cell(y*c.n + x))
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Frame renders the board inside a rounded border with an optional title.
func (c *TextCanvas) Frame(title string) string {
	body := c.String()
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(title), body)
	}

	return c.frameStyle.Render(body)
}

func (c *TextCanvas) cell(idx int) string {
	if !c.set[idx] {
		return emptyCell
	}
	arrow := string(c.cells[idx].Arrow())
	if !c.styled {
		return arrow
	}
	if idx == c.head {
		return c.headStyle.Render(arrow)
	}

	return c.arrowStyle.Render(arrow)
}
