package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/domain"
)

const (
	dragFrame = 40 * time.Millisecond
	dragStep  = 0.25
)

type dragTickMsg struct{ gen int }

// dragState animates the top card leaving the screen. Every stop bumps gen
// so ticks scheduled by an earlier drag are ignored.
type dragState struct {
	dir   domain.Direction
	ratio float64
	gen   int
}

func (d *dragState) Active() bool {
	return d.dir != domain.DirectionNone
}

func (d *dragState) start(dir domain.Direction) tea.Cmd {
	d.gen++
	d.dir = dir
	d.ratio = 0
	return d.tick()
}

func (d *dragState) tick() tea.Cmd {
	gen := d.gen
	return tea.Tick(dragFrame, func(time.Time) tea.Msg {
		return dragTickMsg{gen: gen}
	})
}

// advance moves the card one frame and reports whether it is off screen
func (d *dragState) advance() bool {
	d.ratio = min(d.ratio+dragStep, 1)
	return d.ratio >= 1
}

func (d *dragState) stop() {
	d.gen++
	d.dir = domain.DirectionNone
	d.ratio = 0
}
