package interaction

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/programs"
)

// Selector decides which pane receives pointer and scroll input.
type Selector struct {
	Focused programs.Kind

	// Split is the x coordinate between the Mandelbrot and Julia panes.
	Split float64
	// RenderHeight is the bottom of the render area; below it is the UI strip.
	RenderHeight float64
}

func NewSelector(split, renderHeight float64) Selector {
	return Selector{
		Focused:      programs.Mandelbrot,
		Split:        split,
		RenderHeight: renderHeight,
	}
}

// Update focuses the pane under cursor. Focus does not move while locked,
// which callers set while the focused pane has a gesture in progress.
func (s *Selector) Update(cursor mgl64.Vec2, locked bool) programs.Kind {
	if locked || cursor.Y() >= s.RenderHeight {
		return s.Focused
	}

	switch {
	case cursor.X() < s.Split:
		s.Focused = programs.Mandelbrot
	case cursor.X() > s.Split:
		s.Focused = programs.Julia
	}
	return s.Focused
}
