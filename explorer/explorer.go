// Package explorer ties the two fractal panes, the shared Julia constant and
// the control strip together. It routes input events and derives the render
// parameters for each frame.
package explorer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/interaction"
	"github.com/stewi1014/duofractal/programs"
	"github.com/stewi1014/duofractal/ui"
	"github.com/stewi1014/duofractal/viewport"
)

// Layout is the window surface in device units. The two square panes sit
// side by side at the top, the control strip fills the rest.
type Layout struct {
	PaneSize float64
	Width    float64
	Height   float64
}

func DefaultLayout() Layout {
	return Layout{
		PaneSize: 960,
		Width:    1920,
		Height:   1080,
	}
}

// InRenderArea reports whether pos is above the control strip.
func (l Layout) InRenderArea(pos mgl64.Vec2) bool {
	return pos.Y() < l.PaneSize
}

func (l Layout) pane(kind programs.Kind) interaction.Pane {
	return interaction.Pane{
		Kind:   kind,
		Origin: mgl64.Vec2{float64(kind) * l.PaneSize, 0},
		Size:   l.PaneSize,
	}
}

type Action int

const (
	ActionNone Action = iota
	ActionSave
	ActionQuit
)

type ZoomBox struct {
	Origin mgl64.Vec2
	Side   float64
}

type PaneFrame struct {
	Pane    interaction.Pane
	Params  programs.Params
	ZoomBox *ZoomBox
}

// Frame is everything the draw pass needs.
type Frame struct {
	Panes   [2]PaneFrame
	Focused programs.Kind
	State   ui.State
	Status  string
}

type Explorer struct {
	layout   Layout
	panes    [2]*interaction.Controller
	selector interaction.Selector
	panel    *ui.Panel

	juliaC    mgl64.Vec2
	selecting bool
	cursor    mgl64.Vec2
}

func New(layout Layout, panel *ui.Panel) (*Explorer, error) {
	e := &Explorer{
		layout:   layout,
		selector: interaction.NewSelector(layout.PaneSize, layout.PaneSize),
		panel:    panel,
	}

	for _, kind := range []programs.Kind{programs.Mandelbrot, programs.Julia} {
		c, err := interaction.NewController(layout.pane(kind))
		if err != nil {
			return nil, err
		}
		e.panes[kind] = c
	}

	return e, nil
}

func (e *Explorer) Layout() Layout {
	return e.layout
}

func (e *Explorer) Panel() *ui.Panel {
	return e.panel
}

func (e *Explorer) Focused() programs.Kind {
	return e.selector.Focused
}

func (e *Explorer) Pane(kind programs.Kind) *interaction.Controller {
	return e.panes[kind]
}

func (e *Explorer) JuliaConstant() mgl64.Vec2 {
	return e.juliaC
}

func (e *Explorer) focused() *interaction.Controller {
	return e.panes[e.selector.Focused]
}

func (e *Explorer) locked() bool {
	return e.selecting || e.focused().Active()
}

// selectJulia sets the Julia constant to the Mandelbrot plane point under pos.
func (e *Explorer) selectJulia(pos mgl64.Vec2) {
	e.juliaC = e.panes[programs.Mandelbrot].PlaneAt(pos)
}

// Handle applies one input event. Events must be handled in arrival order.
func (e *Explorer) Handle(ev interaction.Event) Action {
	switch ev.Kind {
	case interaction.PointerPress:
		if !e.layout.InRenderArea(ev.Pos) {
			e.panel.Press(ev.Pos)
			break
		}

		e.focused().Press(ev.Button, ev.Pos)
		mandelbrot := e.panes[programs.Mandelbrot]
		if ev.Button == interaction.ButtonPrimary && mandelbrot == e.focused() && mandelbrot.Pane().Contains(ev.Pos) {
			e.selecting = true
			e.selectJulia(ev.Pos)
		}

	case interaction.PointerMove:
		// a held slider keeps the pointer until release
		if !e.layout.InRenderArea(ev.Pos) || e.panel.Dragging() {
			e.panel.Move(ev.Pos)
			break
		}

		e.focused().Move(ev.Pos)
		if e.selecting {
			e.selectJulia(ev.Pos)
		} else {
			e.cursor = ev.Pos
			e.selector.Update(e.cursor, e.locked())
		}

	case interaction.PointerRelease:
		if e.layout.InRenderArea(ev.Pos) || e.focused().Active() {
			e.focused().Release(ev.Button, ev.Pos)
		}
		e.panel.Release(ev.Pos)
		if ev.Button == interaction.ButtonPrimary {
			e.selecting = false
		}

	case interaction.Scroll:
		e.focused().Scroll(ev.Delta)

	case interaction.KeyPress:
		switch ev.Key {
		case interaction.KeyZoomIn:
			e.focused().KeyZoom(viewport.ZoomIn)
		case interaction.KeyZoomOut:
			e.focused().KeyZoom(viewport.ZoomOut)
		case interaction.KeyReset:
			e.focused().Reset()
		case interaction.KeySave:
			return ActionSave
		case interaction.KeyQuit:
			return ActionQuit
		}
	}

	return ActionNone
}

// Update advances pans by one frame, refreshes focus and derives the render
// parameters of both panes.
func (e *Explorer) Update() Frame {
	for _, c := range e.panes {
		c.Tick()
	}
	e.selector.Update(e.cursor, e.locked())

	frame := Frame{
		Focused: e.selector.Focused,
		State:   e.panel.State(),
	}

	for kind, c := range e.panes {
		pf := PaneFrame{
			Pane:   c.Pane(),
			Params: programs.Derive(programs.Kind(kind), c.Viewport(), e.juliaC, frame.State),
		}
		if g := c.Gesture(); g.State == interaction.ZoomBoxing {
			pf.ZoomBox = &ZoomBox{Origin: g.Origin, Side: g.Side}
		}
		frame.Panes[kind] = pf
	}

	focused := frame.Panes[frame.Focused].Params
	frame.Status = fmt.Sprintf(
		"X: %f Y: %f Zoom: %f A: %f B: %f Iterations: %d",
		focused.Center.X(), focused.Center.Y(), focused.Zoom,
		e.juliaC.X(), e.juliaC.Y(), focused.Iterations(),
	)

	return frame
}

// Params returns the current parameters of a pane without advancing the frame.
func (e *Explorer) Params(kind programs.Kind) programs.Params {
	return programs.Derive(kind, e.panes[kind].Viewport(), e.juliaC, e.panel.State())
}
