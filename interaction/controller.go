package interaction

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/programs"
	"github.com/stewi1014/duofractal/viewport"
)

var ErrInvalidPaneSize = errors.New("pane size must be positive")

// PanScale couples drag distance to pan speed relative to the current zoom.
const PanScale = 50000

// Pane is a square render region of the window.
type Pane struct {
	Kind   programs.Kind
	Origin mgl64.Vec2
	Size   float64
}

// Contains reports whether pos lies in the pane, right and bottom edges
// excluded.
func (p Pane) Contains(pos mgl64.Vec2) bool {
	local := pos.Sub(p.Origin)
	return local.X() >= 0 && local.X() < p.Size &&
		local.Y() >= 0 && local.Y() < p.Size
}

type State int

const (
	Idle State = iota
	Panning
	ZoomBoxing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	case ZoomBoxing:
		return "zoom-boxing"
	}
	return "unknown"
}

// Gesture is the transient state of an in-progress drag. Origin is the screen
// point where the button went down.
type Gesture struct {
	State  State
	Origin mgl64.Vec2

	// Panning
	Velocity float64
	Angle    float64

	// ZoomBoxing
	Side float64
}

// Controller owns a pane's viewport and its gesture state machine.
type Controller struct {
	pane    Pane
	view    viewport.Viewport
	gesture Gesture
}

func NewController(pane Pane) (*Controller, error) {
	if !(pane.Size > 0) {
		return nil, fmt.Errorf("%v pane: %w", pane.Kind, ErrInvalidPaneSize)
	}
	return &Controller{
		pane: pane,
		view: viewport.Default(),
	}, nil
}

func (c *Controller) Pane() Pane {
	return c.pane
}

func (c *Controller) Viewport() viewport.Viewport {
	return c.view
}

// SetViewport replaces the frame. Viewports with a non-positive zoom are
// ignored.
func (c *Controller) SetViewport(v viewport.Viewport) {
	if !(v.Zoom > 0) {
		return
	}
	c.view = v
}

func (c *Controller) Gesture() Gesture {
	return c.gesture
}

// Active reports whether a pan or zoom box is in progress.
func (c *Controller) Active() bool {
	return c.gesture.State != Idle
}

// PlaneAt returns the plane coordinates under the screen point pos.
func (c *Controller) PlaneAt(pos mgl64.Vec2) mgl64.Vec2 {
	return c.view.ScreenToPlane(pos, c.pane.Origin, c.pane.Size)
}

func (c *Controller) Press(button Button, pos mgl64.Vec2) {
	if c.gesture.State != Idle {
		return
	}

	switch button {
	case ButtonSecondary:
		c.gesture = Gesture{State: ZoomBoxing, Origin: pos}
	case ButtonTertiary:
		c.gesture = Gesture{State: Panning, Origin: pos}
	}
}

func (c *Controller) Move(pos mgl64.Vec2) {
	switch c.gesture.State {
	case ZoomBoxing:
		d := pos.Sub(c.gesture.Origin)
		c.gesture.Side = math.Min(math.Max(d.X(), d.Y()), c.pane.Size)

	case Panning:
		origin := c.gesture.Origin
		distance := origin.Sub(pos).Len()
		c.gesture.Velocity = ((distance + 1) * c.view.Zoom) / PanScale
		c.gesture.Angle = 2*math.Pi - math.Atan2(origin.Y()-pos.Y(), origin.X()-pos.X())
	}
}

// Release ends the gesture started by button. A zoom box is committed to the
// viewport unless it is degenerate.
func (c *Controller) Release(button Button, pos mgl64.Vec2) {
	switch {
	case c.gesture.State == ZoomBoxing && button == ButtonSecondary:
		origin := c.gesture.Origin.Sub(c.pane.Origin)
		cursor := pos.Sub(c.pane.Origin)
		if v, ok := c.view.RebaseZoomBox(origin, cursor, c.pane.Size); ok {
			c.SetViewport(v)
		}
		c.gesture = Gesture{}

	case c.gesture.State == Panning && button == ButtonTertiary:
		c.gesture = Gesture{}
	}
}

func (c *Controller) Scroll(delta float64) {
	v := c.view
	v.ApplyScrollZoom(delta)
	c.SetViewport(v)
}

func (c *Controller) KeyZoom(dir viewport.ZoomDirection) {
	v := c.view
	v.ApplyKeyZoom(dir)
	c.SetViewport(v)
}

func (c *Controller) Reset() {
	c.SetViewport(viewport.Default())
}

// Tick advances a pan by one frame. Pan speed is per frame, not per second.
func (c *Controller) Tick() {
	if c.gesture.State == Panning {
		c.view.Pan(c.gesture.Velocity, c.gesture.Angle)
	}
}
