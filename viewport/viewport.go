// Package viewport holds the complex-plane frame shown by a fractal pane and
// the transforms between pane pixels and plane coordinates.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultZoom = 4.0

	// ScrollZoomFactor is applied once per wheel notch.
	ScrollZoomFactor = 1.05
	// KeyZoomFactor is applied once per zoom key press.
	KeyZoomFactor = 1.04

	// MinZoomBoxSide is the smallest zoom box, in device units, that will be
	// committed. Anything smaller, zero or negative is ignored.
	MinZoomBoxSide = 1.0
)

type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

// Viewport is the visible window onto the complex plane.
//
// Center holds the values handed to the shader as Xcenter/Ycenter. A pane
// pixel l (y pointing up) maps to l*Zoom/size - Zoom/2 - Center, so the
// plane point in the middle of the pane is -Center.
type Viewport struct {
	Center mgl64.Vec2
	Zoom   float64
}

func Default() Viewport {
	return Viewport{Zoom: DefaultZoom}
}

// LocalToPlane converts a pane-local point, with y already pointing up, to
// plane coordinates.
func (v Viewport) LocalToPlane(local mgl64.Vec2, size float64) mgl64.Vec2 {
	return mgl64.Vec2{
		(local.X()*v.Zoom)/size - v.Zoom/2 - v.Center.X(),
		(local.Y()*v.Zoom)/size - v.Zoom/2 - v.Center.Y(),
	}
}

// ScreenToPlane converts a screen point inside the pane whose top-left corner
// is at origin to plane coordinates. Screen y grows downwards, plane y grows
// upwards.
func (v Viewport) ScreenToPlane(screen, origin mgl64.Vec2, size float64) mgl64.Vec2 {
	local := screen.Sub(origin)
	return v.LocalToPlane(mgl64.Vec2{local.X(), size - local.Y()}, size)
}

// PlaneToScreen is the inverse of ScreenToPlane.
func (v Viewport) PlaneToScreen(plane, origin mgl64.Vec2, size float64) mgl64.Vec2 {
	lx := (plane.X() + v.Center.X() + v.Zoom/2) * size / v.Zoom
	ly := (plane.Y() + v.Center.Y() + v.Zoom/2) * size / v.Zoom
	return mgl64.Vec2{origin.X() + lx, origin.Y() + size - ly}
}

// ZoomBoxSide returns the side of the square zoom box drawn from origin to
// cursor, both local to a pane of the given size. The cursor is clamped to
// the pane's right and bottom edges.
func ZoomBoxSide(origin, cursor mgl64.Vec2, size float64) float64 {
	cx := math.Min(cursor.X(), size)
	cy := math.Min(cursor.Y(), size)
	return math.Max(cx-origin.X(), cy-origin.Y())
}

// RebaseZoomBox returns the viewport framed by the zoom box drawn from origin
// to cursor (pane-local screen coordinates). The second result is false and
// the viewport unchanged when the box is degenerate.
func (v Viewport) RebaseZoomBox(origin, cursor mgl64.Vec2, size float64) (Viewport, bool) {
	side := ZoomBoxSide(origin, cursor, size)
	if side < MinZoomBoxSide {
		return v, false
	}

	boxCenter := origin.Add(mgl64.Vec2{side / 2, side / 2})
	center := v.ScreenToPlane(boxCenter, mgl64.Vec2{}, size)

	return Viewport{
		Center: center.Mul(-1),
		Zoom:   math.Abs(side) * v.Zoom / size,
	}, true
}

// ApplyScrollZoom zooms out for negative deltas and in otherwise. Zoom is not
// bounded in either direction.
func (v *Viewport) ApplyScrollZoom(delta float64) {
	if delta < 0 {
		v.Zoom *= ScrollZoomFactor
	} else {
		v.Zoom /= ScrollZoomFactor
	}
}

// ApplyKeyZoom zooms about the current center.
func (v *Viewport) ApplyKeyZoom(dir ZoomDirection) {
	switch dir {
	case ZoomOut:
		v.Zoom *= KeyZoomFactor
	case ZoomIn:
		v.Zoom /= KeyZoomFactor
	}
}

// Pan moves the center by velocity in the direction of angle.
func (v *Viewport) Pan(velocity, angle float64) {
	v.Center = v.Center.Add(mgl64.Vec2{
		velocity * math.Cos(angle),
		velocity * math.Sin(angle),
	})
}

func (v *Viewport) Reset() {
	*v = Default()
}
