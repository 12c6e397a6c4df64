package ui

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	CheckboxSize = 30

	KnobSize   = 17
	knobOffset = 8
)

// Rect is an axis aligned rectangle in screen coordinates.
type Rect struct {
	Min, Max mgl64.Vec2
}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() > r.Min.X() && p.X() < r.Max.X() &&
		p.Y() > r.Min.Y() && p.Y() < r.Max.Y()
}

func (r Rect) Size() mgl64.Vec2 {
	return r.Max.Sub(r.Min)
}

type Checkbox struct {
	Toggle  Toggle
	Pos     mgl64.Vec2
	Checked bool
}

func (c *Checkbox) Bounds() Rect {
	return Rect{
		Min: c.Pos,
		Max: c.Pos.Add(mgl64.Vec2{CheckboxSize, CheckboxSize}),
	}
}

// Press flips the checkbox if p is inside it.
func (c *Checkbox) Press(p mgl64.Vec2) bool {
	if !c.Bounds().Contains(p) {
		return false
	}
	c.Checked = !c.Checked
	return true
}

// Slider is a horizontal bar with a draggable knob. Value is always in [0,1].
type Slider struct {
	Channel Channel
	Pos     mgl64.Vec2
	Length  float64
	Value   float64
	Colour  mgl32.Vec3

	dragging bool
}

func (s *Slider) Bar() Rect {
	return Rect{
		Min: s.Pos,
		Max: s.Pos.Add(mgl64.Vec2{s.Length, 1}),
	}
}

func (s *Slider) Knob() Rect {
	min := mgl64.Vec2{
		s.Pos.X() + s.Length*s.Value - knobOffset,
		s.Pos.Y() - knobOffset,
	}
	return Rect{Min: min, Max: min.Add(mgl64.Vec2{KnobSize, KnobSize})}
}

// Press starts a drag if p is on the knob.
func (s *Slider) Press(p mgl64.Vec2) bool {
	if s.Knob().Contains(p) {
		s.dragging = true
	}
	return s.dragging
}

// Move updates the value while dragging and reports whether it changed.
func (s *Slider) Move(p mgl64.Vec2) bool {
	if !s.dragging {
		return false
	}
	v := clamp01((p.X() - s.Pos.X()) / s.Length)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

func (s *Slider) Release() {
	s.dragging = false
}

func (s *Slider) Dragging() bool {
	return s.dragging
}

func clamp01(v float64) float64 {
	return math.Max(math.Min(v, 1), 0)
}
