package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewPanelDefaults(t *testing.T) {
	p := NewPanel()
	if got, want := p.State(), DefaultState(); got != want {
		t.Fatalf("State() = %+v, want %+v", got, want)
	}
	if p.Version() != 0 {
		t.Fatalf("new panel has version %v", p.Version())
	}
}

func TestNewPanelLayout(t *testing.T) {
	p := NewPanel()

	checkboxes := map[Toggle]mgl64.Vec2{
		LogShading:       {10, 980},
		ScaleIterations:  {300, 980},
		Almond:           {600, 980},
		EmulatePrecision: {900, 980},
	}
	for toggle, want := range checkboxes {
		if got := p.Checkboxes()[toggle].Pos; got != want {
			t.Errorf("%v checkbox at %v, want %v", toggle, got, want)
		}
	}

	for i, s := range p.Sliders() {
		if want := (mgl64.Vec2{1400, 980 + 20*float64(i)}); s.Pos != want {
			t.Errorf("%v slider at %v, want %v", s.Channel, s.Pos, want)
		}
	}
}

func TestCheckboxToggle(t *testing.T) {
	p := NewPanel()
	box := p.Checkboxes()[Almond].Bounds()
	inside := box.Min.Add(mgl64.Vec2{15, 15})

	p.Press(inside)
	if !p.State().Almond {
		t.Fatalf("press inside almond checkbox did not check it")
	}
	p.Release(inside)
	p.Press(inside)
	if p.State().Almond {
		t.Fatalf("second press did not uncheck")
	}
	if p.Version() != 2 {
		t.Fatalf("version = %v, want 2", p.Version())
	}

	// the edge is outside
	p.Press(box.Min)
	if p.State().Almond {
		t.Fatalf("press on checkbox edge toggled it")
	}
}

func TestSliderDrag(t *testing.T) {
	p := NewPanel()
	s := p.Sliders()[Red]
	knob := s.Knob()
	grab := knob.Min.Add(mgl64.Vec2{KnobSize / 2, KnobSize / 2})

	p.Press(grab)
	if !p.Dragging() {
		t.Fatalf("press on knob did not start drag")
	}

	p.Move(mgl64.Vec2{s.Pos.X() + 75, 2000})
	if got := p.State().Colour[Red]; !mgl64.FloatEqual(got, 0.75) {
		t.Fatalf("red = %v, want 0.75", got)
	}

	p.Move(mgl64.Vec2{s.Pos.X() + 500, s.Pos.Y()})
	if got := p.State().Colour[Red]; got != 1 {
		t.Fatalf("red = %v, want clamped to 1", got)
	}

	p.Move(mgl64.Vec2{0, s.Pos.Y()})
	if got := p.State().Colour[Red]; got != 0 {
		t.Fatalf("red = %v, want clamped to 0", got)
	}

	p.Release(mgl64.Vec2{})
	before := p.State()
	p.Move(mgl64.Vec2{s.Pos.X() + 50, s.Pos.Y()})
	if p.State() != before {
		t.Fatalf("move after release changed state")
	}
}

func TestSliderPressMissesKnob(t *testing.T) {
	p := NewPanel()
	s := p.Sliders()[Green]
	p.Press(s.Pos.Add(mgl64.Vec2{s.Length, 0}))
	if p.Dragging() {
		t.Fatalf("press away from knob started drag")
	}
}

func TestSetters(t *testing.T) {
	p := NewPanel()

	p.SetChecked(LogShading, true)
	if p.Version() != 0 {
		t.Fatalf("setting unchanged value bumped version")
	}
	p.SetChecked(LogShading, false)
	if p.Checked(LogShading) || p.Version() != 1 {
		t.Fatalf("SetChecked did not apply")
	}

	p.SetValue(Blue, 3)
	if p.Value(Blue) != 1 {
		t.Fatalf("SetValue did not clamp, got %v", p.Value(Blue))
	}
	p.SetValue(Blue, -1)
	if p.Value(Blue) != 0 {
		t.Fatalf("SetValue did not clamp, got %v", p.Value(Blue))
	}
}
