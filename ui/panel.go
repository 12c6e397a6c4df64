package ui

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const sliderLength = 100

// Panel owns the controls of the strip below the panes. Pointer events that
// land outside the render area are routed here.
type Panel struct {
	checkboxes [numToggles]*Checkbox
	sliders    [numChannels]*Slider

	version uint64
}

// NewPanel lays out the controls along the bottom of a 1920x1080 surface and
// initialises them from DefaultState.
func NewPanel() *Panel {
	state := DefaultState()
	p := &Panel{}

	checked := map[Toggle]bool{
		LogShading:       state.LogShading,
		ScaleIterations:  state.ScaleIterations,
		Almond:           state.Almond,
		EmulatePrecision: state.EmulatedPrecision,
	}
	for i, t := range Toggles() {
		x := 300 * float64(i)
		if i == 0 {
			x = 10
		}
		p.checkboxes[t] = &Checkbox{
			Toggle:  t,
			Pos:     mgl64.Vec2{x, 980},
			Checked: checked[t],
		}
	}

	colours := [numChannels]mgl32.Vec3{
		Red:   {190 / 255.0, 40 / 255.0, 40 / 255.0},
		Green: {40 / 255.0, 190 / 255.0, 40 / 255.0},
		Blue:  {40 / 255.0, 40 / 255.0, 190 / 255.0},
	}
	for i, c := range Channels() {
		p.sliders[c] = &Slider{
			Channel: c,
			Pos:     mgl64.Vec2{1400, 980 + 20*float64(i)},
			Length:  sliderLength,
			Value:   state.Colour[c],
			Colour:  colours[c],
		}
	}

	return p
}

func (p *Panel) Press(pos mgl64.Vec2) {
	for _, c := range p.checkboxes {
		if c.Press(pos) {
			p.version++
		}
	}
	for _, s := range p.sliders {
		s.Press(pos)
	}
}

func (p *Panel) Move(pos mgl64.Vec2) {
	for _, s := range p.sliders {
		if s.Move(pos) {
			p.version++
		}
	}
}

func (p *Panel) Release(pos mgl64.Vec2) {
	for _, s := range p.sliders {
		s.Release()
	}
}

// Dragging reports whether a slider knob is held.
func (p *Panel) Dragging() bool {
	for _, s := range p.sliders {
		if s.Dragging() {
			return true
		}
	}
	return false
}

func (p *Panel) State() State {
	return State{
		LogShading:        p.checkboxes[LogShading].Checked,
		Almond:            p.checkboxes[Almond].Checked,
		ScaleIterations:   p.checkboxes[ScaleIterations].Checked,
		EmulatedPrecision: p.checkboxes[EmulatePrecision].Checked,
		Colour: mgl64.Vec3{
			p.sliders[Red].Value,
			p.sliders[Green].Value,
			p.sliders[Blue].Value,
		},
	}
}

func (p *Panel) Checked(t Toggle) bool {
	return p.checkboxes[t].Checked
}

func (p *Panel) SetChecked(t Toggle, checked bool) {
	if p.checkboxes[t].Checked == checked {
		return
	}
	p.checkboxes[t].Checked = checked
	p.version++
}

func (p *Panel) Value(c Channel) float64 {
	return p.sliders[c].Value
}

// SetValue sets a colour coefficient, clamped to [0,1].
func (p *Panel) SetValue(c Channel, v float64) {
	v = clamp01(v)
	if p.sliders[c].Value == v {
		return
	}
	p.sliders[c].Value = v
	p.version++
}

// Version increases every time a control changes value.
func (p *Panel) Version() uint64 {
	return p.version
}

func (p *Panel) Checkboxes() []*Checkbox {
	return p.checkboxes[:]
}

func (p *Panel) Sliders() []*Slider {
	return p.sliders[:]
}
