package programs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/ui"
	"github.com/stewi1014/duofractal/viewport"
)

// Kind selects which fractal a pane draws.
type Kind int

const (
	Mandelbrot Kind = iota
	Julia
)

func (k Kind) String() string {
	switch k {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	}
	return "unknown"
}

// DefaultIterations is used when iteration scaling is off.
const DefaultIterations = 70

// MaxIterations returns the iteration budget for a frame of the given zoom.
// With scaling on the budget grows as zoom shrinks; at zoom 5 it is 0.
func MaxIterations(zoom float64, scale bool) float64 {
	if !scale {
		return DefaultIterations
	}
	return math.Sqrt(2*math.Sqrt(math.Abs(1-math.Sqrt(5/zoom)))) * 66.5
}

// Params fully determines the image of one pane.
type Params struct {
	Kind          Kind
	MaxIterations float64
	Zoom          float64
	Center        mgl64.Vec2

	// JuliaC is only meaningful when Kind is Julia.
	JuliaC mgl64.Vec2

	Colour     mgl64.Vec3
	LogShading bool
	Almond     bool
	Emulated   bool
}

// Derive builds the parameters for a pane from its frame, the shared Julia
// constant and the control state.
func Derive(kind Kind, view viewport.Viewport, juliaC mgl64.Vec2, state ui.State) Params {
	p := Params{
		Kind:          kind,
		MaxIterations: MaxIterations(view.Zoom, state.ScaleIterations),
		Zoom:          view.Zoom,
		Center:        view.Center,
		Colour:        state.Colour,
		LogShading:    state.LogShading,
		Almond:        state.Almond,
		Emulated:      state.EmulatedPrecision,
	}
	if kind == Julia {
		p.JuliaC = juliaC
	}
	return p
}

// Iterations is MaxIterations truncated for loops and display.
func (p Params) Iterations() int {
	if p.MaxIterations >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(p.MaxIterations)
}
