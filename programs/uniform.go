package programs

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the parameter block handed to the fractal shaders. Each field
// is uploaded to the uniform named by its tag. Booleans travel as int32.
//
// The Lo fields carry the low half of a double-single pair and are only read
// by the emulated precision shader.
type Uniforms struct {
	MaxIterations float32 `uniform:"MaxIterations"`
	Zoom          float32 `uniform:"Zoom"`
	ZoomLo        float32 `uniform:"ZoomLo"`
	Xcenter       float32 `uniform:"Xcenter"`
	XcenterLo     float32 `uniform:"XcenterLo"`
	Ycenter       float32 `uniform:"Ycenter"`
	YcenterLo     float32 `uniform:"YcenterLo"`
	JuliaA        float32 `uniform:"JuliaA"`
	JuliaALo      float32 `uniform:"JuliaALo"`
	JuliaB        float32 `uniform:"JuliaB"`
	JuliaBLo      float32 `uniform:"JuliaBLo"`
	Julia         int32   `uniform:"Julia"`
	R             float32 `uniform:"R"`
	G             float32 `uniform:"G"`
	B             float32 `uniform:"B"`
	Almond        int32   `uniform:"Almond"`
	LogShading    int32   `uniform:"LogShading"`

	// Placement of the pane in the framebuffer.
	Origin mgl32.Vec2 `uniform:"Origin"`
	Scale  float32    `uniform:"Scale"`
	Size   float32    `uniform:"Size"`
}

// Target places a pane in the framebuffer. Origin is the lower left corner in
// framebuffer pixels, Scale the number of framebuffer pixels per device unit
// and Size the pane side in device units.
type Target struct {
	Origin mgl32.Vec2
	Scale  float32
	Size   float32
}

func (p Params) Uniforms(target Target) Uniforms {
	u := Uniforms{
		MaxIterations: float32(math.Min(p.MaxIterations, math.MaxFloat32)),
		R:             float32(p.Colour[0]),
		G:             float32(p.Colour[1]),
		B:             float32(p.Colour[2]),
		Julia:         boolUniform(p.Kind == Julia),
		Almond:        boolUniform(p.Almond),
		LogShading:    boolUniform(p.LogShading),
		Origin:        target.Origin,
		Scale:         target.Scale,
		Size:          target.Size,
	}

	u.Zoom, u.ZoomLo = SplitDouble(p.Zoom)
	u.Xcenter, u.XcenterLo = SplitDouble(p.Center[0])
	u.Ycenter, u.YcenterLo = SplitDouble(p.Center[1])
	u.JuliaA, u.JuliaALo = SplitDouble(p.JuliaC[0])
	u.JuliaB, u.JuliaBLo = SplitDouble(p.JuliaC[1])
	return u
}

// SplitDouble splits v into a float32 pair whose sum approximates v to
// roughly twice single precision.
func SplitDouble(v float64) (hi, lo float32) {
	hi = float32(v)
	lo = float32(v - float64(hi))
	return
}

func boolUniform(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
