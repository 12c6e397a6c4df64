package programs

import (
	"math"
	"math/cmplx"

	"github.com/go-gl/mathgl/mgl32"
)

// Squared escape radius. Large enough for the smooth colouring to settle.
const bailout = 256

var (
	NullColour = mgl32.Vec3{0, 0, 0}
)

// shade mirrors the colouring in shaders/common.glsl.
func shade(p Params, n int, z complex128) mgl32.Vec3 {
	abs := cmplx.Abs(z)

	if real(z)*real(z)+imag(z)*imag(z) <= bailout {
		if !p.Almond {
			return NullColour
		}
		return palette(p, math.Min(abs/2, 1))
	}

	smooth := math.Max(float64(n)+1-math.Log2(math.Log(abs)), 0)
	var t float64
	if p.MaxIterations < 1 {
		t = 0
	} else if p.LogShading {
		t = math.Log(smooth+1) / math.Log(p.MaxIterations+1)
	} else {
		t = smooth / p.MaxIterations
	}
	return palette(p, t)
}

func palette(p Params, t float64) mgl32.Vec3 {
	var c mgl32.Vec3
	for i := range c {
		c[i] = float32(0.5 + 0.5*math.Cos(2*math.Pi*(3*t+p.Colour[i])))
	}
	return c
}
