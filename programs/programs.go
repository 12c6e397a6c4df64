package programs

import (
	_ "embed"
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/viewport"
)

var ErrEmptyImage = errors.New("image has no pixels")

//go:embed shaders/default.vert
var defaultVertexShader string

//go:embed shaders/common.glsl
var commonFragment string

//go:embed shaders/fractal.frag
var fractalFragment string

//go:embed shaders/emulated.frag
var emulatedFragment string

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
}

var (
	// Native single precision. Good down to a zoom of about 1e-4.
	Native = Program{
		Name:           "native",
		VertexShader:   defaultVertexShader,
		FragmentShader: fragmentSource(fractalFragment),
	}

	// Double-single arithmetic, roughly twice the usable depth of Native.
	Emulated = Program{
		Name:           "emulated",
		VertexShader:   defaultVertexShader,
		FragmentShader: fragmentSource(emulatedFragment),
	}
)

func fragmentSource(body string) string {
	return "#version 410 core\n\n" + commonFragment + "\n" + body
}

// Programs lists every shader program the backend must compile.
func Programs() []Program {
	return []Program{Native, Emulated}
}

// Program returns the shader program that renders p.
func (p Params) Program() Program {
	if p.Emulated {
		return Emulated
	}
	return Native
}

// GetPixel is the CPU rendition of the fractal shaders. local is a point in a
// pane of the given size, with y pointing up.
func (p Params) GetPixel(local mgl64.Vec2, size float64) mgl32.Vec3 {
	view := viewport.Viewport{Center: p.Center, Zoom: p.Zoom}
	plane := view.LocalToPlane(local, size)
	point := complex(plane[0], plane[1])

	var n int
	var z complex128
	switch p.Kind {
	case Julia:
		n, z = julia(point, p.JuliaC, p.Iterations())
	default:
		n, z = mandelbrot(point, p.Iterations())
	}

	return shade(p, n, z)
}

// GetImage returns a width x height rendering of the pane. The pane is fitted
// to the larger dimension and centered.
func (p Params) GetImage(width, height int) (Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}

	return &programImage{
		params: p,
		bounds: image.Rect(
			-width/2,
			-height/2,
			width-width/2,
			height-height/2,
		),
	}, nil
}

// Image is sampled at positions in [-1,1] along its larger dimension, y up.
type Image interface {
	GetPixel(mgl64.Vec2) mgl32.Vec3
	Bounds() image.Rectangle
}

type programImage struct {
	params Params
	bounds image.Rectangle
}

func (i *programImage) GetPixel(pos mgl64.Vec2) mgl32.Vec3 {
	local := pos.Add(mgl64.Vec2{1, 1}).Mul(0.5)
	return i.params.GetPixel(local, 1)
}

func (i *programImage) Bounds() image.Rectangle {
	return i.bounds
}
