package programs

import (
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/ui"
	"github.com/stewi1014/duofractal/viewport"
)

func defaultParams(kind Kind) Params {
	return Derive(kind, viewport.Default(), mgl64.Vec2{}, ui.DefaultState())
}

func TestGetPixelMandelbrot(t *testing.T) {
	p := defaultParams(Mandelbrot)

	// plane origin is inside the set
	if got := p.GetPixel(mgl64.Vec2{480, 480}, 960); got != NullColour {
		t.Errorf("origin coloured %v, want %v", got, NullColour)
	}

	// plane (2, 2) escapes at once
	if got := p.GetPixel(mgl64.Vec2{960, 960}, 960); got == NullColour {
		t.Errorf("(2, 2) rendered as inside the set")
	}

	p.Almond = true
	if got := p.GetPixel(mgl64.Vec2{480, 480}, 960); got == NullColour {
		t.Errorf("almond interior not shaded")
	}
}

func TestGetPixelJulia(t *testing.T) {
	// with c = 0 the filled Julia set is the unit disc
	p := defaultParams(Julia)

	inside := p.GetPixel(mgl64.Vec2{480 + 60, 480}, 960)  // plane (0.25, 0)
	outside := p.GetPixel(mgl64.Vec2{480 + 360, 480}, 960) // plane (1.5, 0)
	if inside != NullColour {
		t.Errorf("0.25 coloured %v", inside)
	}
	if outside == NullColour {
		t.Errorf("1.5 rendered as inside")
	}
}

func TestGetPixelZeroIterations(t *testing.T) {
	view := viewport.Viewport{Zoom: 5}
	p := Derive(Julia, view, mgl64.Vec2{}, ui.DefaultState())
	if p.Iterations() != 0 {
		t.Fatalf("iterations at zoom 5 = %v", p.Iterations())
	}

	for _, local := range []mgl64.Vec2{{0, 0}, {480, 480}, {959, 10}} {
		c := p.GetPixel(local, 960)
		for _, v := range c {
			if v != v || v < 0 || v > 1 {
				t.Fatalf("pixel %v = %v", local, c)
			}
		}
	}
}

func TestShaderSources(t *testing.T) {
	names := []string{"MaxIterations", "Zoom", "Xcenter", "Ycenter", "JuliaA", "JuliaB", "Julia", "R", "G", "B", "Almond", "LogShading"}
	for _, program := range Programs() {
		if !strings.HasPrefix(program.FragmentShader, "#version") {
			t.Errorf("%s: fragment shader does not start with #version", program.Name)
		}
		if !strings.Contains(program.VertexShader, "vert") {
			t.Errorf("%s: vertex shader has no vert attribute", program.Name)
		}
		for _, name := range names {
			if !strings.Contains(program.FragmentShader, "uniform float "+name+";") &&
				!strings.Contains(program.FragmentShader, "uniform int "+name+";") {
				t.Errorf("%s: missing uniform %s", program.Name, name)
			}
		}
	}
}

func TestGetImage(t *testing.T) {
	p := defaultParams(Mandelbrot)

	if _, err := p.GetImage(0, 10); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("GetImage(0, 10) err = %v", err)
	}

	img, err := p.GetImage(40, 20)
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}
	if img.Bounds() != image.Rect(-20, -10, 20, 10) {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	direct := ToImage(img)
	buffered := BufferImage(direct)
	var wrapped image.Image = buffered
	progress := WrapWithProgress(&wrapped)

	if err := buffered.Buffer(context.Background()); err != nil {
		t.Fatalf("Buffer: %v", err)
	}

	b := wrapped.Bounds()
	if b != image.Rect(0, 0, 40, 20) {
		t.Fatalf("buffered bounds = %v", b)
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			got := wrapped.At(x, y)
			want := direct.At(x-20, y-10)
			if got != want {
				t.Fatalf("pixel (%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}

	if got := progress(); got != 1 {
		t.Fatalf("progress after reading every pixel = %v", got)
	}
}

func TestGetImageOddSizes(t *testing.T) {
	p := defaultParams(Mandelbrot)
	black := color.NRGBA{A: 0xff}

	for _, size := range [][2]int{{1, 1}, {15, 15}, {15, 8}, {2, 3}} {
		img, err := p.GetImage(size[0], size[1])
		if err != nil {
			t.Fatalf("GetImage(%v, %v): %v", size[0], size[1], err)
		}
		if b := img.Bounds(); b.Dx() != size[0] || b.Dy() != size[1] {
			t.Errorf("GetImage(%v, %v) bounds = %v", size[0], size[1], b)
		}

		buffered := BufferImage(ToImage(img))
		if err := buffered.Buffer(context.Background()); err != nil {
			t.Fatalf("Buffer: %v", err)
		}
		if b := buffered.Bounds(); b != image.Rect(0, 0, size[0], size[1]) {
			t.Errorf("buffered bounds = %v", b)
		}
	}

	// the middle pixel of an odd image sits on the plane origin, inside the set
	for _, size := range []int{1, 15} {
		img, err := p.GetImage(size, size)
		if err != nil {
			t.Fatalf("GetImage: %v", err)
		}
		buffered := BufferImage(ToImage(img))
		if err := buffered.Buffer(context.Background()); err != nil {
			t.Fatalf("Buffer: %v", err)
		}
		if got := buffered.At(size/2, size/2); got != black {
			t.Errorf("size %v: middle pixel = %v, want %v", size, got, black)
		}
	}
}

func TestBufferCancelled(t *testing.T) {
	img, err := defaultParams(Julia).GetImage(200, 200)
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := BufferImage(ToImage(img)).Buffer(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Buffer on cancelled context = %v", err)
	}
}

func TestAntiAlias9x(t *testing.T) {
	img, err := defaultParams(Mandelbrot).GetImage(64, 64)
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}

	// deep inside the set every sample is the null colour
	aa := AntiAlias9x(img, 1)
	if got := aa.GetPixel(mgl64.Vec2{-0.05, 0}); got != NullColour {
		t.Fatalf("antialiased interior = %v", got)
	}
	if aa.Bounds() != img.Bounds() {
		t.Fatalf("antialiasing changed bounds")
	}
}
