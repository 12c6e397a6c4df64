package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/programs"
	"github.com/stewi1014/duofractal/ui"
	"github.com/stewi1014/duofractal/viewport"
)

func testParams(kind programs.Kind) programs.Params {
	return programs.Derive(kind, viewport.Default(), mgl64.Vec2{-0.4, 0.6}, ui.DefaultState())
}

func TestSnapshotName(t *testing.T) {
	now := time.Date(2024, 3, 7, 21, 16, 18, 142e6, time.UTC)
	got := snapshotName("shots", programs.Julia, now)
	want := filepath.Join("shots", "julia-20240307-211618.142.png")
	if got != want {
		t.Fatalf("snapshotName = %q, want %q", got, want)
	}
}

func TestSaveImage(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.png")
	opts := SaveOptions{Size: 16, Antialias: 0.5}

	if err := saveImage(context.Background(), name, opts, testParams(programs.Mandelbrot), nil); err != nil {
		t.Fatalf("saveImage: %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestSaveImageCancelled(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.png")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := saveImage(ctx, name, SaveOptions{Size: 64}, testParams(programs.Julia), nil)
	if err == nil {
		t.Fatalf("saveImage succeeded with cancelled context")
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Fatalf("cancelled save left %v behind: %v", name, err)
	}
}

func TestSaveImageBadDir(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := saveImage(context.Background(), name, SaveOptions{Size: 4}, testParams(programs.Mandelbrot), nil); err == nil {
		t.Fatalf("saveImage into missing directory succeeded")
	}
}

func TestSaveImageOddSizes(t *testing.T) {
	dir := t.TempDir()
	for _, size := range []int{1, 15} {
		name := filepath.Join(dir, fmt.Sprintf("%v.png", size))
		if err := saveImage(context.Background(), name, SaveOptions{Size: size}, testParams(programs.Julia), nil); err != nil {
			t.Fatalf("size %v: saveImage: %v", size, err)
		}

		f, err := os.Open(name)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("size %v: bounds = %v", size, b)
		}
	}
}

func TestSaveImageProgress(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.png")

	var progress func() float64
	err := saveImage(context.Background(), name, SaveOptions{Size: 20}, testParams(programs.Mandelbrot), func(p func() float64) {
		if p() != 0 {
			t.Errorf("progress before rendering = %v", p())
		}
		progress = p
	})
	if err != nil {
		t.Fatalf("saveImage: %v", err)
	}
	if progress == nil {
		t.Fatalf("progress was never reported")
	}
	if got := progress(); got != 1 {
		t.Fatalf("progress after saving = %v, want 1", got)
	}
}

func TestSaveImageCancelledFromProgress(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.png")
	ctx, cancel := context.WithCancelCause(context.Background())

	err := saveImage(ctx, name, SaveOptions{Size: 64}, testParams(programs.Julia), func(func() float64) {
		cancel(context.Canceled)
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Fatalf("cancelled save left %v behind: %v", name, err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	save(context.Background(), nil, SaveOptions{Dir: dir, Size: 8}, testParams(programs.Julia))

	matches, err := filepath.Glob(filepath.Join(dir, "julia-*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("found %v snapshots, want 1", matches)
	}
}
