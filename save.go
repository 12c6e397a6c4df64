package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/duofractal/programs"
)

type SaveOptions struct {
	Dir       string
	Size      int
	Antialias float64
}

func snapshotName(dir string, kind programs.Kind, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%v-%v.png", kind, now.Format("20060102-150405.000")))
}

// save renders params on the CPU and writes the result as a PNG. It blocks
// until the file is written, ctx is cancelled or rendering fails; callers run
// it in its own goroutine. Progress and errors go to the log and, if parent
// is not nil, to a progress dialog that can cancel the export and an error
// dialog.
func save(
	ctx context.Context,
	parent *gtk.Window,
	opts SaveOptions,
	params programs.Params,
) {
	ctx, cancel := context.WithCancelCause(ctx)
	AttachErrorDialog(parent, ctx)
	defer cancel(nil)
	defer CatchPanicToContext(cancel)

	name := snapshotName(opts.Dir, params.Kind, time.Now())
	onProgress := func(progress func() float64) {
		go logProgress(ctx, name, progress)
		if parent == nil {
			return
		}

		glib.IdleAdd(func() {
			if ctx.Err() != nil {
				return
			}

			dialog, err := NewProgressDialog(
				ctx, parent, "Save Image",
				fmt.Sprintf("Saving %v", name),
				func() { cancel(context.Canceled) },
			)
			if err != nil {
				log.Println(err)
				return
			}
			dialog.AddProgressSupplier(progress)
			dialog.ShowAll()
		})
	}

	if err := saveImage(ctx, name, opts, params, onProgress); err != nil {
		cancel(fmt.Errorf("saving %v: %w", name, err))
		return
	}

	log.Println("saved", name)
}

// saveImage hands the rendering progress to onProgress, if set, before it
// starts rendering.
func saveImage(
	ctx context.Context,
	name string,
	opts SaveOptions,
	params programs.Params,
	onProgress func(progress func() float64),
) (err error) {
	fractal, err := params.GetImage(opts.Size, opts.Size)
	if err != nil {
		return err
	}
	if opts.Antialias > 0 {
		fractal = programs.AntiAlias9x(fractal, opts.Antialias)
	}

	img := programs.ToImage(fractal)
	progress := programs.WrapWithProgress(&img)
	buff := programs.BufferImage(img)

	if onProgress != nil {
		onProgress(progress)
	}
	if err := buff.Buffer(ctx); err != nil {
		return err
	}

	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	return png.Encode(file, buff)
}

func logProgress(ctx context.Context, name string, progress func() float64) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p := progress()
			if p >= 1 {
				return
			}
			log.Printf("rendering %v: %.0f%%", name, p*100)
		case <-ctx.Done():
			return
		}
	}
}
