package main

import (
	"context"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/duofractal/explorer"
	"github.com/stewi1014/duofractal/ui"
)

func NewApp(ctx context.Context, quit context.CancelCauseFunc, cfg Config) (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	a := &App{
		cfg:  cfg,
		ctx:  ctx,
		quit: quit,
	}

	var err error
	a.explorer, err = explorer.New(explorer.DefaultLayout(), ui.NewPanel())
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	layout := a.explorer.Layout()

	a.window, err = NewRenderWindow(int(layout.Width), int(layout.Height))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.renderer, err = NewRenderer(layout, cfg.Debug)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Controls {
		gtk.Init(nil)
		a.controls, err = NewConfigWindow(a.explorer.Panel(), quit)
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

// App owns the render window and runs the frame loop on the main thread.
type App struct {
	cfg  Config
	ctx  context.Context
	quit context.CancelCauseFunc

	window   *RenderWindow
	renderer *Renderer
	explorer *explorer.Explorer
	controls *ConfigWindow
}

// Run blocks until the window is closed or the app context ends.
func (a *App) Run() error {
	for !a.window.ShouldClose() {
		if err := a.ctx.Err(); err != nil {
			return context.Cause(a.ctx)
		}
		a.frame()
	}
	return nil
}

func (a *App) frame() {
	glfw.PollEvents()

	for _, ev := range a.window.Events() {
		switch a.explorer.Handle(ev) {
		case explorer.ActionQuit:
			a.window.SetShouldClose(true)
		case explorer.ActionSave:
			a.save()
		}
	}

	frame := a.explorer.Update()

	width, height := a.window.GetFramebufferSize()
	a.renderer.Draw(frame, a.explorer.Panel(), width, height)
	a.window.SwapBuffers()
	a.window.SetStatus(frame.Status)

	if a.controls != nil {
		PumpGTK()
		if !a.controls.closed {
			a.controls.Update(frame.Status)
		}
	}
}

// save exports the focused pane in the background.
func (a *App) save() {
	params := a.explorer.Params(a.explorer.Focused())

	var parent *gtk.Window
	if a.controls != nil {
		parent = a.controls.Window
	}

	go save(a.ctx, parent, a.cfg.Save, params)
}

func (a *App) Close() {
	if a.controls != nil {
		if !a.controls.closed {
			a.controls.Destroy()
		}
		PumpGTK()
		a.controls = nil
	}
	if a.renderer != nil {
		a.renderer.Delete()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}
	glfw.Terminate()
}
