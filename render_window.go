package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/duofractal/interaction"
)

const windowTitle = "DuoFractal"

func NewRenderWindow(width, height int) (*RenderWindow, error) {
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(
		width,
		height,
		windowTitle,
		nil,
		nil,
	)

	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &RenderWindow{
		Window: window,
		title:  windowTitle,
	}

	w.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	glfw.SwapInterval(1)

	w.SetMouseButtonCallback(w.mouseButton)
	w.SetCursorPosCallback(w.cursorPos)
	w.SetScrollCallback(w.scroll)
	w.SetKeyCallback(w.key)

	return w, nil
}

// RenderWindow is the GLFW window both panes and the control strip are drawn
// into. Input callbacks queue events until the frame loop drains them.
type RenderWindow struct {
	*glfw.Window
	events []interaction.Event
	title  string
}

// Events returns the events queued since the last call.
func (w *RenderWindow) Events() []interaction.Event {
	events := w.events
	w.events = nil
	return events
}

// SetStatus shows status in the window title.
func (w *RenderWindow) SetStatus(status string) {
	title := windowTitle + " | " + status
	if title == w.title {
		return
	}
	w.title = title
	w.SetTitle(title)
}

func (w *RenderWindow) cursor() mgl64.Vec2 {
	x, y := w.GetCursorPos()
	return mgl64.Vec2{x, y}
}

func (w *RenderWindow) mouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	var b interaction.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = interaction.ButtonPrimary
	case glfw.MouseButtonRight:
		b = interaction.ButtonSecondary
	case glfw.MouseButtonMiddle:
		b = interaction.ButtonTertiary
	default:
		return
	}

	switch action {
	case glfw.Press:
		w.events = append(w.events, interaction.PressEvent(b, w.cursor()))
	case glfw.Release:
		w.events = append(w.events, interaction.ReleaseEvent(b, w.cursor()))
	}
}

func (w *RenderWindow) cursorPos(_ *glfw.Window, x, y float64) {
	w.events = append(w.events, interaction.MoveEvent(mgl64.Vec2{x, y}))
}

func (w *RenderWindow) scroll(_ *glfw.Window, _, yoff float64) {
	if yoff == 0 {
		return
	}
	w.events = append(w.events, interaction.ScrollEvent(yoff, w.cursor()))
}

func (w *RenderWindow) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	var k interaction.Key
	switch key {
	case glfw.KeyEqual, glfw.KeyKPAdd:
		k = interaction.KeyZoomIn
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		k = interaction.KeyZoomOut
	case glfw.KeyR:
		k = interaction.KeyReset
	case glfw.KeyS:
		k = interaction.KeySave
	case glfw.KeyEscape:
		k = interaction.KeyQuit
	default:
		return
	}

	// zoom keys repeat while held, the rest fire once
	if action == glfw.Repeat && k != interaction.KeyZoomIn && k != interaction.KeyZoomOut {
		return
	}
	w.events = append(w.events, interaction.KeyEvent(k))
}
