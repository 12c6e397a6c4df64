// Package interaction turns pointer, scroll and key input into pan and zoom
// operations on a pane's viewport.
package interaction

import "github.com/go-gl/mathgl/mgl64"

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonTertiary:
		return "tertiary"
	}
	return "unknown"
}

type Key int

const (
	KeyZoomIn Key = iota
	KeyZoomOut
	KeyReset
	KeySave
	KeyQuit
)

type EventKind int

const (
	PointerPress EventKind = iota
	PointerRelease
	PointerMove
	Scroll
	KeyPress
)

// Event is a single input event in device units of the window surface.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Pos    mgl64.Vec2
	Button Button
	Delta  float64
	Key    Key
}

func PressEvent(button Button, pos mgl64.Vec2) Event {
	return Event{Kind: PointerPress, Button: button, Pos: pos}
}

func ReleaseEvent(button Button, pos mgl64.Vec2) Event {
	return Event{Kind: PointerRelease, Button: button, Pos: pos}
}

func MoveEvent(pos mgl64.Vec2) Event {
	return Event{Kind: PointerMove, Pos: pos}
}

// ScrollEvent carries a signed wheel delta; positive is away from the user.
func ScrollEvent(delta float64, pos mgl64.Vec2) Event {
	return Event{Kind: Scroll, Delta: delta, Pos: pos}
}

func KeyEvent(key Key) Event {
	return Event{Kind: KeyPress, Key: key}
}
