// Package ui implements the control strip below the fractal panes: a row of
// checkboxes and colour sliders, and the snapshot of their state that the
// renderer reads once per frame.
package ui

import "github.com/go-gl/mathgl/mgl64"

// State is the per-frame snapshot of every control, shared by both panes.
type State struct {
	LogShading        bool
	Almond            bool
	ScaleIterations   bool
	EmulatedPrecision bool

	// Colour coefficients, each in [0,1].
	Colour mgl64.Vec3
}

func DefaultState() State {
	return State{
		LogShading:      true,
		ScaleIterations: true,
		Colour:          mgl64.Vec3{0.1, 0.48, 0.32},
	}
}

type Toggle int

const (
	LogShading Toggle = iota
	ScaleIterations
	Almond
	EmulatePrecision
	numToggles
)

func (t Toggle) String() string {
	switch t {
	case LogShading:
		return "Log Shading"
	case ScaleIterations:
		return "Scale Iterations"
	case Almond:
		return "Almond Bread"
	case EmulatePrecision:
		return "Emulate Double"
	}
	return "unknown"
}

func Toggles() []Toggle {
	return []Toggle{LogShading, ScaleIterations, Almond, EmulatePrecision}
}

type Channel int

const (
	Red Channel = iota
	Green
	Blue
	numChannels
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "Red Coefficient"
	case Green:
		return "Green Coefficient"
	case Blue:
		return "Blue Coefficient"
	}
	return "unknown"
}

func Channels() []Channel {
	return []Channel{Red, Green, Blue}
}
