package main

import (
	"fmt"

	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/duofractal/ui"
)

func NewConfigWindow(panel *ui.Panel, quit func(error)) (*ConfigWindow, error) {
	var err error
	w := &ConfigWindow{
		panel:  panel,
		checks: make(map[ui.Toggle]*gtk.CheckButton),
		scales: make(map[ui.Channel]*gtk.Scale),
	}

	w.Window, err = gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("gtk.WindowNew: %w", err)
	}

	w.SetTitle("DuoFractal Controls")
	w.SetDefaultSize(280, 300)
	w.Connect("destroy", func() {
		w.closed = true
		quit(nil)
	})

	grid, err := gtk.GridNew()
	if err != nil {
		return nil, fmt.Errorf("gtk.GridNew: %w", err)
	}
	grid.SetOrientation(gtk.ORIENTATION_VERTICAL)
	grid.SetRowSpacing(4)
	grid.SetBorderWidth(8)

	for _, toggle := range ui.Toggles() {
		toggle := toggle
		check, err := gtk.CheckButtonNewWithLabel(toggle.String())
		if err != nil {
			return nil, fmt.Errorf("gtk.CheckButtonNewWithLabel: %w", err)
		}

		check.Connect("toggled", func() {
			if w.syncing {
				return
			}
			panel.SetChecked(toggle, check.GetActive())
			w.version = panel.Version()
		})

		w.checks[toggle] = check
		grid.Add(check)
	}

	for _, channel := range ui.Channels() {
		channel := channel
		label, err := gtk.LabelNew(channel.String())
		if err != nil {
			return nil, fmt.Errorf("gtk.LabelNew: %w", err)
		}
		label.SetXAlign(0)

		scale, err := gtk.ScaleNewWithRange(gtk.ORIENTATION_HORIZONTAL, 0, 1, 0.01)
		if err != nil {
			return nil, fmt.Errorf("gtk.ScaleNewWithRange: %w", err)
		}
		scale.SetHExpand(true)

		scale.Connect("value-changed", func() {
			if w.syncing {
				return
			}
			panel.SetValue(channel, scale.GetValue())
			w.version = panel.Version()
		})

		w.scales[channel] = scale
		grid.Add(label)
		grid.Add(scale)
	}

	w.status, err = gtk.LabelNew("")
	if err != nil {
		return nil, fmt.Errorf("gtk.LabelNew: %w", err)
	}
	w.status.SetSelectable(true)
	w.status.SetLineWrap(true)
	w.status.SetXAlign(0)
	grid.Add(w.status)

	w.Add(grid)
	w.sync()
	w.ShowAll()

	return w, nil
}

// ConfigWindow mirrors the control strip of the render window. Changes made in
// either place show up in both.
type ConfigWindow struct {
	*gtk.Window
	panel  *ui.Panel
	checks map[ui.Toggle]*gtk.CheckButton
	scales map[ui.Channel]*gtk.Scale
	status *gtk.Label

	// panel version the widgets last showed
	version uint64
	syncing bool
	closed  bool
}

// Update refreshes the widgets if the panel changed and shows status.
func (w *ConfigWindow) Update(status string) {
	if w.panel.Version() != w.version {
		w.sync()
	}

	if text, err := w.status.GetText(); err != nil || text != status {
		w.status.SetText(status)
	}
}

func (w *ConfigWindow) sync() {
	w.syncing = true
	defer func() { w.syncing = false }()

	for toggle, check := range w.checks {
		check.SetActive(w.panel.Checked(toggle))
	}
	for channel, scale := range w.scales {
		scale.SetValue(w.panel.Value(channel))
	}
	w.version = w.panel.Version()
}

// PumpGTK runs pending GTK events without blocking.
func PumpGTK() {
	for gtk.EventsPending() {
		gtk.MainIteration()
	}
}
