package core

import (
	"time"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/chess10kp/walter/internal/layer"
	"github.com/chess10kp/walter/internal/window"
)

// dispatch runs fn on the GTK main thread.
func dispatch(fn func()) {
	glib.IdleAdd(fn)
}

// monitorScreen reads the work area of the primary monitor on every call.
type monitorScreen struct{}

func (monitorScreen) WorkArea() (window.Rect, error) {
	display, err := gdk.DisplayGetDefault()
	if err != nil || display == nil {
		return window.Rect{}, window.ErrNoScreen
	}

	monitor, err := display.GetPrimaryMonitor()
	if err != nil || monitor == nil {
		// Some backends report no primary monitor.
		monitor, err = display.GetMonitor(0)
		if err != nil || monitor == nil {
			return window.Rect{}, window.ErrNoScreen
		}
	}

	area := monitor.GetWorkarea()
	if area == nil {
		return window.Rect{}, window.ErrNoScreen
	}
	return window.Rect{
		X:      area.GetX(),
		Y:      area.GetY(),
		Width:  area.GetWidth(),
		Height: area.GetHeight(),
	}, nil
}

// windowSurface moves and resizes the panel window. The last frame set is
// the source of truth; GTK reports positions asynchronously.
type windowSurface struct {
	win   *gtk.Window
	frame window.Rect
}

func (s *windowSurface) Frame() window.Rect { return s.frame }

func (s *windowSurface) SetFrame(r window.Rect) {
	if r.Width != s.frame.Width || r.Height != s.frame.Height {
		s.win.Resize(r.Width, r.Height)
	}
	s.win.Move(r.X, r.Y)
	s.frame = r
}

// glibScheduler drives animation frames from the GTK main loop.
type glibScheduler struct{}

func (glibScheduler) Every(interval time.Duration, fn func() bool) {
	ms := uint(interval / time.Millisecond)
	if ms == 0 {
		ms = 1
	}
	glib.TimeoutAdd(ms, fn)
}

// panelApplication maps process activation onto the panel window: the
// application is active while the panel holds focus.
type panelApplication struct {
	win     *gtk.Window
	surface *windowSurface
}

func (a *panelApplication) IsActive() bool {
	return a.win.IsVisible() && a.win.IsActive()
}

func (a *panelApplication) Activate() {
	a.show()
	layer.ActivateApp()
	a.win.Present()
}

// Reveal maps a hidden panel when the process was activated some other way.
func (a *panelApplication) Reveal() {
	if a.win.IsVisible() {
		return
	}
	a.show()
	a.win.Present()
}

// show maps the window at its current frame so the slide starts from off
// screen.
func (a *panelApplication) show() {
	frame := a.surface.Frame()
	a.win.Move(frame.X, frame.Y)
	a.win.ShowAll()
}

func (a *panelApplication) Hide() {
	a.win.Hide()
	layer.HideApp()
}
