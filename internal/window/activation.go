package window

import "log"

// Application is the process-level activation state of the panel.
type Application interface {
	IsActive() bool
	Activate()
	Hide()
}

// Slider animates the panel to a side.
type Slider interface {
	Slide(dir Direction, done func())
}

// Activation turns activation changes into slides. ToggleActivity is the
// single entry point for the hotkey, the status icon and IPC; the
// WillBecomeActive/WillResignActive hooks are fed by the toolkit so that
// activation from anywhere else animates the panel too.
type Activation struct {
	app    Application
	slider Slider
}

func NewActivation(app Application, slider Slider) *Activation {
	return &Activation{app: app, slider: slider}
}

// ToggleActivity hides the panel when active and activates it otherwise.
func (a *Activation) ToggleActivity() {
	if a.app.IsActive() {
		a.Deactivate(nil)
		return
	}
	log.Printf("Activating panel")
	a.app.Activate()
}

// Show activates the panel if it is not active already.
func (a *Activation) Show() {
	if !a.app.IsActive() {
		a.app.Activate()
	}
}

// Deactivate slides the panel off screen, then runs after and hides the
// application.
func (a *Activation) Deactivate(after func()) {
	log.Printf("Deactivating panel")
	a.slider.Slide(Offscreen, func() {
		if after != nil {
			after()
		}
		a.app.Hide()
	})
}

func (a *Activation) WillBecomeActive() {
	a.slider.Slide(Onscreen, nil)
}

func (a *Activation) WillResignActive() {
	a.slider.Slide(Offscreen, nil)
}
