package window

import (
	"testing"
)

// fakeApp mimics the toolkit: activating or hiding delivers the matching
// activation notification.
type fakeApp struct {
	active     bool
	activation *Activation
	events     []string
}

func (a *fakeApp) IsActive() bool { return a.active }

func (a *fakeApp) Activate() {
	a.events = append(a.events, "activate")
	a.active = true
	a.activation.WillBecomeActive()
}

func (a *fakeApp) Hide() {
	a.events = append(a.events, "hide")
	a.active = false
	a.activation.WillResignActive()
}

func newTestActivation() (*Activation, *fakeApp, *Controller, *fakeSurface, *fakeScheduler) {
	c, _, surface, sched := newTestController()
	c.Place(Offscreen)
	app := &fakeApp{}
	activation := NewActivation(app, c)
	app.activation = activation
	return activation, app, c, surface, sched
}

func TestToggleActivityScenario(t *testing.T) {
	activation, app, c, surface, sched := newTestActivation()

	activation.ToggleActivity()
	if !app.active {
		t.Fatal("Expected application to be active")
	}
	sched.runAll()
	on, _ := c.Target(Onscreen)
	if surface.frame != on {
		t.Errorf("Expected panel on screen at %v, got %v", on, surface.frame)
	}

	activation.ToggleActivity()
	if !app.active {
		t.Error("Application should stay active until the panel is off screen")
	}
	sched.runAll()
	off, _ := c.Target(Offscreen)
	if surface.frame != off {
		t.Errorf("Expected panel off screen at %v, got %v", off, surface.frame)
	}
	if app.active {
		t.Error("Expected application to be deactivated after the slide")
	}

	want := []string{"activate", "hide"}
	if len(app.events) != len(want) || app.events[0] != want[0] || app.events[1] != want[1] {
		t.Errorf("Expected events %v, got %v", want, app.events)
	}
}

func TestDeactivateRunsAfterBeforeHide(t *testing.T) {
	activation, app, _, _, sched := newTestActivation()
	activation.ToggleActivity()
	sched.runAll()

	var order []string
	activation.Deactivate(func() {
		order = append(order, "after")
		if !app.active {
			t.Error("after should run before the application hides")
		}
	})
	sched.runAll()

	if len(order) != 1 {
		t.Fatalf("Expected after to run once, got %d", len(order))
	}
	if app.events[len(app.events)-1] != "hide" {
		t.Errorf("Expected hide last, got %v", app.events)
	}
}

func TestResignDuringDeactivateStillHides(t *testing.T) {
	activation, app, _, _, sched := newTestActivation()
	activation.ToggleActivity()
	sched.runAll()

	reset := false
	activation.Deactivate(func() { reset = true })
	sched.tick()
	// Focus moves elsewhere mid-slide.
	activation.WillResignActive()
	sched.runAll()

	if !reset {
		t.Error("Deactivate callback lost when focus changed mid-slide")
	}
	if app.active {
		t.Error("Expected application hidden")
	}
}

func TestActivationDuringDeactivateCancelsHide(t *testing.T) {
	activation, app, c, surface, sched := newTestActivation()
	activation.ToggleActivity()
	sched.runAll()

	activation.Deactivate(nil)
	sched.tick()
	activation.WillBecomeActive()
	sched.runAll()

	if !app.active {
		t.Error("A newer on-screen slide must cancel the pending hide")
	}
	on, _ := c.Target(Onscreen)
	if surface.frame != on {
		t.Errorf("Expected panel back on screen, got %v", surface.frame)
	}
}

func TestShowIsIdempotent(t *testing.T) {
	activation, app, _, _, sched := newTestActivation()
	activation.Show()
	activation.Show()
	sched.runAll()
	if len(app.events) != 1 {
		t.Errorf("Expected a single activation, got %v", app.events)
	}
}
