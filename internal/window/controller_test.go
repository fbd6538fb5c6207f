package window

import (
	"testing"
	"time"
)

type fakeScreen struct {
	work Rect
	err  error
}

func (s *fakeScreen) WorkArea() (Rect, error) { return s.work, s.err }

type fakeSurface struct {
	frame  Rect
	frames []Rect
}

func (s *fakeSurface) Frame() Rect { return s.frame }

func (s *fakeSurface) SetFrame(r Rect) {
	s.frame = r
	s.frames = append(s.frames, r)
}

// fakeScheduler runs queued tasks one tick at a time.
type fakeScheduler struct {
	tasks []func() bool
}

func (s *fakeScheduler) Every(_ time.Duration, fn func() bool) {
	s.tasks = append(s.tasks, fn)
}

func (s *fakeScheduler) tick() {
	// Tasks scheduled while ticking run from the next tick on.
	current := s.tasks
	s.tasks = nil
	for _, fn := range current {
		if fn() {
			s.tasks = append(s.tasks, fn)
		}
	}
}

func (s *fakeScheduler) runAll() int {
	ticks := 0
	for len(s.tasks) > 0 {
		s.tick()
		ticks++
		if ticks > 10000 {
			panic("animation never finished")
		}
	}
	return ticks
}

var testWork = Rect{X: 0, Y: 25, Width: 1440, Height: 875}

func newTestController() (*Controller, *fakeScreen, *fakeSurface, *fakeScheduler) {
	screen := &fakeScreen{work: testWork}
	surface := &fakeSurface{}
	sched := &fakeScheduler{}
	c := NewController(screen, surface, sched, Options{
		Width:         400,
		MinHeight:     120,
		Inset:         10,
		Duration:      160 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
	})
	return c, screen, surface, sched
}

func TestRects(t *testing.T) {
	size := Size{Width: 400, Height: 300}

	on := OnScreenRect(testWork, size, 10)
	want := Rect{X: 1440 - 400 - 10, Y: 35, Width: 400, Height: 300}
	if on != want {
		t.Errorf("OnScreenRect = %v, want %v", on, want)
	}

	off := OffScreenRect(testWork, size, 10)
	if off.X != 1440 {
		t.Errorf("OffScreenRect should start at the right edge, got x=%d", off.X)
	}
	if off.Y != on.Y || off.Width != on.Width || off.Height != on.Height {
		t.Errorf("Off-screen rect %v should only differ in x from %v", off, on)
	}

	tall := OnScreenRect(testWork, Size{Width: 400, Height: 5000}, 10)
	if tall.Height != testWork.Height-20 {
		t.Errorf("Expected height clamped to %d, got %d", testWork.Height-20, tall.Height)
	}
}

func TestInterpolateAndEase(t *testing.T) {
	a := Rect{X: 0, Y: 10, Width: 100, Height: 100}
	b := Rect{X: 1000, Y: 10, Width: 100, Height: 100}

	if Interpolate(a, b, 0) != a || Interpolate(a, b, -1) != a {
		t.Error("t<=0 should return the start")
	}
	if Interpolate(a, b, 1) != b || Interpolate(a, b, 2) != b {
		t.Error("t>=1 should return the end exactly")
	}
	if mid := Interpolate(a, b, 0.5); mid.X != 500 || mid.Y != 10 {
		t.Errorf("Unexpected midpoint %v", mid)
	}

	if EaseInOut(0) != 0 || EaseInOut(1) != 1 || EaseInOut(0.5) != 0.5 {
		t.Error("EaseInOut endpoints/midpoint wrong")
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseInOut not monotonic at %d", i)
		}
		prev = v
	}
}

func TestSlideOnscreenLandsExactly(t *testing.T) {
	c, _, surface, sched := newTestController()
	if err := c.Place(Offscreen); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	start := surface.frame

	done := 0
	c.Slide(Onscreen, func() { done++ })
	if !c.Animating() {
		t.Fatal("Expected slide to be in flight")
	}

	ticks := sched.runAll()
	if ticks != 10 {
		t.Errorf("Expected 10 frames, got %d", ticks)
	}

	target, _ := c.Target(Onscreen)
	if surface.frame != target {
		t.Errorf("Expected final frame %v, got %v", target, surface.frame)
	}
	if done != 1 {
		t.Errorf("Expected done once, got %d", done)
	}
	if c.Animating() {
		t.Error("Expected animation to be finished")
	}

	for _, f := range surface.frames[1:] {
		if f.Y != start.Y {
			t.Errorf("Slide should be horizontal, got frame %v", f)
		}
		if f.X > start.X || f.X < target.X {
			t.Errorf("Frame %v left the path between %d and %d", f, start.X, target.X)
		}
	}
}

func TestSlideOnThenOffEndsOffscreen(t *testing.T) {
	c, _, surface, sched := newTestController()
	c.Place(Offscreen)

	onDone, offDone := 0, 0
	c.Slide(Onscreen, func() { onDone++ })
	sched.tick()
	sched.tick()
	c.Slide(Offscreen, func() { offDone++ })
	sched.runAll()

	target, _ := c.Target(Offscreen)
	if surface.frame != target {
		t.Errorf("Expected exact off-screen frame %v, got %v", target, surface.frame)
	}
	if onDone != 0 {
		t.Errorf("Superseded slide must not complete, got %d", onDone)
	}
	if offDone != 1 {
		t.Errorf("Expected off-screen completion once, got %d", offDone)
	}
	if c.Side() != Offscreen {
		t.Errorf("Expected side offscreen, got %s", c.Side())
	}
}

func TestSlideImmediateReversal(t *testing.T) {
	c, _, surface, sched := newTestController()
	c.Place(Offscreen)

	c.Slide(Onscreen, nil)
	c.Slide(Offscreen, nil)
	sched.runAll()

	target, _ := c.Target(Offscreen)
	if surface.frame != target {
		t.Errorf("Expected exact off-screen frame %v, got %v", target, surface.frame)
	}
}

func TestSlideSameDirectionJoins(t *testing.T) {
	c, _, _, sched := newTestController()
	c.Place(Offscreen)

	first, second := 0, 0
	c.Slide(Onscreen, func() { first++ })
	gen := c.Generation()
	sched.tick()
	c.Slide(Onscreen, func() { second++ })

	if c.Generation() != gen {
		t.Error("Same-direction slide should not start a new generation")
	}
	sched.runAll()
	if first != 1 || second != 1 {
		t.Errorf("Expected both callbacks once, got %d and %d", first, second)
	}
}

func TestSlideWithoutScreenIsNoOp(t *testing.T) {
	c, screen, surface, sched := newTestController()
	c.Place(Offscreen)
	before := surface.frame

	screen.err = ErrNoScreen
	called := false
	c.Slide(Onscreen, func() { called = true })
	sched.runAll()

	if called {
		t.Error("done must not run without a screen")
	}
	if surface.frame != before {
		t.Errorf("Frame changed without a screen: %v", surface.frame)
	}

	screen.err = nil
	screen.work = Rect{}
	if _, err := c.Target(Onscreen); err != ErrNoScreen {
		t.Errorf("Expected ErrNoScreen for empty work area, got %v", err)
	}
}

func TestTargetsFollowScreenChanges(t *testing.T) {
	c, screen, surface, sched := newTestController()
	c.Place(Offscreen)
	c.Slide(Onscreen, nil)
	sched.runAll()

	screen.work = Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	c.Slide(Offscreen, nil)
	sched.runAll()

	if surface.frame.X != 1920 {
		t.Errorf("Expected off-screen x to follow the new screen width, got %d", surface.frame.X)
	}
}

func TestSlideLandsOnNewScreenMidSlide(t *testing.T) {
	c, screen, surface, sched := newTestController()
	c.Place(Offscreen)

	done := 0
	c.Slide(Onscreen, func() { done++ })
	sched.tick()
	sched.tick()

	screen.work = Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	sched.runAll()

	want, err := c.Target(Onscreen)
	if err != nil {
		t.Fatalf("Target failed: %v", err)
	}
	if surface.frame != want {
		t.Errorf("Expected panel on the new screen at %v, got %v", want, surface.frame)
	}
	if want.X != 1920-400-10 {
		t.Errorf("Expected target x on the new screen, got %d", want.X)
	}
	if done != 1 {
		t.Errorf("Expected done once, got %d", done)
	}
}

func TestZeroDurationSnaps(t *testing.T) {
	screen := &fakeScreen{work: testWork}
	surface := &fakeSurface{}
	sched := &fakeScheduler{}
	c := NewController(screen, surface, sched, Options{Width: 400, MinHeight: 120, Inset: 10})

	done := false
	c.Slide(Onscreen, func() { done = true })
	if !done || len(sched.tasks) != 0 {
		t.Error("Zero duration should land synchronously")
	}
	target, _ := c.Target(Onscreen)
	if surface.frame != target {
		t.Errorf("Expected %v, got %v", target, surface.frame)
	}
}

func TestSyncContentSize(t *testing.T) {
	c, _, surface, sched := newTestController()
	c.Place(Onscreen)

	c.SyncContentSize(400, 320)
	if surface.frame.Height != 320 {
		t.Errorf("Expected height 320, got %d", surface.frame.Height)
	}
	target, _ := c.Target(Onscreen)
	if surface.frame != target {
		t.Errorf("Resized frame %v should stay anchored at %v", surface.frame, target)
	}

	c.SyncContentSize(400, 10)
	if surface.frame.Height != 120 {
		t.Errorf("Expected min height 120, got %d", surface.frame.Height)
	}

	// Mid-slide resizes are applied on landing.
	c.Slide(Offscreen, nil)
	sched.tick()
	c.SyncContentSize(400, 500)
	if surface.frame.Height == 500 {
		t.Error("Resize should wait for the slide to land")
	}
	sched.runAll()
	target, _ = c.Target(Offscreen)
	if surface.frame != target || surface.frame.Height != 500 {
		t.Errorf("Expected %v with height 500, got %v", target, surface.frame)
	}
}
