package window

import (
	"errors"
	"log"
	"time"
)

var slideLogger = log.New(log.Writer(), "[SLIDE] ", log.LstdFlags|log.Lmicroseconds)

// ErrNoScreen is returned when no monitor work area is available.
var ErrNoScreen = errors.New("no screen available")

// Screen reports the work area of the primary monitor.
type Screen interface {
	WorkArea() (Rect, error)
}

// Surface is the host window whose frame the controller owns.
type Surface interface {
	Frame() Rect
	SetFrame(r Rect)
}

// Scheduler runs fn on the UI thread every interval until fn returns false.
type Scheduler interface {
	Every(interval time.Duration, fn func() bool)
}

// Options configures a Controller.
type Options struct {
	Width         int
	MinHeight     int
	Inset         int
	Duration      time.Duration
	FrameInterval time.Duration
}

// Controller slides the panel between its off-screen and on-screen frames.
//
// Every slide toward a new side bumps the generation; frames and completion
// callbacks of an older generation are dropped, so the most recent request
// always wins. A request toward the side an in-flight slide is already
// heading to joins that slide.
type Controller struct {
	screen    Screen
	surface   Surface
	scheduler Scheduler
	opts      Options

	size       Size
	side       Direction
	generation uint64
	animating  bool
	pending    []func()
}

func NewController(screen Screen, surface Surface, scheduler Scheduler, opts Options) *Controller {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 16 * time.Millisecond
	}
	return &Controller{
		screen:    screen,
		surface:   surface,
		scheduler: scheduler,
		opts:      opts,
		size:      Size{Width: opts.Width, Height: opts.MinHeight},
		side:      Offscreen,
	}
}

// Side returns the side the panel rests on or is heading to.
func (c *Controller) Side() Direction { return c.side }

// Animating reports whether a slide is in flight.
func (c *Controller) Animating() bool { return c.animating }

// Generation returns the current animation generation.
func (c *Controller) Generation() uint64 { return c.generation }

// Target computes the frame for dir from the current work area.
func (c *Controller) Target(dir Direction) (Rect, error) {
	work, err := c.screen.WorkArea()
	if err != nil {
		return Rect{}, err
	}
	if work.Width <= 0 || work.Height <= 0 {
		return Rect{}, ErrNoScreen
	}
	return RectFor(dir, work, c.size, c.opts.Inset), nil
}

// Place moves the panel to dir without animating, superseding any slide.
func (c *Controller) Place(dir Direction) error {
	target, err := c.Target(dir)
	if err != nil {
		return err
	}
	c.generation++
	c.side = dir
	c.animating = false
	c.pending = nil
	c.surface.SetFrame(target)
	return nil
}

// Slide animates the panel from its current frame to the frame of dir and
// calls done once it lands there. Without a screen the call is a no-op and
// done is never called.
func (c *Controller) Slide(dir Direction, done func()) {
	target, err := c.Target(dir)
	if err != nil {
		slideLogger.Printf("skipping %s slide: %v", dir, err)
		return
	}

	if c.animating && c.side == dir {
		if done != nil {
			c.pending = append(c.pending, done)
		}
		return
	}

	c.generation++
	gen := c.generation
	c.side = dir
	c.pending = nil
	if done != nil {
		c.pending = append(c.pending, done)
	}

	from := c.surface.Frame()
	frames := int((c.opts.Duration + c.opts.FrameInterval - 1) / c.opts.FrameInterval)
	slideLogger.Printf("gen=%d %s %v -> %v in %d frames", gen, dir, from, target, frames)

	if frames <= 0 || from == target {
		c.surface.SetFrame(target)
		c.finish(gen)
		return
	}

	c.animating = true
	step := 0
	c.scheduler.Every(c.opts.FrameInterval, func() bool {
		if gen != c.generation {
			return false
		}
		step++
		if step >= frames {
			c.surface.SetFrame(target)
			c.finish(gen)
			return false
		}
		c.surface.SetFrame(Interpolate(from, target, EaseInOut(float64(step)/float64(frames))))
		return true
	})
}

// SyncContentSize resizes the panel to match its content without animating.
// The panel stays anchored to the side it rests on; during a slide the new
// size is applied when the slide lands.
func (c *Controller) SyncContentSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if height < c.opts.MinHeight {
		height = c.opts.MinHeight
	}
	size := Size{Width: width, Height: height}
	if size == c.size {
		return
	}
	c.size = size

	if c.animating {
		return
	}
	target, err := c.Target(c.side)
	if err != nil {
		slideLogger.Printf("skipping resize: %v", err)
		return
	}
	c.surface.SetFrame(target)
}

func (c *Controller) finish(gen uint64) {
	if gen != c.generation {
		return
	}
	c.animating = false

	// The content size or the screen may have changed mid-slide.
	if target, err := c.Target(c.side); err == nil && c.surface.Frame() != target {
		c.surface.SetFrame(target)
	}

	callbacks := c.pending
	c.pending = nil
	for _, fn := range callbacks {
		fn()
	}
}
