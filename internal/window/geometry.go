package window

import (
	"fmt"
	"math"
)

// Direction is the side of the screen edge a slide heads to.
type Direction int

const (
	Offscreen Direction = iota
	Onscreen
)

func (d Direction) String() string {
	if d == Onscreen {
		return "onscreen"
	}
	return "offscreen"
}

// Rect is a window frame in screen coordinates, origin top-left.
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Size is a content size.
type Size struct {
	Width, Height int
}

// OnScreenRect is flush against the right edge of the work area, inset
// pixels away from it and from the top.
func OnScreenRect(work Rect, size Size, inset int) Rect {
	return Rect{
		X:      work.X + work.Width - size.Width - inset,
		Y:      work.Y + inset,
		Width:  size.Width,
		Height: clampHeight(size.Height, work.Height-2*inset),
	}
}

// OffScreenRect lies fully past the right edge of the work area at the same
// height as OnScreenRect so a slide between them is purely horizontal.
func OffScreenRect(work Rect, size Size, inset int) Rect {
	r := OnScreenRect(work, size, inset)
	r.X = work.X + work.Width
	return r
}

// RectFor returns the rectangle of a side.
func RectFor(dir Direction, work Rect, size Size, inset int) Rect {
	if dir == Onscreen {
		return OnScreenRect(work, size, inset)
	}
	return OffScreenRect(work, size, inset)
}

// Interpolate returns the frame a fraction t of the way from a to b.
// t is clamped to [0, 1]; t == 1 yields exactly b.
func Interpolate(a, b Rect, t float64) Rect {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y int) int {
		return x + int(math.Round(float64(y-x)*t))
	}
	return Rect{
		X:      lerp(a.X, b.X),
		Y:      lerp(a.Y, b.Y),
		Width:  lerp(a.Width, b.Width),
		Height: lerp(a.Height, b.Height),
	}
}

// EaseInOut is a cubic ease-in-out curve over [0, 1].
func EaseInOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

func clampHeight(h, max int) int {
	if max > 0 && h > max {
		return max
	}
	return h
}
