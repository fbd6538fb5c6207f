// Package layer reaches below GTK for what it does not expose: the floating
// window level, running without a Dock icon, the menu bar item and
// application activation notifications.
package layer

import (
	"errors"

	"github.com/gotk3/gotk3/gtk"
)

// Level is the stacking level of the panel window.
type Level int

const (
	LevelNormal Level = iota
	LevelFloating
)

// Configure applies the panel hints to a realized window. keepAbove selects
// the floating level.
func Configure(window *gtk.Window, keepAbove bool) error {
	level := LevelNormal
	if keepAbove {
		level = LevelFloating
	}
	window.SetKeepAbove(keepAbove)
	return setLevel(window, level)
}

// ErrNoStatusItem is returned where no menu bar item can be installed.
var ErrNoStatusItem = errors.New("menu bar item not supported on this platform")

// ErrNoActivationEvents is returned where the toolkit reports no
// application-level activation changes.
var ErrNoActivationEvents = errors.New("activation notifications not supported on this platform")

// ActivationHandlers receive application-level activation changes. Either
// may be nil.
type ActivationHandlers struct {
	WillBecomeActive func()
	WillResignActive func()
}

type activationChange int

const (
	becomeActive activationChange = iota
	resignActive
)

func (h ActivationHandlers) deliver(change activationChange) {
	switch change {
	case becomeActive:
		if h.WillBecomeActive != nil {
			h.WillBecomeActive()
		}
	case resignActive:
		if h.WillResignActive != nil {
			h.WillResignActive()
		}
	}
}
