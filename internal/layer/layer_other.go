//go:build !darwin || !cgo

package layer

import "github.com/gotk3/gotk3/gtk"

// Elsewhere GTK's keep-above hint is all there is.
func setLevel(*gtk.Window, Level) error { return nil }

func SetAccessory() {}

func ActivateApp() {}

func HideApp() {}

// InstallStatusItem reports ErrNoStatusItem: there is no menu bar to
// install into.
func InstallStatusItem(string, string, func()) error { return ErrNoStatusItem }

func RemoveStatusItem() {}

// ObserveActivation reports ErrNoActivationEvents; callers fall back to
// window focus.
func ObserveActivation(ActivationHandlers) error { return ErrNoActivationEvents }

func StopObservingActivation() {}
