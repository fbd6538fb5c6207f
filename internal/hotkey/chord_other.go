//go:build !darwin

package hotkey

import "golang.design/x/hotkey"

// Platforms without a Command key use Control in its place.
var defaultModifiers = []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}

var DefaultChord = Chord{Modifiers: []string{"Ctrl", "Shift"}, Key: "F"}
