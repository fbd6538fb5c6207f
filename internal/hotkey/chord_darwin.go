//go:build darwin

package hotkey

import "golang.design/x/hotkey"

var defaultModifiers = []hotkey.Modifier{hotkey.ModCmd, hotkey.ModShift}

// DefaultChord is Command+Shift+F.
var DefaultChord = Chord{Modifiers: []string{"Cmd", "Shift"}, Key: "F"}
