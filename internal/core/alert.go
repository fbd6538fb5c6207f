package core

import (
	"log"
	"os/exec"
	"runtime"

	"github.com/gotk3/gotk3/gtk"

	"github.com/chess10kp/walter/internal/platform"
)

// permissionAlert asks the user to grant accessibility access and offers to
// open the settings pane.
type permissionAlert struct {
	parent *gtk.Window
}

func (a *permissionAlert) PresentPermissionAlert() {
	dialog := gtk.MessageDialogNew(a.parent, gtk.DIALOG_MODAL, gtk.MESSAGE_WARNING, gtk.BUTTONS_NONE,
		"Accessibility Permissions Required")
	dialog.FormatSecondaryText("Please enable Walter to access Accessibility features.")
	dialog.AddButton("Open System Preferences", gtk.RESPONSE_ACCEPT)
	dialog.AddButton("Cancel", gtk.RESPONSE_CANCEL)
	dialog.SetKeepAbove(true)

	response := dialog.Run()
	dialog.Destroy()

	if response == gtk.RESPONSE_ACCEPT {
		if err := openURI(platform.AccessibilitySettingsURI); err != nil {
			log.Printf("Failed to open accessibility settings: %v", err)
		}
	}
}

func openURI(uri string) error {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	return exec.Command(opener, uri).Start()
}
