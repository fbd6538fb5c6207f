// Package platform abstracts the OS accessibility layer used by the probe.
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// AccessibilitySettingsURI opens the Accessibility pane of the Privacy settings.
const AccessibilitySettingsURI = "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"

// ErrUnsupported is returned on platforms without an accessibility backend.
var ErrUnsupported = fmt.Errorf("accessibility inspection is not supported on %s/%s; supported: darwin with cgo", runtime.GOOS, runtime.GOARCH)

var (
	ErrNotTrusted     = errors.New("accessibility permission not granted")
	ErrNoFrontmostApp = errors.New("no frontmost application")
)

// Inspector reads accessibility information about running applications.
type Inspector interface {
	// IsTrusted reports whether the process holds accessibility permission.
	IsTrusted() bool

	FrontmostApp() (App, error)

	// Windows lists the accessibility windows of the application.
	Windows(pid int) ([]Window, error)

	// AttributeNames lists the attributes exposed by the application element.
	AttributeNames(pid int) ([]string, error)

	// ElementAt returns the element of the application at screen coordinates,
	// or nil when there is none.
	ElementAt(pid int, x, y float64) (*Element, error)

	// WindowsForBundle lists the windows of the first running application
	// with the bundle identifier.
	WindowsForBundle(bundleID string) ([]Window, error)
}

// NewInspectorFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewInspectorFunc func() (Inspector, error)

// NewInspector returns an Inspector for the current OS.
func NewInspector() (Inspector, error) {
	if NewInspectorFunc == nil {
		return nil, ErrUnsupported
	}
	return NewInspectorFunc()
}
