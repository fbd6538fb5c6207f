//go:build darwin && cgo

package layer

/*
#cgo CFLAGS: -x objective-c
#cgo pkg-config: gtk+-3.0
#cgo LDFLAGS: -framework AppKit
#import <AppKit/AppKit.h>
#include <gtk/gtk.h>
#include <gdk/gdkquartz.h>

static int walter_set_level(GtkWidget *widget, int floating) {
    GdkWindow *gdkWindow = gtk_widget_get_window(widget);
    if (gdkWindow == NULL) {
        return -1;
    }
    NSWindow *window = gdk_quartz_window_get_nswindow(gdkWindow);
    if (window == nil) {
        return -1;
    }
    [window setLevel:(floating ? NSFloatingWindowLevel : NSNormalWindowLevel)];
    [window setCollectionBehavior:NSWindowCollectionBehaviorCanJoinAllSpaces |
                                  NSWindowCollectionBehaviorFullScreenAuxiliary];
    [window setHasShadow:YES];
    return 0;
}

static void walter_set_accessory(void) {
    [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
}

static void walter_activate_app(void) {
    [NSApp activateIgnoringOtherApps:YES];
}

static void walter_hide_app(void) {
    [NSApp hide:nil];
}
*/
import "C"
import (
	"errors"
	"unsafe"

	"github.com/gotk3/gotk3/gtk"
)

var errNotRealized = errors.New("window has no native surface yet")

func setLevel(window *gtk.Window, level Level) error {
	floating := C.int(0)
	if level == LevelFloating {
		floating = 1
	}
	if C.walter_set_level((*C.GtkWidget)(unsafe.Pointer(window.Native())), floating) != 0 {
		return errNotRealized
	}
	return nil
}

// SetAccessory removes the Dock icon and app menu.
func SetAccessory() {
	C.walter_set_accessory()
}

// ActivateApp brings the process to the front.
func ActivateApp() {
	C.walter_activate_app()
}

// HideApp returns focus to the previously active application.
func HideApp() {
	C.walter_hide_app()
}
