//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework ApplicationServices -framework CoreFoundation -framework Foundation
#import <AppKit/AppKit.h>
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    char *title;
    double x, y, width, height;
} WalterWindow;

static int walter_is_trusted(void) {
    return AXIsProcessTrusted();
}

static char *walter_strdup_ns(NSString *s) {
    const char *utf8 = s ? [s UTF8String] : NULL;
    return strdup(utf8 ? utf8 : "");
}

static int walter_frontmost_app(char **name, char **bundleID, pid_t *pid) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        if (app == nil) {
            return -1;
        }
        *pid = app.processIdentifier;
        *name = walter_strdup_ns(app.localizedName);
        *bundleID = walter_strdup_ns(app.bundleIdentifier);
        return 0;
    }
}

static pid_t walter_pid_for_bundle(const char *bundleID) {
    @autoreleasepool {
        NSString *ident = [NSString stringWithUTF8String:bundleID];
        NSArray<NSRunningApplication *> *apps = [NSRunningApplication runningApplicationsWithBundleIdentifier:ident];
        if (apps.count == 0) {
            return -1;
        }
        return apps.firstObject.processIdentifier;
    }
}

static char *walter_copy_string_attr(AXUIElementRef el, CFStringRef attr) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, attr, &value) != kAXErrorSuccess || value == NULL) {
        return strdup("");
    }
    char *out;
    if (CFGetTypeID(value) == CFStringGetTypeID()) {
        out = walter_strdup_ns((__bridge NSString *)value);
    } else {
        out = strdup("");
    }
    CFRelease(value);
    return out;
}

static void walter_fill_frame(AXUIElementRef el, WalterWindow *w) {
    CFTypeRef pos = NULL;
    if (AXUIElementCopyAttributeValue(el, kAXPositionAttribute, &pos) == kAXErrorSuccess && pos != NULL) {
        CGPoint p;
        if (AXValueGetValue((AXValueRef)pos, kAXValueTypeCGPoint, &p)) {
            w->x = p.x;
            w->y = p.y;
        }
        CFRelease(pos);
    }
    CFTypeRef size = NULL;
    if (AXUIElementCopyAttributeValue(el, kAXSizeAttribute, &size) == kAXErrorSuccess && size != NULL) {
        CGSize s;
        if (AXValueGetValue((AXValueRef)size, kAXValueTypeCGSize, &s)) {
            w->width = s.width;
            w->height = s.height;
        }
        CFRelease(size);
    }
}

static int walter_windows(pid_t pid, WalterWindow **out, int *count) {
    *out = NULL;
    *count = 0;

    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (app == NULL) {
        return kAXErrorFailure;
    }
    CFTypeRef windows = NULL;
    AXError err = AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, &windows);
    CFRelease(app);
    if (err != kAXErrorSuccess) {
        return err;
    }
    if (windows == NULL) {
        return kAXErrorNoValue;
    }

    CFIndex n = CFArrayGetCount((CFArrayRef)windows);
    WalterWindow *list = calloc(n > 0 ? n : 1, sizeof(WalterWindow));
    for (CFIndex i = 0; i < n; i++) {
        AXUIElementRef w = (AXUIElementRef)CFArrayGetValueAtIndex((CFArrayRef)windows, i);
        list[i].title = walter_copy_string_attr(w, kAXTitleAttribute);
        walter_fill_frame(w, &list[i]);
    }
    CFRelease(windows);

    *out = list;
    *count = (int)n;
    return kAXErrorSuccess;
}

static void walter_free_windows(WalterWindow *list, int count) {
    for (int i = 0; i < count; i++) {
        free(list[i].title);
    }
    free(list);
}

static int walter_attribute_names(pid_t pid, char ***out, int *count) {
    *out = NULL;
    *count = 0;

    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (app == NULL) {
        return kAXErrorFailure;
    }
    CFArrayRef names = NULL;
    AXError err = AXUIElementCopyAttributeNames(app, &names);
    CFRelease(app);
    if (err != kAXErrorSuccess) {
        return err;
    }
    if (names == NULL) {
        return kAXErrorNoValue;
    }

    CFIndex n = CFArrayGetCount(names);
    char **list = calloc(n > 0 ? n : 1, sizeof(char *));
    for (CFIndex i = 0; i < n; i++) {
        list[i] = walter_strdup_ns((__bridge NSString *)CFArrayGetValueAtIndex(names, i));
    }
    CFRelease(names);

    *out = list;
    *count = (int)n;
    return kAXErrorSuccess;
}

static void walter_free_strings(char **list, int count) {
    for (int i = 0; i < count; i++) {
        free(list[i]);
    }
    free(list);
}

static int walter_element_at(pid_t pid, float x, float y, char **role, char **title, char **value) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (app == NULL) {
        return kAXErrorFailure;
    }
    AXUIElementRef el = NULL;
    AXError err = AXUIElementCopyElementAtPosition(app, x, y, &el);
    CFRelease(app);
    if (err != kAXErrorSuccess) {
        return err;
    }
    if (el == NULL) {
        return kAXErrorNoValue;
    }
    *role = walter_copy_string_attr(el, kAXRoleAttribute);
    *title = walter_copy_string_attr(el, kAXTitleAttribute);
    *value = walter_copy_string_attr(el, kAXValueAttribute);
    CFRelease(el);
    return kAXErrorSuccess;
}
*/
import "C"
import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/chess10kp/walter/internal/platform"
)

const axErrorNoValue = -25212

// Inspector implements platform.Inspector for macOS.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (i *Inspector) IsTrusted() bool {
	return C.walter_is_trusted() != 0
}

func (i *Inspector) FrontmostApp() (platform.App, error) {
	var cName, cBundle *C.char
	var cPid C.pid_t

	if C.walter_frontmost_app(&cName, &cBundle, &cPid) != 0 {
		return platform.App{}, platform.ErrNoFrontmostApp
	}
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cBundle))

	return platform.App{
		Name:     C.GoString(cName),
		PID:      int(cPid),
		BundleID: C.GoString(cBundle),
	}, nil
}

func (i *Inspector) Windows(pid int) ([]platform.Window, error) {
	if !i.IsTrusted() {
		return nil, platform.ErrNotTrusted
	}

	var cWindows *C.WalterWindow
	var cCount C.int
	if code := C.walter_windows(C.pid_t(pid), &cWindows, &cCount); code != 0 {
		if int(code) == axErrorNoValue {
			return []platform.Window{}, nil
		}
		return nil, &platform.AXError{Op: fmt.Sprintf("windows of pid %d", pid), Code: int(code)}
	}
	defer C.walter_free_windows(cWindows, cCount)

	count := int(cCount)
	windows := make([]platform.Window, 0, count)
	if count == 0 {
		return windows, nil
	}
	for _, cw := range unsafe.Slice(cWindows, count) {
		windows = append(windows, platform.Window{
			Title:  C.GoString(cw.title),
			X:      float64(cw.x),
			Y:      float64(cw.y),
			Width:  float64(cw.width),
			Height: float64(cw.height),
		})
	}
	return windows, nil
}

func (i *Inspector) AttributeNames(pid int) ([]string, error) {
	if !i.IsTrusted() {
		return nil, platform.ErrNotTrusted
	}

	var cNames **C.char
	var cCount C.int
	if code := C.walter_attribute_names(C.pid_t(pid), &cNames, &cCount); code != 0 {
		return nil, &platform.AXError{Op: fmt.Sprintf("attribute names of pid %d", pid), Code: int(code)}
	}
	defer C.walter_free_strings(cNames, cCount)

	count := int(cCount)
	names := make([]string, 0, count)
	if count == 0 {
		return names, nil
	}
	for _, cn := range unsafe.Slice(cNames, count) {
		names = append(names, C.GoString(cn))
	}
	return names, nil
}

func (i *Inspector) ElementAt(pid int, x, y float64) (*platform.Element, error) {
	if !i.IsTrusted() {
		return nil, platform.ErrNotTrusted
	}

	var cRole, cTitle, cValue *C.char
	code := C.walter_element_at(C.pid_t(pid), C.float(x), C.float(y), &cRole, &cTitle, &cValue)
	if int(code) == axErrorNoValue {
		return nil, nil
	}
	if code != 0 {
		return nil, &platform.AXError{Op: fmt.Sprintf("element at %.0f,%.0f", x, y), Code: int(code)}
	}
	defer C.free(unsafe.Pointer(cRole))
	defer C.free(unsafe.Pointer(cTitle))
	defer C.free(unsafe.Pointer(cValue))

	return &platform.Element{
		Role:  C.GoString(cRole),
		Title: C.GoString(cTitle),
		Value: C.GoString(cValue),
	}, nil
}

var errNoBundleApp = errors.New("no running application")

func (i *Inspector) WindowsForBundle(bundleID string) ([]platform.Window, error) {
	cBundle := C.CString(bundleID)
	defer C.free(unsafe.Pointer(cBundle))

	pid := C.walter_pid_for_bundle(cBundle)
	if pid < 0 {
		return nil, fmt.Errorf("%w with bundle identifier %s", errNoBundleApp, bundleID)
	}
	return i.Windows(int(pid))
}
