//go:build darwin && cgo

package layer

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit
#import <AppKit/AppKit.h>
#include <stdlib.h>

extern void walterStatusItemClicked(void);

@interface WalterStatusTarget : NSObject
- (void)clicked:(id)sender;
@end

@implementation WalterStatusTarget
- (void)clicked:(id)sender {
    walterStatusItemClicked();
}
@end

static NSStatusItem *walterStatusItem = nil;
static WalterStatusTarget *walterStatusTarget = nil;

static int walter_status_item_install(const char *title, const char *symbol, const char *tooltip) {
    if (walterStatusItem != nil) {
        return 0;
    }
    walterStatusItem = [[[NSStatusBar systemStatusBar] statusItemWithLength:NSVariableStatusItemLength] retain];
    if (walterStatusItem == nil) {
        return -1;
    }
    walterStatusTarget = [[WalterStatusTarget alloc] init];

    NSStatusBarButton *button = walterStatusItem.button;
    NSString *titleString = [NSString stringWithUTF8String:title];
    NSImage *image = nil;
    if (@available(macOS 11.0, *)) {
        image = [NSImage imageWithSystemSymbolName:[NSString stringWithUTF8String:symbol]
                          accessibilityDescription:titleString];
    }
    if (image != nil) {
        button.image = image;
    } else {
        button.title = titleString;
    }
    button.toolTip = [NSString stringWithUTF8String:tooltip];
    button.target = walterStatusTarget;
    button.action = @selector(clicked:);
    return 0;
}

static void walter_status_item_remove(void) {
    if (walterStatusItem == nil) {
        return;
    }
    [[NSStatusBar systemStatusBar] removeStatusItem:walterStatusItem];
    [walterStatusItem release];
    [walterStatusTarget release];
    walterStatusItem = nil;
    walterStatusTarget = nil;
}
*/
import "C"
import (
	"errors"
	"unsafe"
)

const statusItemSymbol = "magnifyingglass"

// InstallStatusItem adds the menu bar item. onClick runs on the main thread.
func InstallStatusItem(title, tooltip string, onClick func()) error {
	cTitle := C.CString(title)
	defer C.free(unsafe.Pointer(cTitle))
	cSymbol := C.CString(statusItemSymbol)
	defer C.free(unsafe.Pointer(cSymbol))
	cTooltip := C.CString(tooltip)
	defer C.free(unsafe.Pointer(cTooltip))

	statusItemHandler = onClick
	if C.walter_status_item_install(cTitle, cSymbol, cTooltip) != 0 {
		statusItemHandler = nil
		return errors.New("failed to create menu bar item")
	}
	return nil
}

func RemoveStatusItem() {
	C.walter_status_item_remove()
	statusItemHandler = nil
}
