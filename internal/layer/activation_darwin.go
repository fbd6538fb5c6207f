//go:build darwin && cgo

package layer

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit
#import <AppKit/AppKit.h>

extern void walterActivationChanged(int becoming);

static id walterBecomeObserver = nil;
static id walterResignObserver = nil;

static void walter_observe_activation(void) {
    if (walterBecomeObserver != nil) {
        return;
    }
    NSNotificationCenter *center = [NSNotificationCenter defaultCenter];
    walterBecomeObserver = [[center addObserverForName:NSApplicationWillBecomeActiveNotification
                                                object:nil
                                                 queue:nil
                                            usingBlock:^(NSNotification *note) {
        walterActivationChanged(1);
    }] retain];
    walterResignObserver = [[center addObserverForName:NSApplicationWillResignActiveNotification
                                                object:nil
                                                 queue:nil
                                            usingBlock:^(NSNotification *note) {
        walterActivationChanged(0);
    }] retain];
}

static void walter_stop_observing_activation(void) {
    if (walterBecomeObserver == nil) {
        return;
    }
    NSNotificationCenter *center = [NSNotificationCenter defaultCenter];
    [center removeObserver:walterBecomeObserver];
    [center removeObserver:walterResignObserver];
    [walterBecomeObserver release];
    [walterResignObserver release];
    walterBecomeObserver = nil;
    walterResignObserver = nil;
}
*/
import "C"

// ObserveActivation delivers NSApplication will-become-active and
// will-resign-active notifications to h on the main thread.
func ObserveActivation(h ActivationHandlers) error {
	activationHandlers = h
	C.walter_observe_activation()
	return nil
}

func StopObservingActivation() {
	C.walter_stop_observing_activation()
	activationHandlers = ActivationHandlers{}
}
