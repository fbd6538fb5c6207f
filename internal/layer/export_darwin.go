//go:build darwin && cgo

package layer

import "C"

var (
	statusItemHandler  func()
	activationHandlers ActivationHandlers
)

//export walterStatusItemClicked
func walterStatusItemClicked() {
	if statusItemHandler != nil {
		statusItemHandler()
	}
}

//export walterActivationChanged
func walterActivationChanged(becoming C.int) {
	change := resignActive
	if becoming != 0 {
		change = becomeActive
	}
	activationHandlers.deliver(change)
}
