//go:build darwin && cgo

package darwin

import "github.com/chess10kp/walter/internal/platform"

func init() {
	platform.NewInspectorFunc = func() (platform.Inspector, error) {
		return NewInspector(), nil
	}
}
