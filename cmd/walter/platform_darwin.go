//go:build darwin

package main

// Registers the macOS accessibility backend used by the probe.
import _ "github.com/chess10kp/walter/internal/platform/darwin"
