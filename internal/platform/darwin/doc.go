//go:build darwin

// Package darwin provides the macOS accessibility backend using AppKit and
// the Accessibility API. All functionality requires CGo; without it the
// package compiles as a no-op and the probe reports ErrUnsupported.
package darwin
