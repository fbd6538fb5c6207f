//go:build darwin

package main

import _ "github.com/chess10kp/walter/internal/platform/darwin"
