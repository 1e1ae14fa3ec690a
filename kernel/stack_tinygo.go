//go:build tinygo

package kernel

// TinyGo has no stack capture.
func captureStack() []byte { return nil }
