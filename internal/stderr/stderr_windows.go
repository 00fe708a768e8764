//go:build windows

// Package stderr provides a no-op implementation for Windows, where fd
// redirection works differently and libmpv builds are rarer.
package stderr

import "os"

// Capture is a no-op on Windows.
func Capture(func(string)) error { return nil }

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Restore is a no-op on Windows.
func Restore() {}
