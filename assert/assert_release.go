//go:build !debug

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// That is a no-op without the debug tag.
func That(condition bool, message string) {}

// True is a no-op without the debug tag.
func True(condition bool) {}
