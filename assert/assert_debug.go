//go:build debug

package assert

import (
	"errors"
	"runtime"
	"strconv"
)

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Error is the panic value of a failed assertion.
type Error struct {
	Message string
	File    string // empty if the call site could not be resolved
	Line    int
}

func (e *Error) Error() string {
	if e.File == "" {
		return "assertion failed: " + e.Message
	}
	return "assertion failed at " + e.File + ":" + strconv.Itoa(e.Line) + ": " + e.Message
}

// That panics with an *Error carrying message if condition is false.
func That(condition bool, message string) {
	if !condition {
		fail(message)
	}
}

// True is That with an empty message.
func True(condition bool) {
	if !condition {
		fail("")
	}
}

// IsAssertionError reports whether v, usually a value returned by recover,
// is (or wraps) an assertion failure.
func IsAssertionError(v any) (*Error, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// fail must be called directly from the exported assertion so the caller
// frame is at a fixed depth.
func fail(message string) {
	e := &Error{Message: message}
	if _, file, line, ok := runtime.Caller(2); ok {
		e.File, e.Line = file, line
	}

	log.Error().Str("file", e.File).Int("line", e.Line).Msg("assertion failed: " + message)
	panic(e)
}
