package logging

import (
	"fmt"
	"io"
	"os"
)

var (
	debugOut io.Writer = os.Stderr
	warnOut  io.Writer = os.Stderr

	forceDebug bool
)

// DebugEnabled returns true if debug mode is enabled via the WP_DEBUG environment
// variable or EnableDebug.
func DebugEnabled() bool {
	return forceDebug || os.Getenv("WP_DEBUG") != ""
}

// EnableDebug turns debug output on regardless of WP_DEBUG.
func EnableDebug(on bool) {
	forceDebug = on
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(debugOut, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(debugOut, args...)
	}
}

// Warnf always writes to stderr, prefixed with "warning: ".
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(warnOut, "warning: "+format, args...)
}

// SetOutput redirects debug and warning output, returning a func that restores the previous writers.
func SetOutput(debug, warn io.Writer) func() {
	prevDebug, prevWarn := debugOut, warnOut
	debugOut, warnOut = debug, warn
	return func() {
		debugOut, warnOut = prevDebug, prevWarn
	}
}
