// Package logx is laminar's internal leveled logger, styled after
// wayneeseguin/graft's log.DEBUG/log.TRACE convention: cheap to call,
// silent unless explicitly enabled, and ANSI-colored when it does print.
package logx

import (
	"fmt"
	"os"
	"strings"

	"github.com/starkandwayne/goutils/ansi"
)

var (
	debugEnabled bool
	traceEnabled bool
)

func init() {
	level := strings.ToLower(os.Getenv("LAMINAR_DEBUG"))
	switch level {
	case "trace":
		debugEnabled = true
		traceEnabled = true
	case "1", "true", "debug", "yes":
		debugEnabled = true
	}
}

// DEBUG prints a debug-level message to stderr when LAMINAR_DEBUG is set.
func DEBUG(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	fmt.Fprintln(os.Stderr, ansi.Sprintf("@b{DEBUG}> %s", fmt.Sprintf(format, args...)))
}

// TRACE prints a trace-level message to stderr when LAMINAR_DEBUG=trace.
func TRACE(format string, args ...interface{}) {
	if !traceEnabled {
		return
	}
	fmt.Fprintln(os.Stderr, ansi.Sprintf("@K{TRACE}> %s", fmt.Sprintf(format, args...)))
}

// WARN always prints a warning to stderr, colored yellow.
func WARN(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, ansi.Sprintf("@Y{warning:} %s", fmt.Sprintf(format, args...)))
}
