// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	warnPrefix  = color.New(color.FgYellow, color.Bold)
	errorPrefix = color.New(color.FgRed, color.Bold)
)

// Warnf prints a "warning:" line unless quiet. Color follows the terminal
// detection in fatih/color (NO_COLOR and non-TTY output disable it).
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{warnPrefix.Sprint("warning:")}, a...)...)
}

// Errorf prints an "error:" line. Errors are never silenced by --quiet.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{errorPrefix.Sprint("error:")}, a...)...)
}
