// Package appshell wires a RunContext-style entry point to the process:
// signals, argv and exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature every command entry point exposes.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn with a context canceled on SIGINT/SIGTERM and exits with its
// code. A bare invocation shows help.
func Main(fn RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, fn, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Exec is Main without the process plumbing.
func Exec(ctx context.Context, fn RunFunc, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := fn(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
