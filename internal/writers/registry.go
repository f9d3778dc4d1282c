package writers

import (
	"fmt"
	"io"
	"sort"

	"grnascan/internal/output"
)

// Meta describes the run a stream of results belongs to.
type Meta struct {
	RunID        string
	Version      string
	TargetID     string
	TargetLength int
	ReferenceID  string
	PAM          string
	GuideSize    int
	Scanned      bool
	Header       bool
}

// StartFunc spins up a writer goroutine. The caller sends results on the
// returned channel, closes it, then reads exactly one value from the error
// channel.
type StartFunc func(out io.Writer, m Meta, bufSize int) (chan<- output.Result, <-chan error)

// Writer registry (format → handler). Register in init() blocks from the
// per-format files; last registration wins.
var registry = map[string]StartFunc{}

func Register(format string, fn StartFunc) { registry[format] = fn }

// Formats returns the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Start dispatches to the writer registered for format. An unknown format
// still returns a usable channel pair: sends are drained and the error
// channel reports the problem.
func Start(format string, out io.Writer, m Meta, bufSize int) (chan<- output.Result, <-chan error) {
	if fn, ok := registry[format]; ok {
		return fn(out, m, bufSize)
	}
	in := make(chan output.Result)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown output format %q (no writer registered)", format)
	}()
	return in, errCh
}
