package cmdutil

import (
	"context"
)

// Stream feeds items into a writer goroutine's input channel, closes it, and
// waits for the writer to finish. It returns the number of items sent. A
// writer error takes precedence over a cancellation.
func Stream[T any](ctx context.Context, items []T, in chan<- T, done <-chan error) (int, error) {
	sent := 0
	var cerr error
loop:
	for _, it := range items {
		select {
		case in <- it:
			sent++
		case <-ctx.Done():
			cerr = ctx.Err()
			break loop
		}
	}
	close(in)
	if werr := <-done; werr != nil {
		return sent, werr
	}
	return sent, cerr
}
