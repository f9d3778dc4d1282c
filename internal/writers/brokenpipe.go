package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether a write failed because the reader of stdout
// went away: `grnascan ... | head`, or a socket peer that reset.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrClosedPipe)
}
