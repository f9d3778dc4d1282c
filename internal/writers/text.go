package writers

import (
	"bufio"
	"io"

	"grnascan/internal/output"
)

func init() { Register(output.FormatText, StartTextWriter) }

// StartTextWriter streams one TSV row per result.
func StartTextWriter(out io.Writer, m Meta, bufSize int) (chan<- output.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriter(out)
		var err error
		if m.Header {
			_, err = bw.WriteString(output.TSVHeader + "\n")
		}
		for r := range in {
			if err != nil {
				continue // keep draining so senders never block
			}
			_, err = bw.WriteString(output.FormatRowTSV(r, m.TargetLength) + "\n")
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
