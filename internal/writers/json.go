package writers

import (
	"io"

	"grnascan/internal/jsonutil"
	"grnascan/internal/output"
	"grnascan/pkg/api"
)

func init() { Register(output.FormatJSON, StartJSONWriter) }

// StartJSONWriter buffers every result and writes one pretty ReportV1.
func StartJSONWriter(out io.Writer, m Meta, bufSize int) (chan<- output.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []output.Result
		for r := range in {
			buf = append(buf, r)
		}
		rep := api.ReportV1{
			RunID:        m.RunID,
			Version:      m.Version,
			TargetID:     m.TargetID,
			TargetLength: m.TargetLength,
			ReferenceID:  m.ReferenceID,
			PAM:          m.PAM,
			GuideSize:    m.GuideSize,
			OffTargets:   m.Scanned,
			Results:      output.ToAPIResults(buf, m.TargetLength),
		}
		err := jsonutil.EncodePretty(out, rep)
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
