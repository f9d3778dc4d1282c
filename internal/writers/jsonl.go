package writers

import (
	"encoding/json"
	"io"

	"grnascan/internal/jsonlutil"
	"grnascan/internal/output"
)

func init() { Register(output.FormatJSONL, StartJSONLWriter) }

// StartJSONLWriter streams each result as one JSON line (v1), tagged with
// the run id.
func StartJSONLWriter(out io.Writer, m Meta, bufSize int) (chan<- output.Result, <-chan error) {
	return jsonlutil.Start[output.Result](out, bufSize,
		func(enc *json.Encoder, r output.Result) error {
			return enc.Encode(output.ToAPIResult(r, m.TargetLength, m.RunID))
		},
		IsBrokenPipe,
	)
}
