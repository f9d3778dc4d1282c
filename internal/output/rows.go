package output

import (
	"fmt"
	"strconv"
	"strings"
)

// OnTargetMark follows a hit that is the guide's own locus.
const OnTargetMark = "*"

// HitsCSV renders r's hits as score:start-end, comma separated, with
// OnTargetMark after the guide's own site.
func HitsCSV(r Result) string {
	if len(r.OffTargets) == 0 {
		return ""
	}
	ss := make([]string, len(r.OffTargets))
	for i, h := range r.OffTargets {
		ss[i] = strconv.Itoa(h.Score) + ":" + strconv.Itoa(h.Start) + "-" + strconv.Itoa(h.End)
		if r.OnTarget(h) {
			ss[i] += OnTargetMark
		}
	}
	return strings.Join(ss, ",")
}

// FormatRowTSV returns one TSV row (no trailing newline). Hit columns are
// "-" when the reference was not scanned.
func FormatRowTSV(r Result, seqLen int) string {
	start, end := r.Guide.ForwardSpan(seqLen)
	count, hits := "-", "-"
	if r.Scanned {
		count = strconv.Itoa(len(r.OffTargets))
		hits = HitsCSV(r)
	}
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s\t%s\t%.2f\t%s\t%s",
		r.Guide.Strand, r.Guide.Position, start, end,
		r.Guide.Sequence, r.Guide.PAM, r.Guide.GC(),
		count, hits,
	)
}
