package output

import (
	"grnascan/pkg/api"
)

// ToAPIResult converts a Result to the stable wire schema (v1). seqLen is
// the target length, needed to map reverse-strand guides forward.
func ToAPIResult(r Result, seqLen int, runID string) api.ResultV1 {
	start, end := r.Guide.ForwardSpan(seqLen)
	v := api.ResultV1{
		RunID: runID,
		Guide: api.GuideV1{
			Sequence: r.Guide.Sequence,
			Strand:   string(r.Guide.Strand),
			Position: r.Guide.Position,
			PAM:      r.Guide.PAM,
			GC:       r.Guide.GC(),
			Start:    start,
			End:      end,
		},
	}
	if r.Scanned {
		n := len(r.OffTargets)
		v.HitCount = &n
		v.OffTargets = make([]api.OffTargetV1, 0, n)
		for _, h := range r.OffTargets {
			v.OffTargets = append(v.OffTargets, api.OffTargetV1{
				Score:    h.Score,
				Start:    h.Start,
				End:      h.End,
				OnTarget: r.OnTarget(h),
			})
		}
	}
	return v
}

// ToAPIResults converts a whole list; runID is left empty because the
// enclosing report carries it.
func ToAPIResults(list []Result, seqLen int) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r, seqLen, ""))
	}
	return out
}
