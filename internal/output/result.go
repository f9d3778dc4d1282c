package output

import (
	"grnascan/internal/guide"
	"grnascan/internal/offtarget"
)

// Result pairs a guide with its off-target hits. Scanned is false when the
// reference scan was not requested, which writers render differently from
// "scanned, no hits". SelfReference is set when the reference is the target
// itself, so each forward guide also finds its own locus.
type Result struct {
	Guide         guide.Grna
	OffTargets    []offtarget.OffTarget
	Scanned       bool
	SelfReference bool
}

// OnTarget reports whether h is the guide's own site in the target. Only
// forward guides qualify: the reference is scanned on its forward strand.
func (r Result) OnTarget(h offtarget.OffTarget) bool {
	return r.SelfReference && r.Guide.Strand == guide.Forward &&
		h.Start == r.Guide.Start() && h.End == r.Guide.Position
}

// Build flattens a collection (forward strand first) and attaches hits.
// lists may be nil when scanned is false. selfRef marks a scan against the
// target sequence itself.
func Build(guides guide.Collection, lists []offtarget.List, scanned, selfRef bool) []Result {
	hits := make(map[guide.Grna][]offtarget.OffTarget, len(lists))
	for _, l := range lists {
		hits[l.Guide] = l.OffTargets
	}
	all := guides.All()
	out := make([]Result, 0, len(all))
	for _, g := range all {
		out = append(out, Result{Guide: g, OffTargets: hits[g], Scanned: scanned, SelfReference: selfRef})
	}
	return out
}
