package guide

import (
	"fmt"

	"grnascan/internal/pattern"
)

// Filter keeps a candidate when Keep returns true.
type Filter struct {
	Name string
	Keep func(Grna) bool
}

// GCRange keeps guides whose GC percentage lies strictly inside (lo, hi).
func GCRange(lo, hi float64) Filter {
	return Filter{
		Name: fmt.Sprintf("gc(%g,%g)", lo, hi),
		Keep: func(g Grna) bool {
			gc := g.GC()
			return gc > lo && gc < hi
		},
	}
}

// Exclude drops guides in which p matches anywhere.
func Exclude(p *pattern.Pattern) Filter {
	return Filter{
		Name: "exclude(" + p.String() + ")",
		Keep: func(g Grna) bool { return !p.Match(g.Sequence) },
	}
}

// Include keeps only guides in which p matches somewhere.
func Include(p *pattern.Pattern) Filter {
	return Filter{
		Name: "include(" + p.String() + ")",
		Keep: func(g Grna) bool { return p.Match(g.Sequence) },
	}
}

// Pipeline applies filters in order.
type Pipeline []Filter

// NewPipeline builds the fixed GC → exclusion → inclusion pipeline. The GC
// step is left out when the bounds are unset (min <= 0 and max >= 100);
// nil patterns are not configured and are left out too.
func NewPipeline(gcMin, gcMax float64, exclude, include *pattern.Pattern) Pipeline {
	var p Pipeline
	if gcMin > 0 || gcMax < 100 {
		p = append(p, GCRange(gcMin, gcMax))
	}
	if exclude != nil {
		p = append(p, Exclude(exclude))
	}
	if include != nil {
		p = append(p, Include(include))
	}
	return p
}

// Apply runs every filter over cands, preserving order. The input slice is not
// modified. Once a step leaves nothing the remaining steps are skipped and
// nil is returned.
func (p Pipeline) Apply(cands []Grna) []Grna {
	if len(cands) == 0 {
		return nil
	}
	cur := cands
	for _, f := range p {
		next := make([]Grna, 0, len(cur))
		for _, g := range cur {
			if f.Keep(g) {
				next = append(next, g)
			}
		}
		if len(next) == 0 {
			return nil
		}
		cur = next
	}
	return cur
}
