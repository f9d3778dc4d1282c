package guide

import "grnascan/internal/dna"

// Strand labels a candidate's source strand. The values double as the keys of
// a Collection and as the wire labels in every output format.
type Strand string

const (
	Forward Strand = "fw"
	Reverse Strand = "rv"
)

// Strands lists the strands in merge and report order.
var Strands = []Strand{Forward, Reverse}

// Grna is one guide candidate. Position is the PAM anchor: the 0-based offset
// of the first PAM base on the candidate's own strand, so the guide occupies
// [Position-len(Sequence), Position) on that strand.
type Grna struct {
	Sequence string
	Position int
	Strand   Strand
	PAM      string
}

// Start is the first guide base on the candidate's own strand.
func (g Grna) Start() int { return g.Position - len(g.Sequence) }

// GC returns the guide's GC percentage.
func (g Grna) GC() float64 { return dna.GCContent(g.Sequence) }

// ForwardSpan maps the guide onto forward-strand coordinates, half-open.
// seqLen is the length of the forward sequence the session was built from.
func (g Grna) ForwardSpan(seqLen int) (start, end int) {
	if g.Strand == Reverse {
		return seqLen - g.Position, seqLen - g.Start()
	}
	return g.Start(), g.Position
}

// Collection maps each strand to its surviving candidates. A strand with no
// survivors has no entry.
type Collection map[Strand][]Grna

// All flattens the collection, forward strand first.
func (c Collection) All() []Grna {
	out := make([]Grna, 0, c.Len())
	for _, s := range Strands {
		out = append(out, c[s]...)
	}
	return out
}

// Len counts candidates across strands.
func (c Collection) Len() int {
	n := 0
	for _, v := range c {
		n += len(v)
	}
	return n
}
