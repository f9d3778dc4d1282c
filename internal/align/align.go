// Package align provides the affine-gap semiglobal aligner used by the
// off-target scanner: the query (x) is aligned end to end, the subject (y)
// contributes any contiguous window at no clipping cost.
//
// An Aligner owns scratch rows that are reused between calls. It is not safe
// for concurrent use; give each goroutine its own.
package align

import "math"

// negInf is low enough to never win a max, high enough to never overflow
// when a few gap costs are added to it.
const negInf = math.MinInt / 4

// MatchFunc scores one aligned pair of bases.
type MatchFunc func(a, b byte) int

// UnitScore is +1 for identical bases (case-insensitive) and -1 otherwise.
func UnitScore(a, b byte) int {
	if a|0x20 == b|0x20 {
		return 1
	}
	return -1
}

// Alignment is the result of one Semiglobal call. [YStart, YEnd) is the
// window of y covered by the alignment; x is always covered in full.
type Alignment struct {
	Score  int
	YStart int
	YEnd   int
}

// Aligner holds gap costs, the match function and per-call scratch rows.
// A gap of length k costs GapOpen + k*GapExtend; both are expected to be <= 0.
type Aligner struct {
	GapOpen   int
	GapExtend int
	score     MatchFunc

	// score rows for the best (s) and x-gap (ins) states, previous and
	// current, each with the y column the alignment started in.
	s, sStart, ins, insStart             []int
	sCur, sStartCur, insCur, insStartCur []int
}

// NewAligner returns an aligner using score for base pairs; nil means UnitScore.
func NewAligner(gapOpen, gapExtend int, score MatchFunc) *Aligner {
	if score == nil {
		score = UnitScore
	}
	return &Aligner{GapOpen: gapOpen, GapExtend: gapExtend, score: score}
}

func (a *Aligner) grow(n int) {
	if cap(a.s) >= n {
		a.s, a.sStart, a.ins, a.insStart = a.s[:n], a.sStart[:n], a.ins[:n], a.insStart[:n]
		a.sCur, a.sStartCur, a.insCur, a.insStartCur = a.sCur[:n], a.sStartCur[:n], a.insCur[:n], a.insStartCur[:n]
		return
	}
	a.s, a.sStart, a.ins, a.insStart = make([]int, n), make([]int, n), make([]int, n), make([]int, n)
	a.sCur, a.sStartCur, a.insCur, a.insStartCur = make([]int, n), make([]int, n), make([]int, n), make([]int, n)
}

// Semiglobal aligns all of x against the best-scoring window of y.
// Ties prefer a substitution over a gap in y over a gap in x, and the
// leftmost window end.
func (a *Aligner) Semiglobal(x, y string) Alignment {
	m, n := len(x), len(y)
	a.grow(n + 1)
	open := a.GapOpen + a.GapExtend

	// Row 0: the empty query aligns at every column for free.
	for j := 0; j <= n; j++ {
		a.s[j], a.sStart[j] = 0, j
		a.ins[j], a.insStart[j] = negInf, j
	}

	for i := 1; i <= m; i++ {
		xi := x[i-1]
		a.sCur[0] = a.GapOpen + a.GapExtend*i
		a.sStartCur[0] = 0
		a.insCur[0], a.insStartCur[0] = a.sCur[0], 0

		del, delStart := negInf, 0
		for j := 1; j <= n; j++ {
			sub := a.s[j-1] + a.score(xi, y[j-1])
			subStart := a.sStart[j-1]

			ins, insStart := a.s[j]+open, a.sStart[j]
			if ext := a.ins[j] + a.GapExtend; ext > ins {
				ins, insStart = ext, a.insStart[j]
			}
			a.insCur[j], a.insStartCur[j] = ins, insStart

			if o := a.sCur[j-1] + open; o >= del+a.GapExtend {
				del, delStart = o, a.sStartCur[j-1]
			} else {
				del += a.GapExtend
			}

			switch {
			case sub >= ins && sub >= del:
				a.sCur[j], a.sStartCur[j] = sub, subStart
			case ins >= del:
				a.sCur[j], a.sStartCur[j] = ins, insStart
			default:
				a.sCur[j], a.sStartCur[j] = del, delStart
			}
		}
		a.s, a.sCur = a.sCur, a.s
		a.sStart, a.sStartCur = a.sStartCur, a.sStart
		a.ins, a.insCur = a.insCur, a.ins
		a.insStart, a.insStartCur = a.insStartCur, a.insStart
	}

	best := 0
	for j := 1; j <= n; j++ {
		if a.s[j] > a.s[best] {
			best = j
		}
	}
	return Alignment{Score: a.s[best], YStart: a.sStart[best], YEnd: best}
}
