// Package offtarget screens guide candidates against a reference by sliding a
// semiglobal alignment down the reference and keeping windows that score at
// least GuideSize-MinMismatch.
package offtarget

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"grnascan/internal/align"
	"grnascan/internal/guide"
)

// OffTarget is one qualifying window, [Start, End) in reference coordinates.
type OffTarget struct {
	Score int
	Start int
	End   int
}

// List pairs a guide with its hits in reference order.
type List struct {
	Guide      guide.Grna
	OffTargets []OffTarget
}

// Config holds the scan parameters. Threads <= 0 means one worker per CPU.
type Config struct {
	GuideSize   int
	GapOpen     int
	GapExtend   int
	MinMismatch int
	Threads     int
}

// DesiredScore is the minimum alignment score recorded as a hit.
func (c Config) DesiredScore() int { return c.GuideSize - c.MinMismatch }

func (c Config) workers(n int) int {
	w := c.Threads
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Scan aligns every candidate against reference and returns one List per
// candidate with at least one hit, in candidate order. A nil result with a
// nil error means no candidate hit anything. The only error is ctx's.
func Scan(ctx context.Context, candidates []guide.Grna, reference string, cfg Config) ([]List, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	desired := cfg.DesiredScore()
	hits := make([][]OffTarget, len(candidates))

	workers := cfg.workers(len(candidates))
	if workers == 1 {
		al := align.NewAligner(cfg.GapOpen, cfg.GapExtend, align.UnitScore)
		for i, c := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			hits[i] = ScanGuide(al, c.Sequence, reference, desired)
		}
		return collect(candidates, hits), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	next := make(chan int)
	g.Go(func() error {
		defer close(next)
		for i := range candidates {
			select {
			case next <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			al := align.NewAligner(cfg.GapOpen, cfg.GapExtend, align.UnitScore)
			for i := range next {
				hits[i] = ScanGuide(al, candidates[i].Sequence, reference, desired)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return collect(candidates, hits), nil
}

func collect(candidates []guide.Grna, hits [][]OffTarget) []List {
	var out []List
	for i, h := range hits {
		if len(h) == 0 {
			continue
		}
		out = append(out, List{Guide: candidates[i], OffTargets: h})
	}
	return out
}

// ScanGuide walks reference left to right. Each round aligns seq against the
// unconsumed tail; a zero score ends the walk, a score >= desired is recorded,
// and the cursor always moves past the aligned window (by at least one base).
func ScanGuide(al *align.Aligner, seq, reference string, desired int) []OffTarget {
	var out []OffTarget
	consumed := 0
	rest := reference
	for len(rest) > 0 && len(rest) >= desired {
		a := al.Semiglobal(seq, rest)
		if a.Score == 0 {
			break
		}
		if a.Score >= desired {
			out = append(out, OffTarget{
				Score: a.Score,
				Start: consumed + a.YStart,
				End:   consumed + a.YEnd,
			})
		}
		step := a.YEnd
		if step < 1 {
			step = 1
		}
		consumed += step
		rest = rest[step:]
	}
	return out
}
