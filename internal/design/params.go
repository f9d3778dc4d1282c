package design

import "fmt"

// Params configures a Session. The zero value is not usable; start from
// DefaultParams.
type Params struct {
	PAM              string
	GuideSize        int
	ExclusionPattern string
	InclusionPattern string
	GCMin            float64
	GCMax            float64

	GapOpen     int
	GapExtend   int
	MinMismatch int
	Threads     int
}

// DefaultParams returns SpCas9 defaults with permissive filters.
func DefaultParams() Params {
	return Params{
		PAM:         "NGG",
		GuideSize:   20,
		GCMin:       0,
		GCMax:       100,
		GapOpen:     -5,
		GapExtend:   -1,
		MinMismatch: 3,
		Threads:     1,
	}
}

func (p Params) validate() error {
	switch {
	case p.GuideSize < 1:
		return fmt.Errorf("%w: guide size must be ≥ 1 (got %d)", ErrInvalidParameters, p.GuideSize)
	case p.MinMismatch < 0:
		return fmt.Errorf("%w: minimum mismatch tolerance must be ≥ 0 (got %d)", ErrInvalidParameters, p.MinMismatch)
	case p.MinMismatch >= p.GuideSize:
		return fmt.Errorf("%w: minimum mismatch tolerance (%d) must be below the guide size (%d)", ErrInvalidParameters, p.MinMismatch, p.GuideSize)
	case p.GCMin >= p.GCMax:
		return fmt.Errorf("%w: GC minimum (%g) must be below GC maximum (%g)", ErrInvalidParameters, p.GCMin, p.GCMax)
	case p.GapOpen > 0 || p.GapExtend > 0:
		return fmt.Errorf("%w: gap costs must be ≤ 0 (open %d, extend %d)", ErrInvalidParameters, p.GapOpen, p.GapExtend)
	}
	return nil
}
