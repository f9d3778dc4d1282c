// Package design is the entry point for guide design: it validates the input
// sequences once, then answers the two questions the CLI asks of it: which
// guides does the target offer, and where else might they bind.
package design

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"grnascan/internal/dna"
	"grnascan/internal/guide"
	"grnascan/internal/offtarget"
	"grnascan/internal/pattern"
)

// Session is an immutable, validated design request.
type Session struct {
	seq       string
	revcomp   string
	reference string
	params    Params
	log       *zap.Logger
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New validates sequence and reference and stores the reverse complement.
// An empty reference means "search the target itself".
func New(sequence, reference string, p Params, opts ...Option) (*Session, error) {
	if err := dna.Validate(sequence); err != nil {
		return nil, fmt.Errorf("%w: target: %v", ErrIncorrectDNASequence, err)
	}
	if err := dna.Validate(reference); err != nil {
		return nil, fmt.Errorf("%w: reference: %v", ErrIncorrectDNASequence, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	rc, err := dna.RevComp(sequence)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncorrectDNASequence, err)
	}
	if reference == "" {
		reference = sequence
	}
	s := &Session{seq: sequence, revcomp: rc, reference: reference, params: p, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *Session) Sequence() string          { return s.seq }
func (s *Session) ReverseComplement() string { return s.revcomp }
func (s *Session) Reference() string         { return s.reference }
func (s *Session) Params() Params            { return s.params }

// IdentifyGuides compiles the configured motifs, generates and filters
// candidates on both strands and merges the survivors by strand.
func (s *Session) IdentifyGuides(ctx context.Context) (guide.Collection, error) {
	pam, err := pattern.Compile(s.params.PAM)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPAM, err)
	}
	exclude, err := pattern.CompileOptional(s.params.ExclusionPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGRNAExclusionPattern, err)
	}
	include, err := pattern.CompileOptional(s.params.InclusionPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGRNAInclusionPattern, err)
	}
	filters := guide.NewPipeline(s.params.GCMin, s.params.GCMax, exclude, include)

	strands := map[guide.Strand]string{guide.Forward: s.seq, guide.Reverse: s.revcomp}
	found := make([][]guide.Grna, len(guide.Strands))

	g, gctx := errgroup.WithContext(ctx)
	for i, tag := range guide.Strands {
		i, tag := i, tag
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cands := guide.Generate(strands[tag], tag, pam, s.params.GuideSize)
			found[i] = filters.Apply(cands)
			s.log.Debug("strand scanned",
				zap.String("strand", string(tag)),
				zap.Int("candidates", len(cands)),
				zap.Int("kept", len(found[i])),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := guide.Collection{}
	for i, tag := range guide.Strands {
		if len(found[i]) > 0 {
			out[tag] = found[i]
		}
	}
	if len(out) == 0 {
		return nil, ErrNoGuidesFound
	}
	return out, nil
}

// IdentifyOffTargets scans the stored reference for each candidate. Finding
// nothing is a normal, empty result.
func (s *Session) IdentifyOffTargets(ctx context.Context, candidates []guide.Grna) ([]offtarget.List, error) {
	cfg := offtarget.Config{
		GuideSize:   s.params.GuideSize,
		GapOpen:     s.params.GapOpen,
		GapExtend:   s.params.GapExtend,
		MinMismatch: s.params.MinMismatch,
		Threads:     s.params.Threads,
	}
	lists, err := offtarget.Scan(ctx, candidates, s.reference, cfg)
	if err != nil {
		return nil, err
	}
	s.log.Debug("off-target scan finished",
		zap.Int("guides", len(candidates)),
		zap.Int("with_hits", len(lists)),
		zap.Int("desired_score", cfg.DesiredScore()),
	)
	return lists, nil
}
