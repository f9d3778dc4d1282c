package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"grnascan/internal/cli"
	"grnascan/internal/cmdutil"
	"grnascan/internal/config"
	"grnascan/internal/design"
	"grnascan/internal/fasta"
	"grnascan/internal/logging"
	"grnascan/internal/offtarget"
	"grnascan/internal/output"
	"grnascan/internal/store"
	"grnascan/internal/version"
	"grnascan/internal/writers"
)

func run(ctx context.Context, cmd *cobra.Command, opt cli.Options, stdout, stderr io.Writer) error {
	if err := config.LoadDotEnv(); err != nil {
		return &exitError{ExitUsage, err}
	}
	cfgPath := config.DefaultPath
	if opt.Config != "" {
		if _, err := os.Stat(opt.Config); err != nil {
			return &exitError{ExitUsage, fmt.Errorf("config: %w", err)}
		}
		cfgPath = opt.Config
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return &exitError{ExitUsage, err}
	}
	cli.ApplyConfig(cmd.Flags(), cfg, &opt)
	if err := cli.Validate(opt); err != nil {
		return &exitError{ExitUsage, err}
	}

	log, closeLog, err := logging.New(stderr, logging.Options{Level: opt.LogLevel, File: opt.LogFile})
	if err != nil {
		return &exitError{ExitUsage, err}
	}
	defer func() { _ = closeLog() }()

	target, err := loadSequence(ctx, "target", opt.Sequence, opt.SequenceFile, opt.Quiet, stderr)
	if err != nil {
		return &exitError{inputCode(err), err}
	}
	reference, err := loadSequence(ctx, "reference", opt.Reference, opt.ReferenceFile, opt.Quiet, stderr)
	if err != nil {
		return &exitError{inputCode(err), err}
	}
	selfRef := reference.Seq == ""
	if selfRef {
		reference.ID = target.ID
	}

	sess, err := design.New(target.Seq, reference.Seq, opt.Params(), design.WithLogger(log))
	if err != nil {
		return &exitError{exitCode(err, opt.NoMatchExitCode), err}
	}

	guides, err := sess.IdentifyGuides(ctx)
	if errors.Is(err, design.ErrNoGuidesFound) {
		cmdutil.Warnf(stderr, opt.Quiet, "%v", err)
		return &exitError{code: opt.NoMatchExitCode}
	}
	if err != nil {
		return &exitError{exitCode(err, opt.NoMatchExitCode), err}
	}

	var lists []offtarget.List
	if opt.OffTargets {
		lists, err = sess.IdentifyOffTargets(ctx, guides.All())
		if err != nil {
			return &exitError{exitCode(err, opt.NoMatchExitCode), err}
		}
	}
	results := output.Build(guides, lists, opt.OffTargets, selfRef)

	runID := store.NewRunID()
	meta := writers.Meta{
		RunID:        runID,
		Version:      version.Version,
		TargetID:     target.ID,
		TargetLength: len(target.Seq),
		ReferenceID:  reference.ID,
		PAM:          opt.PAM,
		GuideSize:    opt.GuideSize,
		Scanned:      opt.OffTargets,
		Header:       !opt.NoHeader,
	}
	in, done := writers.Start(opt.Output, stdout, meta, 64)
	if _, err := cmdutil.Stream(ctx, results, in, done); err != nil {
		return &exitError{exitCode(err, opt.NoMatchExitCode), err}
	}

	if opt.DB != "" {
		if err := archive(ctx, opt.DB, meta, results); err != nil {
			return &exitError{exitCode(err, opt.NoMatchExitCode), err}
		}
		log.Info("run archived", zap.String("run_id", runID), zap.String("db", opt.DB))
	}

	log.Debug("run finished",
		zap.String("run_id", runID),
		zap.Int("guides", len(results)),
		zap.Int("with_off_targets", len(lists)),
	)
	return nil
}

// loadSequence resolves a literal or a FASTA path into a record. Both empty
// yields an empty record.
func loadSequence(ctx context.Context, role, literal, path string, quiet bool, stderr io.Writer) (fasta.Record, error) {
	if path == "" {
		return fasta.Record{Seq: strings.TrimSpace(literal)}, nil
	}
	rec, extra, err := fasta.ReadFirst(ctx, path)
	if err != nil {
		return fasta.Record{}, fmt.Errorf("%s: %w", role, err)
	}
	if extra > 0 {
		cmdutil.Warnf(stderr, quiet, "%s: using first record %q of %s, ignoring %d more", role, rec.ID, path, extra)
	}
	return rec, nil
}

func archive(ctx context.Context, path string, m writers.Meta, results []output.Result) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	_, err = st.SaveRun(ctx, store.Run{
		ID:           m.RunID,
		Version:      m.Version,
		TargetID:     m.TargetID,
		TargetLength: m.TargetLength,
		ReferenceID:  m.ReferenceID,
		PAM:          m.PAM,
		GuideSize:    m.GuideSize,
		Scanned:      m.Scanned,
	}, results)
	return err
}

// inputCode classifies sequence loading failures: everything except an
// interrupt is a bad input.
func inputCode(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ExitInterrupted
	}
	return ExitUsage
}

// exitCode maps a design, scan or output error onto the process exit code.
func exitCode(err error, noMatch int) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	case errors.Is(err, design.ErrNoGuidesFound):
		return noMatch
	case errors.Is(err, design.ErrIncorrectDNASequence),
		errors.Is(err, design.ErrInvalidPattern),
		errors.Is(err, design.ErrInvalidPAM),
		errors.Is(err, design.ErrInvalidGRNAExclusionPattern),
		errors.Is(err, design.ErrInvalidGRNAInclusionPattern),
		errors.Is(err, design.ErrInvalidParameters):
		return ExitUsage
	default:
		return ExitIO
	}
}
