// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"grnascan/internal/config"
	"grnascan/internal/design"
	"grnascan/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Sequence      string // positional
	SequenceFile  string
	Reference     string
	ReferenceFile string

	// Guide parameters
	PAM              string
	GuideSize        int
	ExclusionPattern string
	InclusionPattern string
	GCMin            float64
	GCMax            float64

	// Off-target scan
	OffTargets  bool
	GapOpen     int
	GapExtend   int
	MinMismatch int
	Threads     int

	// Output
	Output          string
	NoHeader        bool
	DB              string
	NoMatchExitCode int

	// Process
	Config   string
	LogLevel string
	LogFile  string
	Quiet    bool
}

// Register binds every flag to opt, with the built-in defaults.
func Register(fs *pflag.FlagSet, opt *Options) {
	d := design.DefaultParams()
	c := config.DefaultConfig()

	fs.StringVarP(&opt.SequenceFile, "sequence-file", "s", "", "read the target from the first record of a FASTA file ('-' = stdin, .gz ok)")
	fs.StringVarP(&opt.Reference, "reference", "r", "", "off-target reference sequence (default: the target)")
	fs.StringVarP(&opt.ReferenceFile, "reference-file", "R", "", "read the reference from the first record of a FASTA file")

	fs.StringVarP(&opt.PAM, "pam", "p", d.PAM, "PAM motif; N matches any base")
	fs.IntVarP(&opt.GuideSize, "guide-size", "g", d.GuideSize, "guide length (nt)")
	fs.StringVar(&opt.ExclusionPattern, "exclusion-pattern", "", "drop guides matching this pattern")
	fs.StringVar(&opt.InclusionPattern, "inclusion-pattern", "", "keep only guides matching this pattern")
	fs.Float64Var(&opt.GCMin, "gc-min", d.GCMin, "minimum GC% (exclusive)")
	fs.Float64Var(&opt.GCMax, "gc-max", d.GCMax, "maximum GC% (exclusive)")

	fs.BoolVar(&opt.OffTargets, "off-targets", false, "scan the reference for off-target sites (with the default reference, a guide's own site is marked on-target)")
	fs.IntVar(&opt.GapOpen, "gap-open", d.GapOpen, "alignment gap open score (<= 0)")
	fs.IntVar(&opt.GapExtend, "gap-extend", d.GapExtend, "alignment gap extend score (<= 0)")
	fs.IntVarP(&opt.MinMismatch, "min-mismatch-tolerance", "m", d.MinMismatch, "hits must score at least guide-size minus this")
	fs.IntVarP(&opt.Threads, "threads", "t", d.Threads, "off-target scan workers (0 = all CPUs)")

	fs.StringVarP(&opt.Output, "output", "o", c.Output.Format, "output format: "+strings.Join(output.Formats, " | "))
	fs.BoolVar(&opt.NoHeader, "no-header", false, "suppress header line in text/TSV")
	fs.StringVar(&opt.DB, "db", "", "archive the run into this SQLite file")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", c.Output.NoMatchExitCode, "exit code when no guides are found")

	fs.StringVar(&opt.Config, "config", "", "YAML config file (default: "+config.DefaultPath+" if present)")
	fs.StringVar(&opt.LogLevel, "log-level", c.Logging.Level, "log level: debug | info | warn | error")
	fs.StringVar(&opt.LogFile, "log-file", "", "also write JSON logs to this rotated file")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress warnings on stderr")
}

// ApplyConfig copies config values into opt for every flag the user did not
// set explicitly, so flags always win over config and environment.
func ApplyConfig(fs *pflag.FlagSet, cfg *config.Config, opt *Options) {
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && !f.Changed {
			apply()
		}
	}
	set("pam", func() { opt.PAM = cfg.Guide.PAM })
	set("guide-size", func() { opt.GuideSize = cfg.Guide.Size })
	set("exclusion-pattern", func() { opt.ExclusionPattern = cfg.Guide.ExclusionPattern })
	set("inclusion-pattern", func() { opt.InclusionPattern = cfg.Guide.InclusionPattern })
	set("gc-min", func() { opt.GCMin = cfg.Guide.GCMin })
	set("gc-max", func() { opt.GCMax = cfg.Guide.GCMax })
	set("off-targets", func() { opt.OffTargets = cfg.OffTarget.Enabled })
	set("gap-open", func() { opt.GapOpen = cfg.OffTarget.GapOpen })
	set("gap-extend", func() { opt.GapExtend = cfg.OffTarget.GapExtend })
	set("min-mismatch-tolerance", func() { opt.MinMismatch = cfg.OffTarget.MinMismatch })
	set("threads", func() { opt.Threads = cfg.OffTarget.Threads })
	set("output", func() { opt.Output = cfg.Output.Format })
	set("no-header", func() { opt.NoHeader = cfg.Output.NoHeader })
	set("no-match-exit-code", func() { opt.NoMatchExitCode = cfg.Output.NoMatchExitCode })
	set("db", func() { opt.DB = cfg.Store.Path })
	set("log-level", func() { opt.LogLevel = cfg.Logging.Level })
	set("log-file", func() { opt.LogFile = cfg.Logging.File })
}

// Validate checks flag combinations. Guide and alignment parameters are
// validated by the design session itself.
func Validate(opt Options) error {
	switch {
	case opt.Sequence != "" && opt.SequenceFile != "":
		return errors.New("SEQUENCE conflicts with --sequence-file")
	case opt.Sequence == "" && opt.SequenceFile == "":
		return errors.New("provide a SEQUENCE argument or --sequence-file")
	case opt.Reference != "" && opt.ReferenceFile != "":
		return errors.New("--reference conflicts with --reference-file")
	case opt.SequenceFile == "-" && opt.ReferenceFile == "-":
		return errors.New("only one of --sequence-file and --reference-file may read stdin")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be within 0..255")
	}
	if !slices.Contains(output.Formats, opt.Output) {
		return fmt.Errorf("invalid --output %q", opt.Output)
	}
	return nil
}

// Params converts the options into design parameters.
func (o Options) Params() design.Params {
	return design.Params{
		PAM:              o.PAM,
		GuideSize:        o.GuideSize,
		ExclusionPattern: o.ExclusionPattern,
		InclusionPattern: o.InclusionPattern,
		GCMin:            o.GCMin,
		GCMax:            o.GCMax,
		GapOpen:          o.GapOpen,
		GapExtend:        o.GapExtend,
		MinMismatch:      o.MinMismatch,
		Threads:          o.Threads,
	}
}
