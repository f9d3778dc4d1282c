// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"grnascan/internal/cli"
	"grnascan/internal/cmdutil"
	"grnascan/internal/version"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// exitError carries a process exit code out of the cobra RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}
func (e *exitError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opt cli.Options
	cmd := &cobra.Command{
		Use:   "grnascan [flags] <SEQUENCE>",
		Short: "grnascan: CRISPR guide RNA design with off-target screening",
		Long: `grnascan finds PAM-anchored guide RNAs on both strands of a DNA sequence,
filters them by GC content and motif, and optionally screens each guide
against a reference for off-target sites with semiglobal alignment.`,
		Example: `  grnascan ACGATCGATCGTAGCTAGCATGG
  grnascan -s target.fa -R genome.fa.gz --off-targets -t 0 -o jsonl
  grnascan -s - --pam TTTN --gc-min 30 --gc-max 70 --db runs.db < target.fa`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opt.Sequence = args[0]
			}
			return run(cmd.Context(), cmd, opt, stdout, stderr)
		},
	}
	cmd.SetVersionTemplate("grnascan version {{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cli.Register(cmd.Flags(), &opt)
	cmd.Flags().SortFlags = false
	return cmd
}

// RunContext parses argv, runs the design and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil && ee.code != ExitOK {
			cmdutil.Errorf(stderr, "%v", ee.err)
		}
		return ee.code
	}
	// flag parsing and argument count errors
	cmdutil.Errorf(stderr, "%v", err)
	_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	return ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
