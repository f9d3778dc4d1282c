package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grnascan/internal/store"
	"grnascan/pkg/api"
)

const mixed = "AGCTTAGCTAGGAAGCTTAGCTAGGAAGCTTAGCTAGGAAGCTTAGCTAGGAACGCATGACTAGCATGCATGCATCGTACGTAGCTTTAAATCGATAGG"

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := RunContext(context.Background(), args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := runArgs(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--min-mismatch-tolerance")

	code, out, _ = runArgs(t, "--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "grnascan version "))
}

func TestUsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"no input":      {},
		"unknown flag":  {"--nope", mixed},
		"two sequences": {mixed, mixed},
		"bad output":    {"-o", "fasta", mixed},
		"bad log level": {"--log-level", "chatty", mixed},
		"missing file":  {"-s", filepath.Join(t.TempDir(), "absent.fa")},
		"missing cfg":   {"--config", filepath.Join(t.TempDir(), "absent.yaml"), mixed},
	} {
		t.Run(name, func(t *testing.T) {
			code, out, stderr := runArgs(t, args...)
			assert.Equal(t, ExitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, "error:")
		})
	}
}

func TestDesignErrorsAreUsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"bad dna":         {"ACGU"},
		"bad reference":   {"-r", "ACGN", mixed},
		"bad pam":         {"--pam", "N(GG", mixed},
		"bad exclusion":   {"--exclusion-pattern", "[AG", mixed},
		"bad inclusion":   {"--inclusion-pattern", "*", mixed},
		"bad mismatches":  {"-m", "20", mixed},
		"inverted window": {"--gc-min", "60", "--gc-max", "40", mixed},
	} {
		t.Run(name, func(t *testing.T) {
			code, _, _ := runArgs(t, args...)
			assert.Equal(t, ExitUsage, code)
		})
	}
}

func TestNoGuidesFound(t *testing.T) {
	code, out, stderr := runArgs(t, "AGCTTAGCTAGGA")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "no compatible gRNAs found")

	code, _, stderr = runArgs(t, "-q", "--no-match-exit-code", "0", "AGCTTAGCTAGGA")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
}

func TestTextOutputWithOffTargets(t *testing.T) {
	code, out, _ := runArgs(t, "--off-targets", mixed)
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "strand\t"))
	assert.Equal(t, "fw\t22\t2\t22\tCTTAGCTAGGAAGCTTAGCT\tAGG\t45.00\t2\t20:2-22*,20:28-48", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "\t1\t20:76-96*"))
}

func TestTextOutputFilters(t *testing.T) {
	code, out, _ := runArgs(t, "--no-header", "--inclusion-pattern", "TTT", mixed)
	require.Equal(t, 0, code)
	assert.Equal(t, "fw\t96\t76\t96\tGTACGTAGCTTTAAATCGAT\tAGG\t35.00\t-\t-\n", out)
}

func TestJSONOutput(t *testing.T) {
	code, out, _ := runArgs(t, "-o", "json", "--off-targets", "-t", "2", mixed)
	require.Equal(t, 0, code)

	var rep api.ReportV1
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, len(mixed), rep.TargetLength)
	assert.True(t, rep.OffTargets)
	require.Len(t, rep.Results, 2)
	assert.Equal(t, "fw", rep.Results[0].Guide.Strand)
	require.Len(t, rep.Results[0].OffTargets, 2)
	assert.True(t, rep.Results[0].OffTargets[0].OnTarget)
	assert.False(t, rep.Results[0].OffTargets[1].OnTarget)
}

func TestReverseStrandCoordinates(t *testing.T) {
	code, out, _ := runArgs(t, "-o", "jsonl", "CCTACGATCGATCGTAGCTAGCA")
	require.Equal(t, 0, code)

	var v api.ResultV1
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &v))
	assert.Equal(t, "rv", v.Guide.Strand)
	assert.Equal(t, "TGCTAGCTACGATCGATCGT", v.Guide.Sequence)
	assert.Equal(t, 3, v.Guide.Start)
	assert.Equal(t, 23, v.Guide.End)
	assert.Nil(t, v.HitCount)
}

func TestFastaInputAndArchive(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "target.fa")
	require.NoError(t, os.WriteFile(fa, []byte(">t1 demo\n"+mixed[:50]+"\n"+mixed[50:]+"\n>t2\nACGT\n"), 0o644))
	db := filepath.Join(dir, "runs.db")

	code, out, stderr := runArgs(t, "-s", fa, "--off-targets", "-o", "jsonl", "--db", db)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "ignoring 1 more")

	first := strings.SplitN(out, "\n", 2)[0]
	var v api.ResultV1
	require.NoError(t, json.Unmarshal([]byte(first), &v))
	require.NotEmpty(t, v.RunID)

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	run, err := st.GetRun(context.Background(), v.RunID)
	require.NoError(t, err)
	assert.Equal(t, "t1", run.TargetID)
	assert.Equal(t, "t1", run.ReferenceID)
	guides, hits, err := st.CountGuides(context.Background(), v.RunID)
	require.NoError(t, err)
	assert.Equal(t, 2, guides)
	assert.Equal(t, 3, hits)
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "grnascan.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("guide:\n  inclusion_pattern: TTT\noutput:\n  format: jsonl\n"), 0o644))

	code, out, _ := runArgs(t, "--config", cfg, mixed)
	require.Equal(t, 0, code)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	// flags win over the file
	code, out, _ = runArgs(t, "--config", cfg, "-o", "text", "--no-header", mixed)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "fw\t96\t"))
}

func TestInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := RunContext(ctx, []string{mixed}, &out, &errBuf)
	assert.Equal(t, ExitInterrupted, code)
}
