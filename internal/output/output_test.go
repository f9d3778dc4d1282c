package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grnascan/internal/guide"
	"grnascan/internal/offtarget"
)

func TestTSVHeaderStable(t *testing.T) {
	const want = "strand\tposition\tstart\tend\tsequence\tpam\tgc\thit_count\thits"
	assert.Equal(t, want, TSVHeader)
	assert.Equal(t, []string{"text", "json", "jsonl"}, Formats)
}

var (
	fw = guide.Grna{Sequence: "ACGTACGTAC", Position: 12, Strand: guide.Forward, PAM: "TGG"}
	rv = guide.Grna{Sequence: "GGGGCCCCAA", Position: 15, Strand: guide.Reverse, PAM: "AGG"}
)

func TestBuildOrdersAndAttaches(t *testing.T) {
	col := guide.Collection{guide.Reverse: {rv}, guide.Forward: {fw}}
	lists := []offtarget.List{{Guide: rv, OffTargets: []offtarget.OffTarget{{Score: 9, Start: 1, End: 11}}}}

	got := Build(col, lists, true, false)
	require.Len(t, got, 2)
	assert.Equal(t, fw, got[0].Guide)
	assert.Empty(t, got[0].OffTargets)
	assert.True(t, got[0].Scanned)
	assert.Equal(t, rv, got[1].Guide)
	assert.Len(t, got[1].OffTargets, 1)
	assert.False(t, got[1].SelfReference)

	got = Build(col, nil, true, true)
	assert.True(t, got[0].SelfReference)
}

func TestOnTargetOnlyForOwnForwardSite(t *testing.T) {
	self := offtarget.OffTarget{Score: 10, Start: 2, End: 12}
	other := offtarget.OffTarget{Score: 10, Start: 20, End: 30}

	r := Result{Guide: fw, Scanned: true, SelfReference: true, OffTargets: []offtarget.OffTarget{self, other}}
	assert.True(t, r.OnTarget(self))
	assert.False(t, r.OnTarget(other))
	assert.Equal(t, "10:2-12*,10:20-30", HitsCSV(r))

	// a separate reference has no on-target locus
	r.SelfReference = false
	assert.False(t, r.OnTarget(self))
	assert.Equal(t, "10:2-12,10:20-30", HitsCSV(r))

	// reverse guides are never matched against their own forward span
	rvSelf := offtarget.OffTarget{Score: 10, Start: 5, End: 15}
	r = Result{Guide: rv, Scanned: true, SelfReference: true, OffTargets: []offtarget.OffTarget{rvSelf}}
	assert.False(t, r.OnTarget(rvSelf))
}

func TestFormatRowTSV(t *testing.T) {
	r := Result{Guide: rv, Scanned: true, OffTargets: []offtarget.OffTarget{{Score: 9, Start: 1, End: 11}, {Score: 10, Start: 20, End: 30}}}
	assert.Equal(t, "rv\t15\t15\t25\tGGGGCCCCAA\tAGG\t80.00\t2\t9:1-11,10:20-30", FormatRowTSV(r, 30))

	r = Result{Guide: fw}
	assert.Equal(t, "fw\t12\t2\t12\tACGTACGTAC\tTGG\t50.00\t-\t-", FormatRowTSV(r, 30))

	r.Scanned = true
	assert.Equal(t, "fw\t12\t2\t12\tACGTACGTAC\tTGG\t50.00\t0\t", FormatRowTSV(r, 30))
}

func TestToAPIResult(t *testing.T) {
	v := ToAPIResult(Result{Guide: rv}, 30, "run-1")
	assert.Equal(t, "run-1", v.RunID)
	assert.Equal(t, "rv", v.Guide.Strand)
	assert.Equal(t, 15, v.Guide.Start)
	assert.Equal(t, 25, v.Guide.End)
	assert.InDelta(t, 80.0, v.Guide.GC, 1e-9)
	assert.Nil(t, v.HitCount)
	assert.Nil(t, v.OffTargets)

	v = ToAPIResult(Result{Guide: fw, Scanned: true}, 30, "")
	require.NotNil(t, v.HitCount)
	assert.Equal(t, 0, *v.HitCount)

	hits := []offtarget.OffTarget{{Score: 10, Start: 2, End: 12}, {Score: 9, Start: 20, End: 30}}
	v = ToAPIResult(Result{Guide: fw, Scanned: true, SelfReference: true, OffTargets: hits}, 30, "")
	require.Len(t, v.OffTargets, 2)
	assert.True(t, v.OffTargets[0].OnTarget)
	assert.False(t, v.OffTargets[1].OnTarget)
	assert.Equal(t, 2, *v.HitCount)
}
