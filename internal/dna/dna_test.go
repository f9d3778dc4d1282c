package dna

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevCompSimple(t *testing.T) {
	got, err := RevComp("AGTC")
	require.NoError(t, err)
	assert.Equal(t, "GACT", got)
}

func TestRevCompPreservesCase(t *testing.T) {
	got, err := RevComp("aGtC")
	require.NoError(t, err)
	assert.Equal(t, "GaCt", got)
}

func TestRevCompEmpty(t *testing.T) {
	got, err := RevComp("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRevCompRejectsAmbiguity(t *testing.T) {
	_, err := RevComp("ACGN")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBase))
}

func TestRevCompRoundTrip(t *testing.T) {
	in := "ACGTTGCAacgt"
	once, err := RevComp(in)
	require.NoError(t, err)
	twice, err := RevComp(once)
	require.NoError(t, err)
	assert.Equal(t, in, twice)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"ACGT", true},
		{"acgt", true},
		{"AcGt", true},
		{"ACGN", false},
		{"ACG T", false},
		{"ACGU", false},
		{"ÅCGT", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidBase)
			}
		})
	}
}

func TestValidateReportsPosition(t *testing.T) {
	err := Validate("ACXT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at 3")
}

func TestGCContent(t *testing.T) {
	assert.InDelta(t, 0.0, GCContent(""), 1e-9)
	assert.InDelta(t, 0.0, GCContent("ATAT"), 1e-9)
	assert.InDelta(t, 100.0, GCContent("GCgc"), 1e-9)
	assert.InDelta(t, 50.0, GCContent("ACGT"), 1e-9)
	assert.InDelta(t, 45.0, GCContent("CTTAGCTAGGAAGCTTAGCT"), 1e-9)
}
