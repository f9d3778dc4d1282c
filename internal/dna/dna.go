// Package dna holds the small alphabet helpers shared by the guide and
// off-target code: validation, reverse complement and GC content.
package dna

import (
	"errors"
	"fmt"
)

// ErrInvalidBase is returned for any byte outside A/C/G/T (either case).
var ErrInvalidBase = errors.New("invalid DNA base")

/* ------------------------- complement lookup table ------------------------- */

var complement [256]byte

func init() {
	for _, p := range []string{"AT", "CG", "GC", "TA", "at", "cg", "gc", "ta"} {
		complement[p[0]] = p[1]
	}
}

// Validate returns nil for a valid word, otherwise an error wrapping
// ErrInvalidBase that names the first offending byte (1-based position).
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if complement[s[i]] == 0 {
			return fmt.Errorf("%w %q at %d", ErrInvalidBase, s[i], i+1)
		}
	}
	return nil
}

// RevComp returns the reverse complement of s. Case is preserved per base.
func RevComp(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			return "", fmt.Errorf("%w %q at %d", ErrInvalidBase, s[n-1-i], n-i)
		}
		out[i] = c
	}
	return string(out), nil
}

// GCContent returns the G+C percentage (0–100) of s, counting both cases.
// An empty sequence has 0% GC.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(s)) * 100
}
