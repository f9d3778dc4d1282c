package guide

import "grnascan/internal/pattern"

// Generate scans strand for non-overlapping PAM matches and extracts the size
// bases immediately 5' of each match. Anchors with fewer than size upstream
// bases are skipped. Candidates are unique by sequence text; the first
// occurrence in scan order is kept. A nil result means nothing qualified.
func Generate(strand string, tag Strand, pam *pattern.Pattern, size int) []Grna {
	if size <= 0 {
		return nil
	}
	matches := pam.FindAll(strand)
	if len(matches) == 0 {
		return nil
	}

	var out []Grna
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		anchor := m[0]
		if anchor < size {
			continue
		}
		seq := strand[anchor-size : anchor]
		if _, dup := seen[seq]; dup {
			continue
		}
		seen[seq] = struct{}{}
		out = append(out, Grna{
			Sequence: seq,
			Position: anchor,
			Strand:   tag,
			PAM:      strand[m[0]:m[1]],
		})
	}
	return out
}
