// pkg/api/guides_v1.go
package api

// GuideV1 is the stable JSON/JSONL schema for one candidate guide.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GuideV1 struct {
	Sequence string  `json:"sequence"`
	Strand   string  `json:"strand"` // "fw" | "rv"
	Position int     `json:"position"`
	PAM      string  `json:"pam"`
	GC       float64 `json:"gc"`
	// Forward-strand half-open span of the guide, for either strand.
	Start int `json:"start"`
	End   int `json:"end"`
}

// OffTargetV1 is one reference hit. OnTarget marks the guide's own locus when
// the reference is the target itself.
type OffTargetV1 struct {
	Score    int  `json:"score"`
	Start    int  `json:"start"`
	End      int  `json:"end"`
	OnTarget bool `json:"on_target,omitempty"`
}

// ResultV1 is one guide with its off-target hits. HitCount is present only
// when the reference was scanned, so a zero count still shows up.
type ResultV1 struct {
	RunID      string        `json:"run_id,omitempty"`
	Guide      GuideV1       `json:"guide"`
	OffTargets []OffTargetV1 `json:"off_targets,omitempty"`
	HitCount   *int          `json:"hit_count,omitempty"`
}

// ReportV1 is the single-document JSON output.
type ReportV1 struct {
	RunID        string     `json:"run_id"`
	Version      string     `json:"version"`
	TargetID     string     `json:"target_id,omitempty"`
	TargetLength int        `json:"target_length"`
	ReferenceID  string     `json:"reference_id,omitempty"`
	PAM          string     `json:"pam"`
	GuideSize    int        `json:"guide_size"`
	OffTargets   bool       `json:"off_targets_scanned"`
	Results      []ResultV1 `json:"results"`
}
