// Package output turns design results into their presentation forms: the
// v1 wire structs and TSV rows.
package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every format in help order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL}

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "strand\tposition\tstart\tend\tsequence\tpam\tgc\thit_count\thits"
