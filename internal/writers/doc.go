// Package writers turns design results into serialized outputs.
//
// Writers own all presentation knowledge (TSV, JSON, JSONL). JSON and JSONL
// go through pkg/api (v1) for a stable wire format.
package writers
