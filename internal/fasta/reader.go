// Package fasta reads target and reference sequences from FASTA files.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNoRecords is returned when the input holds no sequence at all.
var ErrNoRecords = errors.New("fasta: no records")

// Record is one parsed FASTA entry. Seq has line breaks and surrounding
// whitespace removed but is otherwise as written.
type Record struct {
	ID  string
	Seq string
}

// StreamCtx parses FASTA from r and calls emit once per record. Text before
// the first header is treated as an anonymous record. Cancellation is
// checked per line.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		started bool
		seq     = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !started {
			return nil
		}
		return emit(Record{ID: id, Seq: string(seq)})
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			seq = seq[:0]
			started = true
			continue
		}
		started = true
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadFirst returns the first record in path and how many records followed
// it. Use "-" for stdin.
func ReadFirst(ctx context.Context, path string) (Record, int, error) {
	rc, err := Open(path)
	if err != nil {
		return Record{}, 0, err
	}
	defer rc.Close()

	var (
		first Record
		n     int
	)
	err = StreamCtx(ctx, rc, func(r Record) error {
		if n == 0 {
			first = r
		}
		n++
		return nil
	})
	if err != nil {
		return Record{}, 0, err
	}
	if n == 0 {
		return Record{}, 0, fmt.Errorf("%s: %w", path, ErrNoRecords)
	}
	return first, n - 1, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
