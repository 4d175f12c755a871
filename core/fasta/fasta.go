// core/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence. ID is the first whitespace-separated
// token of the header line.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx parses FASTA from r and emits one Record per sequence, whole.
// Strobemer windows must see the complete record, so no chunking happens
// here. It is cancelable, returning promptly when ctx is done even
// mid-record.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var id string
	seq := make([]byte, 0, 1<<20)
	open := false

	flush := func() error {
		if !open {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			fields := bytes.Fields(line[1:])
			id = ""
			if len(fields) > 0 {
				id = string(fields[0])
			}
			seq = seq[:0]
			open = true
			continue
		}
		// sequence data before any header: treat as an anonymous record
		open = true
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta: scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path ("-" for stdin, gzip autodetected) and streams
// its records through emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamCtx(ctx, rc, emit)
}
