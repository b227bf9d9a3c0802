// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry. ID is the first header token;
// Description is the remainder of the header line, if any.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

var ErrNoRecords = errors.New("fasta: no records")

// NewReader wraps r, transparently decoding gzip input. Detection is by
// magic number (1F 8B), so plain text passes through untouched.
func NewReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	sig, err := br.Peek(2)
	if err != nil {
		// Short or empty input; let the scanner deal with it.
		return br, nil
	}
	if sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("fasta: gzip: %w", err)
		}
		return gr, nil
	}
	return br, nil
}

// StreamCtx parses FASTA from r and calls emit once per record.
// Cancellation via ctx is honored promptly, even mid-record. Input with
// sequence data before any header is treated as a single anonymous
// record.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	rr, err := NewReader(r)
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(rr)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur  Record
		open bool
	)
	flush := func() error {
		if !open && len(cur.Seq) == 0 {
			return nil
		}
		if err := emit(cur); err != nil {
			return err
		}
		cur = Record{}
		open = false
		return nil
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
			id, desc := parseHeader(line[1:])
			cur = Record{ID: id, Description: desc}
			open = true
			continue
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// Parse reads every record from r.
func Parse(r io.Reader) ([]Record, error) {
	var out []Record
	err := StreamCtx(context.Background(), r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

// ParseOne reads exactly the first record from r; ErrNoRecords when the
// input holds none.
func ParseOne(r io.Reader) (Record, error) {
	var (
		out   Record
		found bool
	)
	stop := errors.New("stop")
	err := StreamCtx(context.Background(), r, func(rec Record) error {
		out = rec
		found = true
		return stop
	})
	if err != nil && !errors.Is(err, stop) {
		return Record{}, err
	}
	if !found {
		return Record{}, ErrNoRecords
	}
	return out, nil
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
