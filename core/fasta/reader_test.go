package fasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("multiple records", func(t *testing.T) {
		in := ">seq1 first target\nACGT\nACGT\n>seq2\nTTTT\n"
		recs, err := Parse(strings.NewReader(in))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("got %d records, want 2", len(recs))
		}
		if recs[0].ID != "seq1" || recs[0].Description != "first target" || string(recs[0].Seq) != "ACGTACGT" {
			t.Fatalf("record 0: %+v", recs[0])
		}
		if recs[1].ID != "seq2" || recs[1].Description != "" || string(recs[1].Seq) != "TTTT" {
			t.Fatalf("record 1: %+v", recs[1])
		}
	})

	t.Run("blank lines and indentation tolerated", func(t *testing.T) {
		in := ">s\n\n  ACGT  \n\nTT\n"
		recs, err := Parse(strings.NewReader(in))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(recs) != 1 || string(recs[0].Seq) != "ACGTTT" {
			t.Fatalf("records: %+v", recs)
		}
	})

	t.Run("headerless input is one anonymous record", func(t *testing.T) {
		recs, err := Parse(strings.NewReader("ACGTACGT\n"))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(recs) != 1 || recs[0].ID != "" || string(recs[0].Seq) != "ACGTACGT" {
			t.Fatalf("records: %+v", recs)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		recs, err := Parse(strings.NewReader(""))
		if err != nil || len(recs) != 0 {
			t.Fatalf("recs=%v err=%v", recs, err)
		}
	})
}

func TestParse_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(">z\nGGGG\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse gzip: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "z" || string(recs[0].Seq) != "GGGG" {
		t.Fatalf("records: %+v", recs)
	}
}

func TestParseOne(t *testing.T) {
	rec, err := ParseOne(strings.NewReader(">a\nAC\n>b\nGT\n"))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	if rec.ID != "a" || string(rec.Seq) != "AC" {
		t.Fatalf("record: %+v", rec)
	}

	if _, err := ParseOne(strings.NewReader("")); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("err = %v, want ErrNoRecords", err)
	}
}

func TestStreamCtx_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := StreamCtx(ctx, strings.NewReader(">a\nAC\n>b\nGT\n"), func(Record) error {
		t.Fatal("emit after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestStreamCtx_EmitError(t *testing.T) {
	boom := errors.New("boom")
	err := StreamCtx(context.Background(), strings.NewReader(">a\nAC\n>b\nGT\n"), func(Record) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
