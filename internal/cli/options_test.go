// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"math"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("primedesign")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs_Defaults(t *testing.T) {
	opt, err := parse(t, "--sequence", "ACGT", "--target-start", "10", "--target-end", "40")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.LengthMin != 18 || opt.LengthMax != 25 {
		t.Errorf("length bounds = %d..%d, want 18..25", opt.LengthMin, opt.LengthMax)
	}
	if opt.TmMin != 55 || opt.TmMax != 65 || opt.TmOpt != 60 {
		t.Errorf("tm bounds = %v/%v/%v", opt.TmMin, opt.TmMax, opt.TmOpt)
	}
	if opt.Output != "text" || !opt.Header {
		t.Errorf("output = %q header = %v", opt.Output, opt.Header)
	}
	if opt.NaSpec != "50mM" || opt.MgSpec != "2mM" || opt.PrimerConcSpec != "1uM" {
		t.Errorf("condition specs = %q %q %q", opt.NaSpec, opt.MgSpec, opt.PrimerConcSpec)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	cases := []struct {
		name string
		argv []string
	}{
		{"missing sequence", []string{"--target-start", "0", "--target-end", "10"}},
		{"missing region", []string{"--sequence", "ACGT"}},
		{"inverted region", []string{"--sequence", "ACGT", "--target-start", "40", "--target-end", "10"}},
		{"bad output", []string{"--sequence", "ACGT", "--target-start", "0", "--target-end", "10", "--output", "xml"}},
		{"inverted tm", []string{"--sequence", "ACGT", "--target-start", "0", "--target-end", "10", "--tm-min", "70", "--tm-max", "60"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse(t, tc.argv...); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestParseArgs_NoHeader(t *testing.T) {
	opt, err := parse(t, "--sequence", "ACGT", "--target-start", "0", "--target-end", "10", "--no-header", "--output", "tsv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.Header {
		t.Error("Header should be false with --no-header")
	}
}

func TestParseMolar(t *testing.T) {
	cases := []struct {
		spec string
		want float64
	}{
		{"50mM", 0.05},
		{"250nM", 250e-9},
		{"1uM", 1e-6},
		{"0.05", 0.05},
		{"2 mM", 0.002},
	}
	for _, tc := range cases {
		got, err := ParseMolar(tc.spec)
		if err != nil {
			t.Errorf("ParseMolar(%q): %v", tc.spec, err)
			continue
		}
		if math.Abs(got-tc.want) > tc.want*1e-12 {
			t.Errorf("ParseMolar(%q) = %g, want %g", tc.spec, got, tc.want)
		}
	}
	for _, bad := range []string{"", "mM", "12xM", "abc"} {
		if _, err := ParseMolar(bad); err == nil {
			t.Errorf("ParseMolar(%q) should fail", bad)
		}
	}
}
