// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"primedesign-core/design"
	"primedesign/pkg/api"
)

func sampleResult() *design.Result {
	hd := true
	return &design.Result{
		Pairs: []design.Pair{
			{
				ID: "pair-001",
				Forward: design.Primer{
					Sequence: "ACGTACGTACGTACGTAC", Position: 10, Length: 18,
					Tm: 58.2, GCContent: 50, Direction: design.Forward, QualityScore: 92.5,
				},
				Reverse: design.Primer{
					Sequence: "TGCATGCATGCATGCATG", Position: 210, Length: 18,
					Tm: 57.9, GCContent: 50, Direction: design.Reverse, QualityScore: 90.0,
				},
				AmpliconLength:     218,
				AmpliconSequence:   "ACGT",
				CompatibilityScore: 1.234,
				CreatedBy:          "system",
				CreatedAt:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				Validation: design.ValidationResults{
					SelfDimerCheck: true, HairpinCheck: true, HeteroDimerCheck: &hd,
				},
			},
		},
		TargetStart: 50,
		TargetEnd:   150,
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleResult(), true); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"target region 50..150, 1 pair(s)",
		"#1 pair-001",
		"amplicon 218 bp",
		"ACGTACGTACGTACGTAC",
		"forward",
		"reverse",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text output missing %q:\n%s", want, got)
		}
	}
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, &design.Result{}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "no primer pairs found") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, sampleResult(), true); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "pair_id\tdirection") {
		t.Errorf("bad header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "pair-001\tforward\tACGTACGTACGTACGTAC\t10\t18\t58.20\t50.0\t92.5\t218\t1.234") {
		t.Errorf("bad forward row %q", lines[1])
	}

	buf.Reset()
	if err := WriteTSV(&buf, sampleResult(), false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(buf.String(), "pair_id") {
		t.Error("header printed despite header=false")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var res api.DesignResultV1
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(res.Pairs) != 1 || res.Pairs[0].ID != "pair-001" {
		t.Fatalf("pairs = %+v", res.Pairs)
	}
	p := res.Pairs[0]
	if p.Forward.Direction != "forward" || p.Reverse.Direction != "reverse" {
		t.Errorf("directions = %q/%q", p.Forward.Direction, p.Reverse.Direction)
	}
	if p.Validation == nil || !p.Validation.SelfDimerCheck {
		t.Errorf("validation = %+v", p.Validation)
	}
	if res.TargetStart != 50 || res.TargetEnd != 150 {
		t.Errorf("region = %d..%d", res.TargetStart, res.TargetEnd)
	}
	if res.Multiplex != nil {
		t.Error("multiplex should be omitted")
	}
}

func TestFromResult_Multiplex(t *testing.T) {
	r := sampleResult()
	r.Multiplex = &design.MultiplexCompatibility{
		Matrix:       map[string]map[string]float64{"pair-001": {}},
		OverallScore: 1.0,
	}
	v := FromResult(r)
	if v.Multiplex == nil || v.Multiplex.OverallScore != 1.0 {
		t.Fatalf("multiplex = %+v", v.Multiplex)
	}
}
