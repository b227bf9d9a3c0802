// core/design/types.go
package design

import "time"

// Direction is the strand a primer anneals to.
type Direction string

const (
	Forward Direction = "forward"
	Reverse Direction = "reverse"
)

// Primer is one scored candidate. Position is the 0-based offset of the
// annealing site on the input sequence; for reverse primers Sequence is
// already reverse-complemented (5'→3' on the opposite strand).
type Primer struct {
	Sequence            string    `json:"sequence"`
	Position            int       `json:"position"`
	Length              int       `json:"length"`
	Tm                  float64   `json:"tm"`
	GCContent           float64   `json:"gc_content"`
	SelfDimerScore      float64   `json:"self_dimer_score"`
	HairpinScore        float64   `json:"hairpin_score"`
	ThreePrimeStability float64   `json:"three_prime_stability"`
	Direction           Direction `json:"direction"`
	QualityScore        float64   `json:"quality_score"`
	QualityWarnings     []string  `json:"quality_warnings,omitempty"`
}

// ValidationResults records per-pair acceptance checks.
type ValidationResults struct {
	SelfDimerCheck   bool     `json:"self_dimer_check"`
	HairpinCheck     bool     `json:"hairpin_check"`
	HeteroDimerCheck *bool    `json:"hetero_dimer_check,omitempty"`
	Specificity      *float64 `json:"specificity,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

// IsValid requires both structure checks to pass and no warnings.
func (v ValidationResults) IsValid() bool {
	return v.SelfDimerCheck && v.HairpinCheck && len(v.Warnings) == 0
}

// Pair is a forward/reverse primer pair with its amplicon.
type Pair struct {
	ID                 string            `json:"id"`
	Forward            Primer            `json:"forward"`
	Reverse            Primer            `json:"reverse"`
	AmpliconLength     int               `json:"amplicon_length"`
	AmpliconSequence   string            `json:"amplicon_sequence"`
	TargetGene         string            `json:"target_gene,omitempty"`
	TargetTranscript   string            `json:"target_transcript,omitempty"`
	CompatibilityScore float64           `json:"compatibility_score"`
	CreatedBy          string            `json:"created_by"`
	CreatedAt          time.Time         `json:"created_at"`
	Tags               []string          `json:"tags,omitempty"`
	Validation         ValidationResults `json:"validation_results"`
}

// MultiplexCompatibility scores the mutual fit of several pairs in one
// reaction. Matrix holds the pairwise score for every ordered (a, b),
// a ≠ b, keyed by pair ID.
type MultiplexCompatibility struct {
	Matrix       map[string]map[string]float64 `json:"compatibility_matrix"`
	Warnings     []string                      `json:"warnings,omitempty"`
	OverallScore float64                       `json:"overall_score"`
}

// Result is the full outcome of one design run.
type Result struct {
	Pairs          []Pair                  `json:"pairs"`
	Params         Params                  `json:"design_params"`
	TargetSequence string                  `json:"target_sequence"`
	TargetStart    int                     `json:"target_start"`
	TargetEnd      int                     `json:"target_end"`
	Multiplex      *MultiplexCompatibility `json:"multiplex_compatibility,omitempty"`
}
