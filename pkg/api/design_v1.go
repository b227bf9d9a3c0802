// pkg/api/design_v1.go
package api

import "time"

// PrimerV1 is the stable JSON schema for a single designed primer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PrimerV1 struct {
	Sequence            string   `json:"sequence"`
	Position            int      `json:"position"`
	Length              int      `json:"length"`
	Tm                  float64  `json:"tm"`
	GCContent           float64  `json:"gc_content"`
	SelfDimerScore      float64  `json:"self_dimer_score"`
	HairpinScore        float64  `json:"hairpin_score"`
	ThreePrimeStability float64  `json:"three_prime_stability"`
	Direction           string   `json:"direction"` // "forward" | "reverse"
	QualityScore        float64  `json:"quality_score"`
	QualityWarnings     []string `json:"quality_warnings,omitempty"`
}

// ValidationV1 summarizes the structural checks run on a pair.
type ValidationV1 struct {
	SelfDimerCheck   bool     `json:"self_dimer_check"`
	HairpinCheck     bool     `json:"hairpin_check"`
	HeteroDimerCheck *bool    `json:"hetero_dimer_check,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

// PrimerPairV1 is the stable schema for a scored primer pair.
type PrimerPairV1 struct {
	ID                 string        `json:"id"`
	Forward            PrimerV1      `json:"forward"`
	Reverse            PrimerV1      `json:"reverse"`
	AmpliconLength     int           `json:"amplicon_length"`
	AmpliconSequence   string        `json:"amplicon_sequence,omitempty"`
	TargetGene         string        `json:"target_gene,omitempty"`
	CompatibilityScore float64       `json:"compatibility_score"`
	CreatedBy          string        `json:"created_by,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	Validation         *ValidationV1 `json:"validation,omitempty"`
}

// MultiplexV1 reports pairwise coexistence scores for a designed set.
type MultiplexV1 struct {
	Matrix       map[string]map[string]float64 `json:"matrix"`
	Warnings     []string                      `json:"warnings,omitempty"`
	OverallScore float64                       `json:"overall_score"`
}

// DesignResultV1 is the top-level output of a design run.
type DesignResultV1 struct {
	Pairs       []PrimerPairV1 `json:"pairs"`
	TargetStart int            `json:"target_start"`
	TargetEnd   int            `json:"target_end"`
	Multiplex   *MultiplexV1   `json:"multiplex,omitempty"`
}
