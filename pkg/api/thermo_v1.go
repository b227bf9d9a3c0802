// pkg/api/thermo_v1.go
package api

// ThermoV1 is the stable schema for a melting-temperature calculation.
type ThermoV1 struct {
	Sequence string  `json:"sequence"`
	Tm       float64 `json:"tm"`
	DeltaG   float64 `json:"delta_g"`
	Method   string  `json:"method"` // "strict" | "lenient"
}

// BreakdownV1 itemizes the energetic contributions of a comprehensive
// calculation.
type BreakdownV1 struct {
	NearestNeighbor   float64 `json:"nearest_neighbor"`
	TerminalEffects   float64 `json:"terminal_effects"`
	MismatchPenalty   float64 `json:"mismatch_penalty"`
	LoopStructures    float64 `json:"loop_structures"`
	SaltCorrection    float64 `json:"salt_correction"`
	MolecularCrowding float64 `json:"molecular_crowding"`
}

// ComprehensiveV1 is the stable schema for a full thermodynamic report.
type ComprehensiveV1 struct {
	Sequence             string      `json:"sequence"`
	Tm                   float64     `json:"tm"`
	DeltaH               float64     `json:"delta_h"`
	DeltaS               float64     `json:"delta_s"`
	DeltaG               float64     `json:"delta_g"`
	FormationProbability float64     `json:"formation_probability"`
	CorrectionsApplied   []string    `json:"corrections_applied,omitempty"`
	Breakdown            BreakdownV1 `json:"breakdown"`
}
