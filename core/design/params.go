// core/design/params.go
package design

// Params bounds candidate primers and pair acceptance. Zero value is
// not useful; start from DefaultParams.
type Params struct {
	LengthMin int     `json:"length_min"`
	LengthMax int     `json:"length_max"`
	TmMin     float64 `json:"tm_min"`
	TmMax     float64 `json:"tm_max"`
	TmOptimal float64 `json:"tm_optimal"`
	GCMin     float64 `json:"gc_min"`
	GCMax     float64 `json:"gc_max"`

	// Secondary-structure acceptance thresholds, kcal/mol. Scores are
	// negative when structures form; a primer passes when its score is
	// at or above (less negative than) the threshold.
	MaxSelfDimer   float64 `json:"max_self_dimer"`
	MaxHairpin     float64 `json:"max_hairpin"`
	MaxHeteroDimer float64 `json:"max_hetero_dimer"`
}

// DefaultParams are standard PCR design constraints.
func DefaultParams() Params {
	return Params{
		LengthMin:      18,
		LengthMax:      25,
		TmMin:          55.0,
		TmMax:          65.0,
		TmOptimal:      60.0,
		GCMin:          40.0,
		GCMax:          60.0,
		MaxSelfDimer:   -5.0,
		MaxHairpin:     -3.0,
		MaxHeteroDimer: -5.0,
	}
}

// Amplicon size and search-window constants.
const (
	ampliconMin = 100
	ampliconMax = 3000

	searchWindow = 50 // nt on either side of the target boundary

	maxTmDiff = 3.0 // °C between pair mates

	candidateCap = 50
	pairCap      = 10
)
