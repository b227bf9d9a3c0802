// core/thermo/presets.go
package thermo

// Watson-Crick propagation parameters (1 M Na+), SantaLucia (1998)
// unified set. Keys pair a top-strand dinucleotide with its reverse
// complement, so every stack is stored under both reading directions
// and lookups stay symmetric.
var wcStacks = map[string]Params{
	// Canonical 10
	"AA/TT": {-7.9, -22.2},
	"AT/AT": {-7.2, -20.4},
	"TA/TA": {-7.2, -21.3},
	"CA/TG": {-8.5, -22.7},
	"GT/AC": {-8.4, -22.4},
	"CT/AG": {-7.8, -21.0},
	"GA/TC": {-8.2, -22.2},
	"CG/CG": {-10.6, -27.2},
	"GC/GC": {-9.8, -24.4},
	"GG/CC": {-8.0, -19.9},

	// Reverse-complement synonyms
	"TT/AA": {-7.9, -22.2}, // same as AA/TT
	"CC/GG": {-8.0, -19.9}, // same as GG/CC
	"TG/CA": {-8.5, -22.7}, // same as CA/TG
	"AC/GT": {-8.4, -22.4}, // same as GT/AC
	"AG/CT": {-7.8, -21.0}, // same as CT/AG
	"TC/GA": {-8.2, -22.2}, // same as GA/TC
}

var terminalInitiation = map[byte]Params{
	'A': {2.3, 4.1},
	'T': {2.3, 4.1},
	'G': {0.1, -2.8},
	'C': {0.1, -2.8},
}

// Mismatch stacks: G·T wobbles (Allawi & SantaLucia 1997), G·A
// (Allawi & SantaLucia 1998), like-with-like pairs (SantaLucia 1999).
var mismatchStacks = map[string]Params{
	"GT/TG": {-4.1, -9.5},
	"GG/TT": {-2.8, -5.3},
	"TG/GT": {-4.1, -9.5},
	"TT/GG": {-2.8, -5.3},

	"GA/AG": {-0.6, -1.3},
	"GG/AA": {-0.6, -1.3},
	"AG/GA": {-0.6, -1.3},
	"AA/GG": {-0.6, -1.3},

	"AA/AA": {1.2, 1.7},
	"CC/CC": {0.6, -0.6},
	"GG/GG": {3.1, 5.8},
	"TT/TT": {1.2, 1.7},

	"CT/TC": {-0.1, -1.5},
	"CC/TT": {-0.1, -1.5},

	"AC/CA": {2.3, 5.3},
	"AT/TA": {1.2, 1.7},
}

// NNDB2024 builds the modern parameter set. Stack values are still the
// SantaLucia unified numbers; the preset additionally carries mismatch,
// loop, and special-sequence tables used by structure analyses.
func NNDB2024() *Database {
	db := &Database{
		name:            "nndb_2024",
		nearestNeighbor: wcStacks,
		initiation:      terminalInitiation,
		mismatches:      mismatchStacks,
		symmetricLoops: map[int]Params{
			1: {0.0, -9.3},
			2: {0.0, -10.4},
			3: {0.0, -12.6},
		},
		asymmetricLoops: map[string]Params{
			"1x2": {1.6, 0.0},
			"1x3": {1.9, 0.0},
		},
		bulgeLoops: map[int]Params{
			1: {3.8, 2.8},
			2: {2.8, -0.1},
			3: {3.2, 0.5},
		},
		hairpinLoops: map[int]Params{
			3: {5.7, 9.4},
			4: {5.6, 9.5},
			5: {5.8, 10.2},
		},
		specialSeqs: map[string]Params{
			"TLOOP": {-1.0, -4.0},
			"CLOOP": {-0.5, -2.0},
		},
		Salt: DefaultSalt(),
	}
	return db
}

// SantaLucia1998 builds the legacy set: Watson-Crick stacks and terminal
// initiation only. Kept so Tm values of older saved designs reproduce.
func SantaLucia1998() *Database {
	return &Database{
		name:            "santalucia_1998",
		nearestNeighbor: wcStacks,
		initiation:      terminalInitiation,
		mismatches:      map[string]Params{},
		symmetricLoops:  map[int]Params{},
		asymmetricLoops: map[string]Params{},
		bulgeLoops:      map[int]Params{},
		hairpinLoops:    map[int]Params{},
		specialSeqs:     map[string]Params{},
		Salt:            DefaultSalt(),
	}
}
