// core/thermo/params.go
// Nearest-neighbor thermodynamic parameter database for DNA duplexes.
// Units: ΔH in kcal/mol, ΔS in cal/(K·mol), ΔG in kcal/mol.
//
// Dinucleotide keys are written top/bottom 5'→3', e.g. "AA/TT". A key and
// its reverse-complement-equivalent form describe the same stack, so both
// orientations resolve to identical parameters; lookups funnel through one
// canonicalization step rather than duplicating table entries ad hoc.
//
// This package has no app/output deps; design can import it cleanly.

package thermo

import "fmt"

// Params holds one ΔH/ΔS contribution.
type Params struct {
	DH float64 // kcal/mol
	DS float64 // cal/(K·mol)
}

// DeltaG returns the Gibbs free-energy change at tempK: ΔG = ΔH − T·ΔS.
func (p Params) DeltaG(tempK float64) float64 {
	return p.DH - tempK*(p.DS/1000.0)
}

// SaltConditions carries the ion concentrations used by salt corrections.
type SaltConditions struct {
	NaM    float64 // Na+, mol/L
	MgM    float64 // Mg2+, mol/L
	KM     float64 // K+, mol/L
	OtherM float64 // other monovalent cations, mol/L
}

// DefaultSalt is 50 mM Na+ / 2 mM Mg2+, typical PCR buffer.
func DefaultSalt() SaltConditions {
	return SaltConditions{NaM: 0.05, MgM: 0.002}
}

// Monovalent sums all monovalent cation species.
func (s SaltConditions) Monovalent() float64 { return s.NaM + s.KM + s.OtherM }

// Database is an immutable set of nearest-neighbor, initiation, mismatch,
// loop, and special-sequence parameters. Construct via a preset
// (NNDB2024, SantaLucia1998); do not mutate after construction.
type Database struct {
	name            string
	nearestNeighbor map[string]Params
	initiation      map[byte]Params
	mismatches      map[string]Params
	symmetricLoops  map[int]Params
	asymmetricLoops map[string]Params
	bulgeLoops      map[int]Params
	hairpinLoops    map[int]Params
	specialSeqs     map[string]Params

	Salt SaltConditions
}

// Name reports which preset built this database.
func (db *Database) Name() string { return db.name }

// NearestNeighbor looks up a dinucleotide stack by its "XY/ZW" key.
// Absent keys are a normal miss, not an error.
func (db *Database) NearestNeighbor(key string) (Params, bool) {
	p, ok := db.nearestNeighbor[key]
	return p, ok
}

// DinucleotideParams resolves the stack parameters for a top-strand
// dinucleotide, trying the canonical key and then the reversed
// orientation. Returns false for non-ACGT bases or unknown stacks.
func (db *Database) DinucleotideParams(dinuc string) (Params, bool) {
	if len(dinuc) != 2 {
		return Params{}, false
	}
	rc, ok := revCompDinuc(dinuc)
	if !ok {
		return Params{}, false
	}
	if p, ok := db.nearestNeighbor[dinuc+"/"+rc]; ok {
		return p, true
	}
	if p, ok := db.nearestNeighbor[rc+"/"+dinuc]; ok {
		return p, true
	}
	return Params{}, false
}

// Initiation returns the 5'/3' terminal contribution for a base.
func (db *Database) Initiation(base byte) (Params, bool) {
	p, ok := db.initiation[base]
	return p, ok
}

// Mismatch looks up a mismatched stack by "XY/ZW" key.
func (db *Database) Mismatch(key string) (Params, bool) {
	p, ok := db.mismatches[key]
	return p, ok
}

// SymmetricLoop returns parameters for an internal loop of equal arms.
func (db *Database) SymmetricLoop(size int) (Params, bool) {
	p, ok := db.symmetricLoops[size]
	return p, ok
}

// AsymmetricLoop returns parameters for an internal loop with unequal
// arms. The key is normalized so argument order does not matter.
func (db *Database) AsymmetricLoop(size1, size2 int) (Params, bool) {
	if size1 > size2 {
		size1, size2 = size2, size1
	}
	p, ok := db.asymmetricLoops[fmt.Sprintf("%dx%d", size1, size2)]
	return p, ok
}

// BulgeLoop returns parameters for a bulge of the given size.
func (db *Database) BulgeLoop(size int) (Params, bool) {
	p, ok := db.bulgeLoops[size]
	return p, ok
}

// HairpinLoop returns parameters for a hairpin loop of the given size.
func (db *Database) HairpinLoop(size int) (Params, bool) {
	p, ok := db.hairpinLoops[size]
	return p, ok
}

// SpecialSequence returns parameters for named motifs (TLOOP, CLOOP, ...).
func (db *Database) SpecialSequence(name string) (Params, bool) {
	p, ok := db.specialSeqs[name]
	return p, ok
}

// revCompDinuc reverse-complements a 2-mer; false on non-ACGT input.
func revCompDinuc(d string) (string, bool) {
	c1, ok1 := compBase(d[1])
	c0, ok0 := compBase(d[0])
	if !ok0 || !ok1 {
		return "", false
	}
	return string([]byte{c1, c0}), true
}

func compBase(b byte) (byte, bool) {
	switch b {
	case 'A':
		return 'T', true
	case 'T':
		return 'A', true
	case 'G':
		return 'C', true
	case 'C':
		return 'G', true
	default:
		return 0, false
	}
}
