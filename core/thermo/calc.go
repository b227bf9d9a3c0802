// core/thermo/calc.go
// Nearest-neighbor thermodynamic calculator.
//
// Steps for Tm:
//  1) Sum terminal initiation + per-stack ΔH/ΔS over adjacent dinucleotides.
//  2) Salt correction to ΔS: ΔS([Na+]) = ΔS(1M) + 0.368·n·ln[Na+].
//  3) Two-state Tm (K) → °C.
//
// One accumulation routine serves both entry points: the strict API
// (TmNearestNeighbor, DeltaG, Comprehensive) fails on unknown stacks,
// while the lenient API (TmLenient) treats them as zero contribution so
// broad candidate scans survive ambiguity codes.

package thermo

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
)

const (
	// Gas constant in cal/(K·mol)
	Rcal = 1.987

	kelvinOffset = 273.15
)

var (
	ErrSequenceTooShort = errors.New("thermo: sequence too short (minimum 2 bases)")
	ErrZeroEntropy      = errors.New("thermo: zero entropy in Tm denominator")
)

// UnknownDinucleotideError reports a stack absent from the database in
// both key orientations.
type UnknownDinucleotideError struct {
	Dinuc string
}

func (e *UnknownDinucleotideError) Error() string {
	return fmt.Sprintf("thermo: unknown dinucleotide %q", e.Dinuc)
}

// UnknownBaseError reports a base with no Watson-Crick complement.
type UnknownBaseError struct {
	Base byte
}

func (e *UnknownBaseError) Error() string {
	return fmt.Sprintf("thermo: unknown base %q", string(e.Base))
}

// Conditions are the tunable knobs applied to every calculation.
type Conditions struct {
	TemperatureK            float64 // K
	PrimerConcM             float64 // total primer concentration, mol/L
	ApplySymmetryCorrection bool
	MolecularCrowding       bool
	MismatchPenaltyWeight   float64
}

// DefaultConditions is 37 °C, 1 µM primer, symmetry correction on,
// crowding off.
func DefaultConditions() Conditions {
	return Conditions{
		TemperatureK:            310.15,
		PrimerConcM:             1e-6,
		ApplySymmetryCorrection: true,
		MolecularCrowding:       false,
		MismatchPenaltyWeight:   1.0,
	}
}

// Calculator evaluates duplex thermodynamics against one database.
// The database is immutable and may be shared; SetConditions takes the
// write lock, so reconfiguring is safe only when no calculation using
// this instance is in flight on another goroutine.
type Calculator struct {
	db *Database

	mu   sync.RWMutex
	cond Conditions
}

// NewCalculator wraps an existing database with default conditions.
func NewCalculator(db *Database) *Calculator {
	return &Calculator{db: db, cond: DefaultConditions()}
}

// NewNNDB2024 builds a calculator on the modern parameter set.
func NewNNDB2024() *Calculator { return NewCalculator(NNDB2024()) }

// NewSantaLucia1998 builds a calculator on the legacy parameter set.
func NewSantaLucia1998() *Calculator { return NewCalculator(SantaLucia1998()) }

// Database exposes the underlying parameter set (read-only).
func (c *Calculator) Database() *Database { return c.db }

// Conditions returns a copy of the active calculation conditions.
func (c *Calculator) Conditions() Conditions {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cond
}

// SetConditions replaces the calculation conditions.
func (c *Calculator) SetConditions(cond Conditions) {
	c.mu.Lock()
	c.cond = cond
	c.mu.Unlock()
}

// unknownPolicy selects how the accumulator treats stacks absent from
// the database.
type unknownPolicy int

const (
	failOnUnknown unknownPolicy = iota
	zeroOnUnknown
)

// accumulate sums terminal initiation plus per-stack ΔH/ΔS over seq.
// seq must be uppercased by the caller and at least 2 bases long.
func (c *Calculator) accumulate(seq string, pol unknownPolicy) (dH, dS float64, err error) {
	if p, ok := c.db.Initiation(seq[0]); ok {
		dH += p.DH
		dS += p.DS
	}
	if p, ok := c.db.Initiation(seq[len(seq)-1]); ok {
		dH += p.DH
		dS += p.DS
	}
	for i := 0; i < len(seq)-1; i++ {
		dinuc := seq[i : i+2]
		p, ok := c.db.DinucleotideParams(dinuc)
		if !ok {
			if pol == failOnUnknown {
				return 0, 0, &UnknownDinucleotideError{Dinuc: dinuc}
			}
			continue
		}
		dH += p.DH
		dS += p.DS
	}
	return dH, dS, nil
}

// saltCorrectEntropy applies the monovalent-only correction used by the
// strict Tm path: ΔS' = ΔS + 0.368·n·ln[mono].
func saltCorrectEntropy(dS float64, n int, salt SaltConditions) float64 {
	mono := salt.Monovalent()
	if mono <= 0 {
		return dS
	}
	return dS + 0.368*float64(n)*math.Log(mono)
}

// advancedSaltCorrectEntropy adds Mg2+ and a mixed-salt interaction term
// on top of the monovalent correction.
func advancedSaltCorrectEntropy(dS float64, n int, salt SaltConditions) float64 {
	nf := float64(n)
	mono := salt.Monovalent()
	out := dS
	if mono > 0 {
		out += 0.368 * nf * math.Log(mono)
	}
	if salt.MgM > 0 {
		out += 0.175 * nf * math.Log(salt.MgM)
	}
	if mono > 0 && salt.MgM > 0 {
		out += 0.1 * nf * math.Log(mono*salt.MgM)
	}
	return out
}

// TmNearestNeighbor computes the two-state melting temperature (°C).
// Strict: unknown stacks and non-ACGT bases are errors.
func (c *Calculator) TmNearestNeighbor(seq string) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(seq))
	if len(s) < 2 {
		return 0, ErrSequenceTooShort
	}
	dH, dS, err := c.accumulate(s, failOnUnknown)
	if err != nil {
		return 0, err
	}
	dsNa := saltCorrectEntropy(dS, len(s), c.db.Salt)
	if dsNa == 0 {
		return 0, ErrZeroEntropy
	}
	tmK := (dH * 1000.0) / dsNa
	return tmK - kelvinOffset, nil
}

// DeltaG computes the total Gibbs free energy (kcal/mol) at tempK.
// Strict like TmNearestNeighbor.
func (c *Calculator) DeltaG(seq string, tempK float64) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(seq))
	if len(s) < 2 {
		return 0, ErrSequenceTooShort
	}
	dH, dS, err := c.accumulate(s, failOnUnknown)
	if err != nil {
		return 0, err
	}
	return Params{DH: dH, DS: dS}.DeltaG(tempK), nil
}

// TmLenient is the candidate-scan entry point: unknown stacks contribute
// zero, the concentration term enters the denominator, and the result is
// clamped to a biologically plausible range. Sequences shorter than two
// bases score 0.
func (c *Calculator) TmLenient(seq string) float64 {
	s := strings.ToUpper(strings.TrimSpace(seq))
	if len(s) < 2 {
		return 0
	}
	dH, dS, _ := c.accumulate(s, zeroOnUnknown)
	dsNa := saltCorrectEntropy(dS, len(s), c.db.Salt)

	cond := c.Conditions()
	ct := cond.PrimerConcM
	if ct <= 0 {
		ct = 1e-6
	}
	den := dsNa + Rcal*math.Log(ct/4.0)
	if math.Abs(den) < 1e-9 {
		return 0
	}
	tmC := (dH*1000.0)/den - kelvinOffset
	return math.Min(math.Max(tmC, 0.0), 120.0)
}

// Breakdown itemizes where the enthalpy (and entropy, for corrections)
// of a comprehensive calculation came from.
type Breakdown struct {
	NearestNeighbor   float64
	TerminalEffects   float64
	MismatchPenalty   float64
	LoopStructures    float64
	SaltCorrection    float64
	MolecularCrowding float64
}

// ComprehensiveResult is the full report for one sequence.
type ComprehensiveResult struct {
	DH                   float64 // kcal/mol
	DS                   float64 // cal/(K·mol), after corrections
	DG                   float64 // kcal/mol at Conditions.TemperatureK
	TmC                  float64 // °C
	FormationProbability float64 // [0,1]
	CorrectionsApplied   []string
	Breakdown            Breakdown
}

// Correction tags reported in ComprehensiveResult.CorrectionsApplied.
const (
	CorrectionTerminal     = "terminal_correction"
	CorrectionSymmetry     = "symmetry_correction"
	CorrectionAdvancedSalt = "advanced_salt_correction"
	CorrectionCrowding     = "molecular_crowding"
)

// Comprehensive computes ΔH/ΔS/ΔG/Tm plus optional corrections:
// palindrome symmetry penalty, Na+/Mg2+ salt correction, and molecular
// crowding (enhances ΔH, attenuates ΔS).
func (c *Calculator) Comprehensive(seq string) (ComprehensiveResult, error) {
	var out ComprehensiveResult

	s := strings.ToUpper(strings.TrimSpace(seq))
	if len(s) < 2 {
		return out, ErrSequenceTooShort
	}
	cond := c.Conditions()

	var dH, dS float64
	for i := 0; i < len(s)-1; i++ {
		dinuc := s[i : i+2]
		p, ok := c.db.DinucleotideParams(dinuc)
		if !ok {
			return out, &UnknownDinucleotideError{Dinuc: dinuc}
		}
		dH += p.DH
		dS += p.DS
		out.Breakdown.NearestNeighbor += p.DH
	}
	for _, b := range []byte{s[0], s[len(s)-1]} {
		if p, ok := c.db.Initiation(b); ok {
			dH += p.DH
			dS += p.DS
			out.Breakdown.TerminalEffects += p.DH
		}
	}
	out.CorrectionsApplied = append(out.CorrectionsApplied, CorrectionTerminal)

	if cond.ApplySymmetryCorrection && isPalindrome(s) {
		dS -= 1.4
		out.CorrectionsApplied = append(out.CorrectionsApplied, CorrectionSymmetry)
	}

	corrected := advancedSaltCorrectEntropy(dS, len(s), c.db.Salt)
	out.Breakdown.SaltCorrection = corrected - dS
	dS = corrected
	out.CorrectionsApplied = append(out.CorrectionsApplied, CorrectionAdvancedSalt)

	if cond.MolecularCrowding {
		const (
			crowdingFactorH = 1.05 // enthalpy enhancement
			crowdingFactorS = 0.98 // entropy attenuation
		)
		out.Breakdown.MolecularCrowding = dH * (crowdingFactorH - 1.0)
		dH *= crowdingFactorH
		dS *= crowdingFactorS
		out.CorrectionsApplied = append(out.CorrectionsApplied, CorrectionCrowding)
	}

	out.DH = dH
	out.DS = dS
	out.DG = Params{DH: dH, DS: dS}.DeltaG(cond.TemperatureK)
	out.TmC = meltingTemperature(dH, dS, cond.PrimerConcM)
	out.FormationProbability = formationProbability(out.DG, cond.TemperatureK)
	return out, nil
}

// meltingTemperature converts totals to °C including the concentration
// term: Tm = ΔH·1000 / (ΔS + R·ln(C/4)) − 273.15.
func meltingTemperature(dH, dS, primerConcM float64) float64 {
	if dS == 0 {
		return 0
	}
	concTerm := Rcal * math.Log(primerConcM/4.0)
	return (dH*1000.0)/(dS+concTerm) - kelvinOffset
}

// formationProbability is the Boltzmann-style logistic transform of ΔG.
func formationProbability(dG, tempK float64) float64 {
	rt := (Rcal / 1000.0) * tempK // kcal/mol
	e := math.Exp(-dG / rt)
	return e / (1.0 + e)
}

// isPalindrome reports whether s equals its own reverse complement.
// Non-ACGT bases never match a complement, so they fail closed.
func isPalindrome(s string) bool {
	n := len(s)
	for i := 0; i <= n/2; i++ {
		c, ok := compBase(s[n-1-i])
		if !ok || s[i] != c {
			return false
		}
	}
	return true
}
