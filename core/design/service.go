// core/design/service.go
// Primer pair design: candidate generation around the target region,
// compatibility pairing, ranking, and optional multiplex evaluation.

package design

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"primedesign-core/dna"
	"primedesign-core/thermo"
)

var ErrInvalidRegion = errors.New("design: invalid target region")

// Service designs primer pairs against one thermodynamic calculator.
// ID and clock sources are injectable so callers can make results
// deterministic.
type Service struct {
	calc  *thermo.Calculator
	newID func() string
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithCalculator substitutes the thermodynamic calculator.
func WithCalculator(c *thermo.Calculator) Option {
	return func(s *Service) { s.calc = c }
}

// WithIDFunc substitutes the pair ID generator.
func WithIDFunc(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// WithClock substitutes the pair timestamp source.
func WithClock(f func() time.Time) Option {
	return func(s *Service) { s.now = f }
}

// NewService builds a Service with the modern parameter set, uuid IDs,
// and the wall clock.
func NewService(opts ...Option) *Service {
	s := &Service{
		calc:  thermo.NewNNDB2024(),
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculator exposes the underlying thermodynamic calculator.
func (s *Service) Calculator() *thermo.Calculator { return s.calc }

// Tm is the lenient melting temperature used during candidate scans.
func (s *Service) Tm(sequence string) float64 { return s.calc.TmLenient(sequence) }

// GCContent is the G+C percentage of sequence.
func (s *Service) GCContent(sequence string) float64 { return dna.GCContent(sequence) }

// DesignPrimers designs ranked primer pairs for the target region
// [start, end) of sequence. Fails fast with ErrInvalidRegion when the
// region is empty, reversed, or out of bounds.
func (s *Service) DesignPrimers(sequence string, start, end int, p Params) (*Result, error) {
	seq := dna.Normalize(sequence)
	if start < 0 || start >= end || end > len(seq) {
		return nil, ErrInvalidRegion
	}

	forward := s.generateCandidates(seq, start, end, p, Forward)
	reverse := s.generateCandidates(seq, start, end, p, Reverse)

	var pairs []Pair
	for fi := range forward {
		for ri := range reverse {
			f := &forward[fi]
			r := &reverse[ri]
			if abs(f.Tm-r.Tm) > maxTmDiff {
				continue
			}
			hd := s.calc.HeteroDimer(f.Sequence, r.Sequence).MaxScore
			if hd < p.MaxHeteroDimer {
				continue
			}

			ampStart := minI(f.Position, r.Position)
			ampEnd := maxI(f.Position, r.Position) + maxI(f.Length, r.Length)
			ampLen := ampEnd - ampStart
			if ampLen < ampliconMin || ampLen > ampliconMax || ampEnd > len(seq) {
				continue
			}

			hdOK := true
			validation := ValidationResults{
				SelfDimerCheck: f.SelfDimerScore >= p.MaxSelfDimer &&
					r.SelfDimerScore >= p.MaxSelfDimer,
				HairpinCheck: f.HairpinScore >= p.MaxHairpin &&
					r.HairpinScore >= p.MaxHairpin,
				HeteroDimerCheck: &hdOK,
			}

			pairs = append(pairs, Pair{
				ID:               s.newID(),
				Forward:          *f,
				Reverse:          *r,
				AmpliconLength:   ampLen,
				AmpliconSequence: seq[ampStart:ampEnd],
				CreatedBy:        "system",
				CreatedAt:        s.now(),
				Validation:       validation,
			})
		}
	}

	for i := range pairs {
		pairs[i].CompatibilityScore = pairScore(&pairs[i], p)
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].CompatibilityScore > pairs[j].CompatibilityScore
	})
	if len(pairs) > pairCap {
		pairs = pairs[:pairCap]
	}

	res := &Result{
		Pairs:          pairs,
		Params:         p,
		TargetSequence: seq[start:end],
		TargetStart:    start,
		TargetEnd:      end,
	}
	if len(pairs) > 1 {
		mc := s.EvaluateMultiplex(pairs)
		res.Multiplex = &mc
	}
	return res, nil
}

// pairScore ranks a pair: closeness of both Tm values to the optimum,
// combined GC content, minus the averaged secondary-structure burden.
func pairScore(pair *Pair, p Params) float64 {
	tmScore := 1.0 - (abs(pair.Forward.Tm-p.TmOptimal)+abs(pair.Reverse.Tm-p.TmOptimal))/10.0
	gcScore := (pair.Forward.GCContent + pair.Reverse.GCContent) / 200.0
	secondary := (pair.Forward.SelfDimerScore + pair.Forward.HairpinScore +
		pair.Reverse.SelfDimerScore + pair.Reverse.HairpinScore) / 4.0
	return tmScore + gcScore - abs(secondary)/10.0
}

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}
