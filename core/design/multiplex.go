// core/design/multiplex.go
package design

import (
	"fmt"
	"math"
)

// Multiplex penalty weights. Each pairwise score is 1 minus the sum of
// the triggered penalties, floored at 0.
const (
	penaltyTmSpread      = 0.2 // mate Tm spread over 5 °C between pairs
	penaltyStrongCross   = 0.4 // cross hetero-dimer below −8 kcal/mol
	penaltyModerateCross = 0.2 // cross hetero-dimer below −5 kcal/mol
	penaltyAmpliconRatio = 0.2 // amplicon length ratio over 5×
	penaltyGCSpread      = 0.1 // mean pair GC differing by over 20 points
)

// EvaluateMultiplex scores every ordered pair of pairs for coexistence
// in one reaction. A single pair (or none) scores 1.0 with no warnings.
func (s *Service) EvaluateMultiplex(pairs []Pair) MultiplexCompatibility {
	out := MultiplexCompatibility{
		Matrix:       make(map[string]map[string]float64, len(pairs)),
		OverallScore: 1.0,
	}

	var scores []float64
	for i := range pairs {
		row := make(map[string]float64, len(pairs)-1)
		for j := range pairs {
			if i == j {
				continue
			}
			score := s.pairCompatibility(&pairs[i], &pairs[j], &out.Warnings)
			row[pairs[j].ID] = score
			scores = append(scores, score)
		}
		out.Matrix[pairs[i].ID] = row
	}

	if len(scores) > 0 {
		sum := 0.0
		for _, sc := range scores {
			sum += sc
		}
		out.OverallScore = sum / float64(len(scores))
	}
	return out
}

func (s *Service) pairCompatibility(a, b *Pair, warnings *[]string) float64 {
	var penalty float64

	tmSpread := math.Max(abs(a.Forward.Tm-b.Forward.Tm), abs(a.Reverse.Tm-b.Reverse.Tm))
	if tmSpread > 5.0 {
		penalty += penaltyTmSpread
		*warnings = append(*warnings,
			fmt.Sprintf("Large Tm difference between %s and %s (%.1f°C)", a.ID, b.ID, tmSpread))
	}

	cross := s.crossReactivity(a, b)
	switch {
	case cross < -8.0:
		penalty += penaltyStrongCross
		*warnings = append(*warnings,
			fmt.Sprintf("Strong cross-reactivity detected between %s and %s (ΔG: %.1f kcal/mol)", a.ID, b.ID, cross))
	case cross < -5.0:
		penalty += penaltyModerateCross
		*warnings = append(*warnings,
			fmt.Sprintf("Moderate cross-reactivity detected between %s and %s (ΔG: %.1f kcal/mol)", a.ID, b.ID, cross))
	}

	if a.AmpliconLength > 0 && b.AmpliconLength > 0 {
		ratio := float64(a.AmpliconLength) / float64(b.AmpliconLength)
		if ratio < 1 {
			ratio = 1 / ratio
		}
		if ratio > 5.0 {
			penalty += penaltyAmpliconRatio
			*warnings = append(*warnings,
				fmt.Sprintf("Amplicon sizes of %s and %s differ by %.1fx", a.ID, b.ID, ratio))
		}
	}

	gcA := (a.Forward.GCContent + a.Reverse.GCContent) / 2.0
	gcB := (b.Forward.GCContent + b.Reverse.GCContent) / 2.0
	if abs(gcA-gcB) > 20.0 {
		penalty += penaltyGCSpread
		*warnings = append(*warnings,
			fmt.Sprintf("GC content of %s and %s differs by %.1f points", a.ID, b.ID, abs(gcA-gcB)))
	}

	if penalty >= 1.0 {
		return 0
	}
	return 1.0 - penalty
}

// crossReactivity is the worst hetero-dimer score over the four primer
// combinations of two pairs.
func (s *Service) crossReactivity(a, b *Pair) float64 {
	worst := math.Inf(1)
	for _, x := range []string{a.Forward.Sequence, a.Reverse.Sequence} {
		for _, y := range []string{b.Forward.Sequence, b.Reverse.Sequence} {
			if sc := s.calc.HeteroDimer(x, y).MaxScore; sc < worst {
				worst = sc
			}
		}
	}
	return worst
}
