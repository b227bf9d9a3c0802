// core/design/candidates.go
package design

import (
	"fmt"
	"sort"
	"strings"

	"primedesign-core/dna"
)

// generateCandidates scans a window around one boundary of the target
// region and returns scored primers, best first, capped at candidateCap.
func (s *Service) generateCandidates(sequence string, start, end int, p Params, dir Direction) []Primer {
	var out []Primer

	anchor := start
	if dir == Reverse {
		anchor = end
	}

	for length := p.LengthMin; length <= p.LengthMax; length++ {
		lo := anchor - searchWindow
		if lo < 0 {
			lo = 0
		}
		hi := anchor + searchWindow
		if max := len(sequence) - length; hi > max {
			hi = max
		}

		for pos := lo; pos <= hi; pos++ {
			site := sequence[pos : pos+length]
			primerSeq := site
			if dir == Reverse {
				primerSeq = dna.RevComp(site)
			}

			tm := s.calc.TmLenient(primerSeq)
			gc := dna.GCContent(primerSeq)
			if tm < p.TmMin || tm > p.TmMax || gc < p.GCMin || gc > p.GCMax {
				continue
			}

			selfDimer := s.calc.SelfDimer(primerSeq).MaxScore
			hairpin := s.calc.Hairpin(primerSeq).MinScore

			var warnings []string
			threePrime := threePrimeStability(primerSeq, &warnings)

			pr := Primer{
				Sequence:            primerSeq,
				Position:            pos,
				Length:              length,
				Tm:                  tm,
				GCContent:           gc,
				SelfDimerScore:      selfDimer,
				HairpinScore:        hairpin,
				ThreePrimeStability: threePrime,
				Direction:           dir,
			}
			pr.QualityScore = qualityScore(&pr, &warnings)
			pr.QualityWarnings = warnings
			out = append(out, pr)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].QualityScore != out[j].QualityScore {
			return out[i].QualityScore > out[j].QualityScore
		}
		di := abs(out[i].Tm - p.TmOptimal)
		dj := abs(out[j].Tm - p.TmOptimal)
		return di < dj
	})
	if len(out) > candidateCap {
		out = out[:candidateCap]
	}
	return out
}

// qualityScore starts at 100 and deducts for departures from the
// recommended ranges, then adds a 3' stability bonus. Result clamped
// to [0, 110].
func qualityScore(pr *Primer, warnings *[]string) float64 {
	score := 100.0

	switch {
	case pr.Tm < 55.0:
		score -= 15.0
		*warnings = append(*warnings, fmt.Sprintf("Low Tm: %.1f°C (recommended: 55-65°C)", pr.Tm))
	case pr.Tm > 65.0:
		score -= 10.0
		*warnings = append(*warnings, fmt.Sprintf("High Tm: %.1f°C (recommended: 55-65°C)", pr.Tm))
	}

	switch {
	case pr.GCContent < 40.0:
		score -= 10.0
		*warnings = append(*warnings, fmt.Sprintf("Low GC content: %.1f%% (recommended: 40-60%%)", pr.GCContent))
	case pr.GCContent > 60.0:
		score -= 8.0
		*warnings = append(*warnings, fmt.Sprintf("High GC content: %.1f%% (recommended: 40-60%%)", pr.GCContent))
	}

	switch {
	case pr.Length < 18:
		score -= 12.0
		*warnings = append(*warnings, fmt.Sprintf("Short primer: %d bp (recommended: 18-25 bp)", pr.Length))
	case pr.Length > 25:
		score -= 8.0
		*warnings = append(*warnings, fmt.Sprintf("Long primer: %d bp (recommended: 18-25 bp)", pr.Length))
	}

	score -= repeatPenalty(pr.Sequence, warnings) * 20.0
	score += threePrimeStability(pr.Sequence, nil) * 2.0

	switch {
	case pr.SelfDimerScore < -8.0:
		score -= 15.0
		*warnings = append(*warnings, fmt.Sprintf("Strong self-dimer potential: %.1f kcal/mol", pr.SelfDimerScore))
	case pr.SelfDimerScore < -5.0:
		score -= 8.0
		*warnings = append(*warnings, fmt.Sprintf("Moderate self-dimer potential: %.1f kcal/mol", pr.SelfDimerScore))
	}

	switch {
	case pr.HairpinScore < -5.0:
		score -= 10.0
		*warnings = append(*warnings, fmt.Sprintf("Strong hairpin potential: %.1f kcal/mol", pr.HairpinScore))
	case pr.HairpinScore < -3.0:
		score -= 5.0
		*warnings = append(*warnings, fmt.Sprintf("Moderate hairpin potential: %.1f kcal/mol", pr.HairpinScore))
	}

	if score < 0 {
		return 0
	}
	if score > 110 {
		return 110
	}
	return score
}

// repeatPenalty flags homopolymer runs and dinucleotide repeats. Each
// class counts at most once.
func repeatPenalty(sequence string, warnings *[]string) float64 {
	var penalty float64
	s := strings.ToUpper(sequence)

	for _, repeat := range []string{"AAAA", "TTTT", "GGGG", "CCCC"} {
		if strings.Contains(s, repeat) {
			penalty += 0.3
			*warnings = append(*warnings, fmt.Sprintf("Long single nucleotide repeat %s detected in primer", repeat))
			break
		}
	}
	for _, repeat := range []string{"ATATATAT", "TATATATA", "GCGCGCGC", "CGCGCGCG"} {
		if strings.Contains(s, repeat) {
			penalty += 0.25
			*warnings = append(*warnings, "Dinucleotide repeat pattern detected in primer")
			break
		}
	}
	for _, repeat := range []string{"AAAAAA", "TTTTTT", "GGGGGG", "CCCCCC"} {
		if strings.Contains(s, repeat) {
			penalty += 0.4
			*warnings = append(*warnings, fmt.Sprintf("Very long single nucleotide repeat %s detected", repeat))
			break
		}
	}
	return penalty
}

// threePrimeStability grades the last three bases: GC-rich ends anchor
// extension, AT-rich ends do not. warnings may be nil.
func threePrimeStability(sequence string, warnings *[]string) float64 {
	s := strings.ToUpper(sequence)
	if len(s) < 3 {
		return 0
	}

	lastThree := s[len(s)-3:]
	gcEnd := 0
	for i := 0; i < 3; i++ {
		if lastThree[i] == 'G' || lastThree[i] == 'C' {
			gcEnd++
		}
	}

	var score float64
	switch gcEnd {
	case 3:
		score = 5.0
	case 2:
		score = 3.5
	case 1:
		score = 2.0
	default:
		score = 0.5
		if warnings != nil {
			*warnings = append(*warnings, "3' end is AT-rich and may have weak binding")
		}
	}

	if strings.HasSuffix(lastThree, "AA") || strings.HasSuffix(lastThree, "TT") {
		score *= 0.8
		if warnings != nil {
			*warnings = append(*warnings, "3' end has weak AA/TT terminus")
		}
	}
	if strings.HasSuffix(s, "GC") || strings.HasSuffix(s, "CG") {
		score *= 1.2
	}
	return score
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
