// core/thermo/structure.go
// Secondary-structure screens: self-dimer, hairpin, hetero-dimer.
//
// All three are deliberate brute force over every register offset (and
// every stem/loop split for hairpins). Inputs are primer-length
// sequences (≤ ~25 nt), so determinism and auditability win over
// asymptotics: each score feeds a discrete pass/fail decision and must
// be reproducible.
//
// Scores are ΔG-like values in kcal/mol: more negative = more stable =
// more problematic.

package thermo

import "math"

// Problematic-structure thresholds (kcal/mol).
const (
	SelfDimerThreshold   = -8.0
	HairpinThreshold     = -5.0
	HeteroDimerThreshold = -8.0
)

// Alignment is one register offset of a dimer scan.
type Alignment struct {
	Offset     int
	Score      float64
	Mismatches int
	Length     int
}

// DimerAnalysis is the result of a self- or hetero-dimer scan.
type DimerAnalysis struct {
	MaxScore      float64 // most negative alignment score found
	BestOffset    int     // offset of MaxScore; -1 if no alignment beat 0
	Alignments    []Alignment
	IsProblematic bool
}

// HairpinStructure describes one stem-loop candidate.
type HairpinStructure struct {
	StartPos   int
	StemLength int
	LoopStart  int
	LoopSize   int
	Stem5      string
	Loop       string
	Stem3      string
	Score      float64
}

// HairpinAnalysis is the result of an exhaustive stem-loop search.
type HairpinAnalysis struct {
	MinScore      float64 // most negative hairpin score; 0 when none found
	Best          *HairpinStructure
	All           []HairpinStructure
	IsProblematic bool
}

// alignScore slides seq2 under seq1 at the given offset and scores each
// overlapping position: complementary pair −2.0, anything else +1.0
// scaled by the mismatch penalty weight.
func alignScore(seq1, seq2 string, offset int, mismatchWeight float64) (score float64, mismatches int) {
	for i := offset; i < len(seq1); i++ {
		j := i - offset
		if j >= len(seq2) {
			break
		}
		if isComplementary(seq1[i], seq2[j]) {
			score -= 2.0
		} else {
			score += 1.0 * mismatchWeight
			mismatches++
		}
	}
	return score, mismatches
}

func isComplementary(a, b byte) bool {
	switch a {
	case 'A':
		return b == 'T'
	case 'T':
		return b == 'A'
	case 'G':
		return b == 'C'
	case 'C':
		return b == 'G'
	default:
		// Ambiguity codes never bind.
		return false
	}
}

// revComp reverse-complements s; non-ACGT bases map to 'N' so they can
// never score as bound.
func revComp(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c, ok := compBase(s[len(s)-1-i])
		if !ok {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}

// SelfDimer scans every register of seq against itself and against its
// reverse complement, keeping the most stable (most negative) score.
func (c *Calculator) SelfDimer(seq string) DimerAnalysis {
	s := upperTrim(seq)
	w := c.Conditions().MismatchPenaltyWeight
	out := DimerAnalysis{BestOffset: -1}

	scan := func(other string) {
		for offset := 1; offset < len(s); offset++ {
			score, mm := alignScore(s, other, offset, w)
			out.Alignments = append(out.Alignments, Alignment{
				Offset:     offset,
				Score:      score,
				Mismatches: mm,
				Length:     len(s) - offset,
			})
			if score < out.MaxScore {
				out.MaxScore = score
				out.BestOffset = offset
			}
		}
	}
	scan(s)
	scan(revComp(s))

	out.IsProblematic = out.MaxScore < SelfDimerThreshold
	return out
}

// HeteroDimer scans every register of a against b and against the
// reverse complement of b.
func (c *Calculator) HeteroDimer(a, b string) DimerAnalysis {
	s1 := upperTrim(a)
	s2 := upperTrim(b)
	w := c.Conditions().MismatchPenaltyWeight
	out := DimerAnalysis{BestOffset: -1}

	scan := func(other string) {
		for offset := 0; offset < len(s1); offset++ {
			score, mm := alignScore(s1, other, offset, w)
			out.Alignments = append(out.Alignments, Alignment{
				Offset:     offset,
				Score:      score,
				Mismatches: mm,
				Length:     minInt(len(s1)-offset, len(other)),
			})
			if score < out.MaxScore {
				out.MaxScore = score
				out.BestOffset = offset
			}
		}
	}
	scan(s2)
	scan(revComp(s2))

	out.IsProblematic = out.MaxScore < HeteroDimerThreshold
	return out
}

// Hairpin exhaustively searches stems of length ≥3 with loops of 3–10 nt
// where the 5' stem equals the reverse complement of the 3' stem.
func (c *Calculator) Hairpin(seq string) HairpinAnalysis {
	s := upperTrim(seq)
	var out HairpinAnalysis

	const (
		minStem = 3
		minLoop = 3
		maxLoop = 10
	)
	n := len(s)
	for stem := minStem; stem <= n/2; stem++ {
		minRequired := 2*stem + minLoop
		if n < minRequired {
			break
		}
		for start := 0; start+minRequired <= n; start++ {
			stem5 := s[start : start+stem]
			loopStart := start + stem
			maxFit := n - start - 2*stem
			for loop := minLoop; loop <= maxLoop && loop <= maxFit; loop++ {
				stem3Start := loopStart + loop
				stem3 := s[stem3Start : stem3Start+stem]
				if stem5 != revComp(stem3) {
					continue
				}
				h := HairpinStructure{
					StartPos:   start,
					StemLength: stem,
					LoopStart:  loopStart,
					LoopSize:   loop,
					Stem5:      stem5,
					Loop:       s[loopStart : loopStart+loop],
					Stem3:      stem3,
					Score:      c.hairpinScore(stem, loop),
				}
				out.All = append(out.All, h)
			}
		}
	}

	for i := range out.All {
		if out.Best == nil || out.All[i].Score < out.Best.Score {
			out.Best = &out.All[i]
		}
	}
	if out.Best != nil {
		out.MinScore = out.Best.Score
	}
	out.IsProblematic = out.MinScore < HairpinThreshold
	return out
}

// hairpinScore is stem stabilization plus a loop penalty. Tabulated loop
// sizes come from the database; larger loops fall back to the empirical
// 6.0 + 1.75·ln(size) fit (a tunable approximation, not a physical law).
func (c *Calculator) hairpinScore(stemLen, loopSize int) float64 {
	stemStabilization := -2.0 * float64(stemLen)

	var loopPenalty float64
	if p, ok := c.db.HairpinLoop(loopSize); ok {
		loopPenalty = p.DeltaG(310.15)
	} else {
		switch loopSize {
		case 3:
			loopPenalty = 5.7
		case 4:
			loopPenalty = 5.6
		case 5:
			loopPenalty = 5.8
		case 6:
			loopPenalty = 6.0
		default:
			loopPenalty = 6.0 + 1.75*math.Log(float64(loopSize))
		}
	}
	return stemStabilization + loopPenalty
}

func upperTrim(s string) string {
	// Cheap path: most callers pass clean uppercase already.
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'a' && b <= 'z' || b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			return upperTrimSlow(s)
		}
	}
	return s
}

func upperTrimSlow(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z':
			out = append(out, b-('a'-'A'))
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			// drop
		default:
			out = append(out, b)
		}
	}
	return string(out)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
