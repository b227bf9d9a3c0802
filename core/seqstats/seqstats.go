// core/seqstats/seqstats.go
// Composition statistics over DNA sequences. Pure functions; callers
// normalize or not as they see fit, every counter matches bases
// case-insensitively.

package seqstats

import (
	"math"
	"strings"
)

// BaseCount tallies bases by class. U counts as T.
type BaseCount struct {
	A     int `json:"a"`
	T     int `json:"t"`
	G     int `json:"g"`
	C     int `json:"c"`
	N     int `json:"n"`
	Other int `json:"other"`
}

func (b BaseCount) Total() int { return b.A + b.T + b.G + b.C + b.N + b.Other }

// Stats is the full composition report for one sequence.
type Stats struct {
	Length            int            `json:"length"`
	GCPercent         float64        `json:"gc_percent"`
	ATPercent         float64        `json:"at_percent"`
	NPercent          float64        `json:"n_percent"`
	BaseCounts        BaseCount      `json:"base_counts"`
	DinucleotideCount map[string]int `json:"dinucleotide_counts"`
	GCSkew            float64        `json:"gc_skew"`
	ATSkew            float64        `json:"at_skew"`
	Entropy           float64        `json:"entropy"`
	Complexity        float64        `json:"complexity"`
	CodonUsage        *CodonUsage    `json:"codon_usage,omitempty"`
}

// WindowStats is one sliding-window sample.
type WindowStats struct {
	Position   int     `json:"position"`
	WindowSize int     `json:"window_size"`
	GCPercent  float64 `json:"gc_percent"`
	Entropy    float64 `json:"entropy"`
}

// CodonUsage summarizes frame-0 codon composition of a coding sequence.
type CodonUsage struct {
	CodonCounts      map[string]int     `json:"codon_counts"`
	CodonFrequencies map[string]float64 `json:"codon_frequencies"`
	AminoAcidCounts  map[string]int     `json:"amino_acid_counts"`
	StartCodons      int                `json:"start_codons"`
	StopCodons       int                `json:"stop_codons"`
	RareCodons       []string           `json:"rare_codons"`
}

// Compute builds the full report. Codon usage is attached only when the
// length is a positive multiple of 3.
func Compute(sequence string) Stats {
	s := strings.ToUpper(sequence)
	n := len(s)

	var bc BaseCount
	for i := 0; i < n; i++ {
		switch s[i] {
		case 'A':
			bc.A++
		case 'T', 'U':
			bc.T++
		case 'G':
			bc.G++
		case 'C':
			bc.C++
		case 'N':
			bc.N++
		default:
			bc.Other++
		}
	}

	dinucs := make(map[string]int)
	for i := 0; i+1 < n; i++ {
		dinucs[s[i:i+2]]++
	}

	st := Stats{
		Length:            n,
		BaseCounts:        bc,
		DinucleotideCount: dinucs,
		Entropy:           Entropy(s),
		Complexity:        Complexity(s),
	}
	if n > 0 {
		st.GCPercent = float64(bc.G+bc.C) / float64(n) * 100.0
		st.ATPercent = float64(bc.A+bc.T) / float64(n) * 100.0
		st.NPercent = float64(bc.N) / float64(n) * 100.0
	}
	if bc.G+bc.C > 0 {
		st.GCSkew = float64(bc.G-bc.C) / float64(bc.G+bc.C)
	}
	if bc.A+bc.T > 0 {
		st.ATSkew = float64(bc.A-bc.T) / float64(bc.A+bc.T)
	}
	if n > 0 && n%3 == 0 {
		st.CodonUsage = ComputeCodonUsage(s)
	}
	return st
}

// Entropy is the Shannon entropy of the base distribution in bits/base.
func Entropy(sequence string) float64 {
	n := len(sequence)
	if n == 0 {
		return 0
	}
	freq := make(map[byte]int)
	for i := 0; i < n; i++ {
		b := sequence[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		freq[b]++
	}
	var h float64
	for _, count := range freq {
		p := float64(count) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

// Complexity is the linguistic complexity: unique 3-mers over the
// maximum possible for the length (capped at 64). 0 below 3 bases.
func Complexity(sequence string) float64 {
	n := len(sequence)
	if n < 3 {
		return 0
	}
	s := strings.ToUpper(sequence)
	unique := make(map[string]struct{})
	for i := 0; i+3 <= n; i++ {
		unique[s[i:i+3]] = struct{}{}
	}
	maxPossible := n - 2
	if maxPossible > 64 {
		maxPossible = 64
	}
	return float64(len(unique)) / float64(maxPossible)
}

// Windows samples GC% and entropy over sliding windows. Windows that
// would run past the end are dropped, not truncated.
func Windows(sequence string, windowSize, step int) []WindowStats {
	if windowSize <= 0 || step <= 0 {
		return nil
	}
	s := strings.ToUpper(sequence)
	var out []WindowStats
	for pos := 0; pos+windowSize <= len(s); pos += step {
		w := s[pos : pos+windowSize]
		gc := 0
		for i := 0; i < len(w); i++ {
			if w[i] == 'G' || w[i] == 'C' {
				gc++
			}
		}
		out = append(out, WindowStats{
			Position:   pos,
			WindowSize: windowSize,
			GCPercent:  float64(gc) / float64(windowSize) * 100.0,
			Entropy:    Entropy(w),
		})
	}
	return out
}

// ComputeCodonUsage reads frame 0 in triplets. Codons containing N are
// skipped. Returns nil unless the length is a positive multiple of 3.
func ComputeCodonUsage(sequence string) *CodonUsage {
	s := strings.ToUpper(sequence)
	if len(s) == 0 || len(s)%3 != 0 {
		return nil
	}

	u := &CodonUsage{
		CodonCounts:      make(map[string]int),
		CodonFrequencies: make(map[string]float64),
		AminoAcidCounts:  make(map[string]int),
	}
	for i := 0; i+3 <= len(s); i += 3 {
		codon := s[i : i+3]
		if strings.ContainsRune(codon, 'N') {
			continue
		}
		u.CodonCounts[codon]++
		if aa, ok := standardCode[codon]; ok {
			u.AminoAcidCounts[aa]++
			if codon == "ATG" {
				u.StartCodons++
			}
			if codon == "TAA" || codon == "TAG" || codon == "TGA" {
				u.StopCodons++
			}
		}
	}

	total := 0
	for _, c := range u.CodonCounts {
		total += c
	}
	for codon, c := range u.CodonCounts {
		f := float64(c) / float64(total)
		u.CodonFrequencies[codon] = f
		if f < 0.01 {
			u.RareCodons = append(u.RareCodons, codon)
		}
	}
	return u
}

// standardCode is the NCBI standard genetic code (translation table 1).
var standardCode = map[string]string{
	"TTT": "F", "TTC": "F",
	"TTA": "L", "TTG": "L", "CTT": "L", "CTC": "L", "CTA": "L", "CTG": "L",
	"ATT": "I", "ATC": "I", "ATA": "I",
	"ATG": "M",
	"GTT": "V", "GTC": "V", "GTA": "V", "GTG": "V",
	"TCT": "S", "TCC": "S", "TCA": "S", "TCG": "S", "AGT": "S", "AGC": "S",
	"CCT": "P", "CCC": "P", "CCA": "P", "CCG": "P",
	"ACT": "T", "ACC": "T", "ACA": "T", "ACG": "T",
	"GCT": "A", "GCC": "A", "GCA": "A", "GCG": "A",
	"TAT": "Y", "TAC": "Y",
	"TAA": "*", "TAG": "*", "TGA": "*",
	"CAT": "H", "CAC": "H",
	"CAA": "Q", "CAG": "Q",
	"AAT": "N", "AAC": "N",
	"AAA": "K", "AAG": "K",
	"GAT": "D", "GAC": "D",
	"GAA": "E", "GAG": "E",
	"TGT": "C", "TGC": "C",
	"TGG": "W",
	"CGT": "R", "CGC": "R", "CGA": "R", "CGG": "R", "AGA": "R", "AGG": "R",
	"GGT": "G", "GGC": "G", "GGA": "G", "GGG": "G",
}
