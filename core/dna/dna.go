// core/dna/dna.go
package dna

import (
	"fmt"
	"strings"
	"unicode"
)

// Allowed IUPAC DNA codes and their base sets.
var iupac = map[rune]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'R': "AG",
	'Y': "CT",
	'S': "CG",
	'W': "AT",
	'K': "GT",
	'M': "AC",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
	'N': "ACGT",
}

// Complement map for IUPAC codes.
var complement = map[rune]rune{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'D': 'H',
	'H': 'D', 'V': 'B', 'N': 'N',
}

// Normalize removes spaces/quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns a normalized sequence or an error if any char is non-IUPAC.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return s, fmt.Errorf("empty sequence")
	}
	for i, r := range s {
		if _, ok := iupac[r]; !ok {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T R Y S W K M B D H V N", r, i+1)
		}
	}
	return s, nil
}

// Comp complements a single IUPAC code; unknown codes pass through.
func Comp(r rune) rune {
	if c, ok := complement[r]; ok {
		return c
	}
	return r
}

// RevComp returns the reverse-complement of an IUPAC sequence.
func RevComp(seq string) string {
	r := []rune(Normalize(seq))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = Comp(r[j]), Comp(r[i])
	}
	if len(r)%2 == 1 {
		m := len(r) / 2
		r[m] = Comp(r[m])
	}
	return string(r)
}

// GCContent returns the G+C fraction of seq as a percentage (0..100).
// S counts as G/C; other ambiguity codes do not. Empty input is 0.
func GCContent(seq string) float64 {
	s := Normalize(seq)
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for _, r := range s {
		if r == 'G' || r == 'C' || r == 'S' {
			gc++
		}
	}
	return float64(gc) / float64(len(s)) * 100.0
}

// IsPalindrome reports whether seq equals its own reverse complement.
// Only unambiguous ACGT sequences qualify; odd lengths never can.
func IsPalindrome(seq string) bool {
	s := Normalize(seq)
	n := len(s)
	if n == 0 || n%2 == 1 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("ACGT", r) {
			return false
		}
	}
	for i := 0; i < n/2; i++ {
		if rune(s[i]) != Comp(rune(s[n-1-i])) {
			return false
		}
	}
	return true
}

// Matches reports whether primer base p can bind genome base g (IUPAC-aware).
func Matches(p, g rune) bool {
	P, G := unicode.ToUpper(p), unicode.ToUpper(g)
	setP, okP := iupac[P]
	setG, okG := iupac[G]
	if !okP || !okG {
		return false
	}
	for _, a := range setP {
		if strings.ContainsRune(setG, a) {
			return true
		}
	}
	return false
}
