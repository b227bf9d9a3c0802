// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"primedesign-core/design"
)

// WriteText prints a human-readable report: one block per pair, then a
// multiplex summary when present.
func WriteText(w io.Writer, res *design.Result, header bool) error {
	if len(res.Pairs) == 0 {
		_, err := fmt.Fprintln(w, "no primer pairs found")
		return err
	}
	if header {
		if _, err := fmt.Fprintf(w, "target region %d..%d, %d pair(s)\n\n",
			res.TargetStart, res.TargetEnd, len(res.Pairs)); err != nil {
			return err
		}
	}
	for i := range res.Pairs {
		if err := writePairText(w, i+1, &res.Pairs[i]); err != nil {
			return err
		}
	}
	if res.Multiplex != nil {
		if _, err := fmt.Fprintf(w, "multiplex compatibility: %.3f\n", res.Multiplex.OverallScore); err != nil {
			return err
		}
		for _, warn := range res.Multiplex.Warnings {
			if _, err := fmt.Fprintf(w, "  warning: %s\n", warn); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePairText(w io.Writer, rank int, p *design.Pair) error {
	if _, err := fmt.Fprintf(w, "#%d %s  score %.3f  amplicon %d bp\n",
		rank, p.ID, p.CompatibilityScore, p.AmpliconLength); err != nil {
		return err
	}
	for _, pr := range []*design.Primer{&p.Forward, &p.Reverse} {
		if _, err := fmt.Fprintf(w, "  %-7s %-27s pos %-5d len %-3d Tm %5.2f°C  GC %5.1f%%  Q %.1f\n",
			pr.Direction, pr.Sequence, pr.Position, pr.Length, pr.Tm, pr.GCContent, pr.QualityScore); err != nil {
			return err
		}
	}
	for _, warn := range p.Validation.Warnings {
		if _, err := fmt.Fprintf(w, "  warning: %s\n", warn); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
