// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"primedesign-core/design"
)

const tsvHeader = "pair_id\tdirection\tsequence\tposition\tlength\ttm\tgc_percent\tquality\tamplicon_length\tpair_score"

// WriteTSV prints two rows per pair, one for each primer.
func WriteTSV(w io.Writer, res *design.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, tsvHeader); err != nil {
			return err
		}
	}
	for i := range res.Pairs {
		p := &res.Pairs[i]
		for _, pr := range []*design.Primer{&p.Forward, &p.Reverse} {
			_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2f\t%.1f\t%.1f\t%d\t%.3f\n",
				p.ID, pr.Direction, pr.Sequence, pr.Position, pr.Length,
				pr.Tm, pr.GCContent, pr.QualityScore,
				p.AmpliconLength, p.CompatibilityScore)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
