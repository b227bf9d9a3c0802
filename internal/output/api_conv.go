// internal/output/api_conv.go
package output

import (
	"primedesign-core/design"
	"primedesign/pkg/api"
)

// FromResult converts a design result into the stable v1 schema.
func FromResult(res *design.Result) api.DesignResultV1 {
	out := api.DesignResultV1{
		Pairs:       make([]api.PrimerPairV1, 0, len(res.Pairs)),
		TargetStart: res.TargetStart,
		TargetEnd:   res.TargetEnd,
	}
	for i := range res.Pairs {
		out.Pairs = append(out.Pairs, fromPair(&res.Pairs[i]))
	}
	if res.Multiplex != nil {
		mv := api.MultiplexV1{
			Matrix:       res.Multiplex.Matrix,
			Warnings:     res.Multiplex.Warnings,
			OverallScore: res.Multiplex.OverallScore,
		}
		out.Multiplex = &mv
	}
	return out
}

func fromPair(p *design.Pair) api.PrimerPairV1 {
	v := api.PrimerPairV1{
		ID:                 p.ID,
		Forward:            fromPrimer(&p.Forward),
		Reverse:            fromPrimer(&p.Reverse),
		AmpliconLength:     p.AmpliconLength,
		AmpliconSequence:   p.AmpliconSequence,
		TargetGene:         p.TargetGene,
		CompatibilityScore: p.CompatibilityScore,
		CreatedBy:          p.CreatedBy,
		CreatedAt:          p.CreatedAt,
	}
	v.Validation = &api.ValidationV1{
		SelfDimerCheck:   p.Validation.SelfDimerCheck,
		HairpinCheck:     p.Validation.HairpinCheck,
		HeteroDimerCheck: p.Validation.HeteroDimerCheck,
		Warnings:         p.Validation.Warnings,
	}
	return v
}

func fromPrimer(p *design.Primer) api.PrimerV1 {
	return api.PrimerV1{
		Sequence:            p.Sequence,
		Position:            p.Position,
		Length:              p.Length,
		Tm:                  p.Tm,
		GCContent:           p.GCContent,
		SelfDimerScore:      p.SelfDimerScore,
		HairpinScore:        p.HairpinScore,
		ThreePrimeStability: p.ThreePrimeStability,
		Direction:           string(p.Direction),
		QualityScore:        p.QualityScore,
		QualityWarnings:     p.QualityWarnings,
	}
}
