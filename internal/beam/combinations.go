package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// Factored scales every load by the factor its load case carries in the
// combination. Loads whose factor is zero are dropped.
func Factored(loads []Load, combo nscp.LoadCombination) []Load {
	out := make([]Load, 0, len(loads))
	for _, l := range loads {
		f := combo.Factor(l.LoadCase())
		if f == 0 {
			continue
		}
		out = append(out, scale(l, f))
	}
	return out
}

func scale(l Load, f float64) Load {
	switch ld := l.(type) {
	case PointLoad:
		ld.Magnitude *= f
		return ld
	case Moment:
		ld.Magnitude *= f
		return ld
	case UDL:
		ld.Intensity *= f
		return ld
	case TriangularLoad:
		ld.StartIntensity *= f
		ld.EndIntensity *= f
		return ld
	}
	panic(fmt.Sprintf("beam: unhandled load type %T", l))
}

// WithCombination returns a copy of the beam carrying the factored loads
func (b *Beam) WithCombination(combo nscp.LoadCombination) *Beam {
	c := *b
	c.Loads = Factored(b.Loads, combo)
	return &c
}

// CombinationResult is the analysis of one factored load combination
type CombinationResult struct {
	Combination nscp.LoadCombination
	Analysis    *Analysis
}

// CombinationReport holds every combination and the governing one
type CombinationReport struct {
	Results   []CombinationResult
	Governing int // index into Results
}

// GoverningResult returns the combination with the largest |M|
func (r *CombinationReport) GoverningResult() CombinationResult {
	return r.Results[r.Governing]
}

// AnalyzeCombinations runs the beam once per combination and finds the one
// producing the largest absolute bending moment. Ties keep the first.
func (b *Beam) AnalyzeCombinations(combos []nscp.LoadCombination, opts Options) (*CombinationReport, error) {
	if len(combos) == 0 {
		return nil, fmt.Errorf("no load combinations given")
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	report := &CombinationReport{}
	var maxMoment float64
	for i, combo := range combos {
		a, err := b.WithCombination(combo).Analyze(opts)
		if err != nil {
			return nil, fmt.Errorf("combination %s: %w", combo.ID, err)
		}
		report.Results = append(report.Results, CombinationResult{Combination: combo, Analysis: a})

		if m := math.Abs(a.MaxAbsM.Value); i == 0 || m > maxMoment {
			maxMoment = m
			report.Governing = i
		}
	}
	return report, nil
}
