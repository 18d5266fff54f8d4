package beam

import "log/slog"

// Analysis is the output of one run: reactions, sampled diagrams and extrema
type Analysis struct {
	Reactions Reactions `json:"reactions"`
	*Diagram

	loads []Load
	opts  Options
}

// Analyze validates the beam, solves the reactions and samples the diagrams.
// A *ConfigurationError means the beam is well formed but not analyzable
// (wrong support count); nothing is computed in that case.
func (b *Beam) Analyze(opts Options) (*Analysis, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	r, err := Solve(b.Supports, b.Loads, opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("reactions solved", "beam", b.Name, "RA", r.RA, "RB", r.RB, "exact", opts.Exact)

	d, err := Sample(b.Length, r, b.Loads, opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("diagrams sampled", "beam", b.Name, "stations", len(d.Stations),
		"maxAbsV", d.MaxAbsV.Value, "maxAbsM", d.MaxAbsM.Value)

	return &Analysis{Reactions: r, Diagram: d, loads: b.Loads, opts: opts}, nil
}

// At evaluates V and M at any section, not only at the sampled stations
func (a *Analysis) At(x float64) (v, m float64) {
	return SectionAt(x, a.Reactions, a.loads, a.opts)
}

// TotalLoad is the sum of all vertical load resultants (kN)
func TotalLoad(loads []Load) float64 {
	var sum float64
	for _, l := range loads {
		sum += Resultant(l)
	}
	return sum
}
