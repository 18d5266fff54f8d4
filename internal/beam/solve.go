package beam

import "fmt"

// Solve computes the two support reactions from static equilibrium.
// Forces are summed for RA + RB and moments are taken about the left
// support A:
//
//	RB = ΣM_A / (B − A)
//	RA = ΣF − RB
//
// Downward loads and clockwise moments are positive; reactions are positive upward.
func Solve(supports []Support, loads []Load, opts Options) (Reactions, error) {
	if len(supports) != 2 {
		return Reactions{}, &ConfigurationError{Supports: len(supports)}
	}
	a, b := orderedSupports(supports)
	if a == b {
		return Reactions{}, ErrDegenerateSpan
	}

	var totalVertical, totalMoment float64
	for _, l := range loads {
		f, m := loadActions(l, a, opts.Exact)
		totalVertical += f
		totalMoment += m
	}

	rb := totalMoment / (b - a)
	return Reactions{A: a, B: b, RA: totalVertical - rb, RB: rb}, nil
}

// loadActions returns the vertical force of a load and its moment about a
func loadActions(l Load, a float64, exact bool) (force, moment float64) {
	switch ld := l.(type) {
	case PointLoad:
		return ld.Magnitude, ld.Magnitude * (ld.Position - a)

	case UDL:
		f := ld.Intensity * (ld.End - ld.Start)
		return f, f * ((ld.Start+ld.End)/2 - a)

	case TriangularLoad:
		f := Resultant(ld)
		if !exact {
			// resultant at the midpoint of the loaded length
			return f, f * ((ld.Start+ld.End)/2 - a)
		}
		c := ld.End - ld.Start
		return f, f*(ld.Start-a) + c*c*(ld.StartIntensity+2*ld.EndIntensity)/6

	case Moment:
		if !exact {
			return 0, 0
		}
		return 0, ld.Direction.Sign() * ld.Magnitude
	}
	panic(fmt.Sprintf("beam: unhandled load type %T", l))
}

// Centroid returns the distance from the left end of the beam to the line of
// action of a distributed load's resultant. For a triangular load it is the
// trapezoid centroid; ok is false when the resultant is zero.
func Centroid(l Load) (x float64, ok bool) {
	switch ld := l.(type) {
	case PointLoad:
		return ld.Position, true
	case UDL:
		return (ld.Start + ld.End) / 2, true
	case TriangularLoad:
		sum := ld.StartIntensity + ld.EndIntensity
		if sum == 0 {
			return 0, false
		}
		c := ld.End - ld.Start
		return ld.Start + c*(ld.StartIntensity+2*ld.EndIntensity)/(3*sum), true
	}
	return 0, false
}
