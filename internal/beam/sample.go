package beam

import (
	"fmt"
	"math"
)

// Sample builds the shear force and bending moment diagrams by superposing
// every load and both reactions over evenly spaced stations on [0, length].
// The first station is at 0 and the last at length exactly.
//
// Sign convention: V is positive when the resultant left of the section acts
// upward; M is positive sagging.
func Sample(length float64, r Reactions, loads []Load, opts Options) (*Diagram, error) {
	n := opts.resolution()
	if n < 2 {
		return nil, ErrResolution
	}
	if !finite(length) || length <= 0 {
		return nil, &GeometryError{Field: "length", Value: length, Reason: "beam length must be positive"}
	}

	xs := linspace(length, n)
	v := make([]float64, n)
	m := make([]float64, n)

	for _, l := range loads {
		superpose(xs, v, m, l, opts.Exact)
	}

	for i, x := range xs {
		if x >= r.A {
			v[i] += r.RA
			m[i] += r.RA * (x - r.A)
		}
		if x >= r.B {
			if opts.Exact {
				v[i] += r.RB
				m[i] += r.RB * (x - r.B)
			} else {
				m[i] -= r.RB * (x - r.B)
			}
		}
	}

	d := &Diagram{Stations: make([]Station, n)}
	for i := range xs {
		d.Stations[i] = Station{X: xs[i], V: v[i], M: m[i]}
	}
	d.MaxAbsV = extreme(xs, v)
	d.MaxAbsM = extreme(xs, m)
	return d, nil
}

// superpose adds the effect of one load to every station
func superpose(xs, v, m []float64, l Load, exact bool) {
	switch ld := l.(type) {
	case PointLoad:
		for i, x := range xs {
			if x >= ld.Position {
				v[i] -= ld.Magnitude
				m[i] -= ld.Magnitude * (x - ld.Position)
			}
		}

	case UDL:
		w, s, e := ld.Intensity, ld.Start, ld.End
		for i, x := range xs {
			switch {
			case x >= s && x <= e:
				v[i] -= w * (x - s)
				m[i] -= (w / 2) * (x - s) * (x - s)
			case x > e:
				v[i] -= w * (e - s)
				m[i] -= w * (e - s) * (x - (s+e)/2)
			}
		}

	case TriangularLoad:
		if !exact {
			return
		}
		for i, x := range xs {
			dv, dm := triangularSection(ld, x)
			v[i] -= dv
			m[i] -= dm
		}

	case Moment:
		if !exact {
			return
		}
		for i, x := range xs {
			if x >= ld.Position {
				m[i] += ld.Direction.Sign() * ld.Magnitude
			}
		}

	default:
		panic(fmt.Sprintf("beam: unhandled load type %T", l))
	}
}

// SectionAt evaluates V and M at a single section x in closed form. It
// follows the same piecewise rules as Sample, so the two agree at every station.
func SectionAt(x float64, r Reactions, loads []Load, opts Options) (v, m float64) {
	for _, l := range loads {
		switch ld := l.(type) {
		case PointLoad:
			if x >= ld.Position {
				v -= ld.Magnitude
				m -= ld.Magnitude * (x - ld.Position)
			}
		case UDL:
			w, s, e := ld.Intensity, ld.Start, ld.End
			if x >= s && x <= e {
				v -= w * (x - s)
				m -= (w / 2) * (x - s) * (x - s)
			} else if x > e {
				v -= w * (e - s)
				m -= w * (e - s) * (x - (s+e)/2)
			}
		case TriangularLoad:
			if opts.Exact {
				dv, dm := triangularSection(ld, x)
				v -= dv
				m -= dm
			}
		case Moment:
			if opts.Exact && x >= ld.Position {
				m += ld.Direction.Sign() * ld.Magnitude
			}
		default:
			panic(fmt.Sprintf("beam: unhandled load type %T", l))
		}
	}

	if x >= r.A {
		v += r.RA
		m += r.RA * (x - r.A)
	}
	if x >= r.B {
		if opts.Exact {
			v += r.RB
			m += r.RB * (x - r.B)
		} else {
			m -= r.RB * (x - r.B)
		}
	}
	return v, m
}

// triangularSection returns the shear and moment a linearly varying load
// produces at x (both to be subtracted from the diagram).
func triangularSection(ld TriangularLoad, x float64) (dv, dm float64) {
	s, e := ld.Start, ld.End
	w1, w2 := ld.StartIntensity, ld.EndIntensity
	c := e - s

	switch {
	case x < s:
		return 0, 0
	case x <= e:
		t := x - s
		slope := (w2 - w1) / c
		return w1*t + slope*t*t/2, w1*t*t/2 + slope*t*t*t/6
	default:
		f := (w1 + w2) / 2 * c
		return f, f*(x-s) - c*c*(w1+2*w2)/6
	}
}

// linspace returns n evenly spaced values over [0, length], ends exact
func linspace(length float64, n int) []float64 {
	xs := make([]float64, n)
	step := length / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	xs[0] = 0
	xs[n-1] = length
	return xs
}

// extreme returns the first station with the largest absolute value
func extreme(xs, ys []float64) Extreme {
	idx := 0
	for i := range ys {
		if math.Abs(ys[i]) > math.Abs(ys[idx]) {
			idx = i
		}
	}
	return Extreme{X: xs[idx], Value: ys[idx]}
}
