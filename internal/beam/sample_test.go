package beam_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, b *beam.Beam, opts beam.Options) *beam.Analysis {
	t.Helper()
	a, err := b.Analyze(opts)
	require.NoError(t, err)
	return a
}

// TestSample_CentralPointLoad: V = ±5, M(0) = 0, M(3) = 15, M(6) = 0.
func TestSample_CentralPointLoad(t *testing.T) {
	b := beam.New(6, simpleSupports(0, 6), []beam.Load{beam.PointLoad{Magnitude: 10, Position: 3}})
	a := analyze(t, b, beam.Options{})

	require.Len(t, a.Stations, beam.DefaultResolution)
	for _, s := range a.Stations {
		switch {
		case s.X < 3:
			assert.InDelta(t, 5.0, s.V, tol, "V(%g)", s.X)
		case s.X > 3:
			assert.InDelta(t, -5.0, s.V, tol, "V(%g)", s.X)
		}
	}

	first, last := a.Stations[0], a.Stations[len(a.Stations)-1]
	assert.InDelta(t, 0.0, first.M, tol)
	assert.InDelta(t, 0.0, last.M, tol)
	assert.InDelta(t, -5.0, last.V, tol, "RB is not added to the shear diagram")

	_, m := a.At(3)
	assert.InDelta(t, 15.0, m, tol)
	_, m = a.At(0)
	assert.InDelta(t, 0.0, m, tol)
	_, m = a.At(6)
	assert.InDelta(t, 0.0, m, tol)

	assert.Equal(t, 0.0, a.MaxAbsV.X)
	assert.InDelta(t, 5.0, a.MaxAbsV.Value, tol)
	assert.InDelta(t, 3.0, a.MaxAbsM.X, 0.01)
	assert.InDelta(t, 15.0, a.MaxAbsM.Value, 0.05)
}

// TestSample_FullSpanUDL: M(3) = 6·3 − (2/2)·3² = 9.
func TestSample_FullSpanUDL(t *testing.T) {
	b := beam.New(6, simpleSupports(0, 6), []beam.Load{beam.UDL{Intensity: 2, Start: 0, End: 6}})
	a := analyze(t, b, beam.Options{})

	assert.InDelta(t, 6.0, a.Reactions.RA, tol)
	assert.InDelta(t, 6.0, a.Reactions.RB, tol)

	v, m := a.At(3)
	assert.InDelta(t, 0.0, v, tol)
	assert.InDelta(t, 9.0, m, tol)

	assert.InDelta(t, 3.0, a.MaxAbsM.X, 0.01)
	assert.InDelta(t, 9.0, a.MaxAbsM.Value, 1e-3)
	assert.InDelta(t, 0.0, a.Stations[len(a.Stations)-1].M, tol)
}

func TestSample_NoLoads(t *testing.T) {
	a := analyze(t, beam.New(5, simpleSupports(1, 4), nil), beam.Options{})
	assert.Equal(t, 0.0, a.Reactions.RA)
	assert.Equal(t, 0.0, a.Reactions.RB)
	for _, s := range a.Stations {
		assert.Equal(t, 0.0, s.V)
		assert.Equal(t, 0.0, s.M)
	}
}

// TestSample_Endpoints checks the first and last stations for several resolutions.
func TestSample_Endpoints(t *testing.T) {
	for _, length := range []float64{0.3, 1, 6, 7.77, 123.456} {
		for _, n := range []int{2, 3, 7, 400, 1001} {
			d, err := beam.Sample(length, beam.Reactions{A: 0, B: length}, nil, beam.Options{Resolution: n})
			require.NoError(t, err)
			require.Len(t, d.Stations, n)
			assert.Equal(t, 0.0, d.Stations[0].X)
			assert.Equal(t, length, d.Stations[n-1].X)
			for i := 1; i < n; i++ {
				assert.Less(t, d.Stations[i-1].X, d.Stations[i].X)
			}
		}
	}
}

func TestSample_Errors(t *testing.T) {
	_, err := beam.Sample(6, beam.Reactions{B: 6}, nil, beam.Options{Resolution: 1})
	assert.True(t, errors.Is(err, beam.ErrResolution))

	_, err = beam.Sample(0, beam.Reactions{}, nil, beam.Options{})
	assert.True(t, errors.Is(err, beam.ErrInvalidGeometry))
}

// TestSample_Superposition: loads {X, Y} equal the sum of {X} and {Y} for points and UDLs.
func TestSample_Superposition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const length = 9.0
	for trial := 0; trial < 20; trial++ {
		var x, y []beam.Load
		for _, l := range randomLoads(rng, 8, length) {
			switch l.(type) {
			case beam.PointLoad, beam.UDL:
				if len(x) <= len(y) {
					x = append(x, l)
				} else {
					y = append(y, l)
				}
			}
		}
		supports := simpleSupports(1, 7.5)
		both := analyze(t, beam.New(length, supports, append(append([]beam.Load{}, x...), y...)), beam.Options{})
		onlyX := analyze(t, beam.New(length, supports, x), beam.Options{})
		onlyY := analyze(t, beam.New(length, supports, y), beam.Options{})

		for i, s := range both.Stations {
			assert.InDelta(t, onlyX.Stations[i].V+onlyY.Stations[i].V, s.V, 1e-6, "trial %d V(%g)", trial, s.X)
			assert.InDelta(t, onlyX.Stations[i].M+onlyY.Stations[i].M, s.M, 1e-6, "trial %d M(%g)", trial, s.X)
		}
	}
}

// TestSample_MatchesSectionAt compares the array pass with point evaluation.
func TestSample_MatchesSectionAt(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, exact := range []bool{false, true} {
		opts := beam.Options{Exact: exact, Resolution: 257}
		for trial := 0; trial < 10; trial++ {
			loads := randomLoads(rng, 10, 8)
			a := analyze(t, beam.New(8, simpleSupports(0.5, 6), loads), opts)
			for _, s := range a.Stations {
				v, m := beam.SectionAt(s.X, a.Reactions, loads, opts)
				assert.InDelta(t, s.V, v, 1e-9, "exact=%v V(%g)", exact, s.X)
				assert.InDelta(t, s.M, m, 1e-9, "exact=%v M(%g)", exact, s.X)
			}
		}
	}
}

// TestSample_TriangularSkippedByDefault keeps triangular loads out of V and M
// unless the exact treatment is requested.
func TestSample_TriangularSkippedByDefault(t *testing.T) {
	tri := beam.TriangularLoad{StartIntensity: 0, EndIntensity: 6, Start: 0, End: 6}
	a := analyze(t, beam.New(6, simpleSupports(0, 6), []beam.Load{tri}), beam.Options{})

	// Only the reaction terms remain: V = RA everywhere from A onwards.
	for _, s := range a.Stations {
		assert.InDelta(t, a.Reactions.RA, s.V, tol)
	}
}

// TestSample_ExactTriangular: maximum M = w0·L²/(9√3) at x = L/√3.
func TestSample_ExactTriangular(t *testing.T) {
	tri := beam.TriangularLoad{StartIntensity: 0, EndIntensity: 6, Start: 0, End: 6}
	a := analyze(t, beam.New(6, simpleSupports(0, 6), []beam.Load{tri}), beam.Options{Exact: true, Resolution: 2001})

	assert.InDelta(t, 6*36/(9*math.Sqrt(3)), a.MaxAbsM.Value, 1e-4)
	assert.InDelta(t, 6/math.Sqrt(3), a.MaxAbsM.X, 0.005)

	v, m := a.At(6)
	assert.InDelta(t, 0.0, v, 1e-9)
	assert.InDelta(t, 0.0, m, 1e-9)
}

// TestSample_ExactOverhang closes V and M at the free end of an overhang.
func TestSample_ExactOverhang(t *testing.T) {
	b := beam.New(8, simpleSupports(0, 6), []beam.Load{
		beam.PointLoad{Magnitude: 10, Position: 8},
		beam.UDL{Intensity: 3, Start: 2, End: 8},
	})
	a := analyze(t, b, beam.Options{Exact: true})

	last := a.Stations[len(a.Stations)-1]
	assert.InDelta(t, 0.0, last.V, 1e-9)
	assert.InDelta(t, 0.0, last.M, 1e-9)

	// The support moment is hogging: −(10·2 + 3·2·1) = −26.
	_, m := a.At(6)
	assert.InDelta(t, -26.0, m, 1e-9)
}

// TestSample_ExactMoment: a clockwise couple makes the moment diagram jump up.
func TestSample_ExactMoment(t *testing.T) {
	b := beam.New(6, simpleSupports(0, 6), []beam.Load{
		beam.Moment{Magnitude: 12, Position: 3, Direction: beam.Clockwise},
	})
	a := analyze(t, b, beam.Options{Exact: true})

	_, left := a.At(2.999999)
	_, right := a.At(3)
	assert.InDelta(t, -6.0, left, 1e-5)
	assert.InDelta(t, 6.0, right, 1e-9)

	_, end := a.At(6)
	assert.InDelta(t, 0.0, end, 1e-9)

	compat := analyze(t, b, beam.Options{})
	for _, s := range compat.Stations {
		assert.Equal(t, 0.0, s.M)
	}
}

func TestDiagram_Columns(t *testing.T) {
	b := beam.New(4, simpleSupports(0, 4), []beam.Load{beam.PointLoad{Magnitude: 8, Position: 2}})
	a := analyze(t, b, beam.Options{Resolution: 5})

	assert.Equal(t, []float64{0, 1, 2, 3, 4}, a.X())
	assert.Equal(t, []float64{4, 4, -4, -4, -4}, a.Shear())
	m := a.Moment()
	require.Len(t, m, 5)
	assert.InDelta(t, 8.0, m[2], tol)
	assert.Equal(t, 2.0, a.MaxAbsM.X)
}
