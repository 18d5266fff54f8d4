package beam

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultResolution is the number of diagram stations when none is given
const DefaultResolution = 400

// MaxSupports is the largest support count accepted as input.
// Only two supports can actually be analyzed.
const MaxSupports = 5

// SupportType describes how a support is drawn. The solver treats every
// support as a pure vertical reaction.
type SupportType string

const (
	Fixed  SupportType = "Fixed"
	Pinned SupportType = "Pinned"
	Roller SupportType = "Roller"
)

// ParseSupportType is case-insensitive and accepts "pin"/"hinge" for Pinned
func ParseSupportType(s string) (SupportType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "fix":
		return Fixed, nil
	case "pinned", "pin", "hinge":
		return Pinned, nil
	case "roller":
		return Roller, nil
	}
	return "", fmt.Errorf("unknown support type %q (use Fixed, Pinned or Roller)", s)
}

// Support is a vertical reaction point
type Support struct {
	Type     SupportType `json:"type"`
	Position float64     `json:"position"` // m from left end
}

// Beam is a straight member of given length with its supports and loads
type Beam struct {
	Name        string
	Description string

	Length   float64 // L (m)
	Supports []Support
	Loads    []Load
}

// New creates a beam
func New(length float64, supports []Support, loads []Load) *Beam {
	return &Beam{Length: length, Supports: supports, Loads: loads}
}

// Options tune a single analysis run
type Options struct {
	// Resolution is the number of diagram stations over [0, L]; 0 means DefaultResolution
	Resolution int

	// Exact places triangular resultants at their true centroid, folds
	// concentrated moments into the solve and the diagrams, samples triangular
	// loads, and adds RB to the shear diagram. The default reproduces the
	// simplified treatment.
	Exact bool
}

func (o Options) resolution() int {
	if o.Resolution == 0 {
		return DefaultResolution
	}
	return o.Resolution
}

// Reactions holds the two support reactions (upward positive)
type Reactions struct {
	A  float64 `json:"A"`  // left support position (m)
	B  float64 `json:"B"`  // right support position (m)
	RA float64 `json:"RA"` // kN
	RB float64 `json:"RB"` // kN
}

// Station is one diagram sample
type Station struct {
	X float64 `json:"x"` // m
	V float64 `json:"V"` // kN
	M float64 `json:"M"` // kN-m
}

// Extreme is the location and signed value of a maximum absolute ordinate
type Extreme struct {
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// Diagram is the sampled shear force and bending moment along the beam
type Diagram struct {
	Stations []Station `json:"diagram"`
	MaxAbsV  Extreme   `json:"maxAbsV"`
	MaxAbsM  Extreme   `json:"maxAbsM"`
}

// X returns the station abscissae
func (d *Diagram) X() []float64 {
	return d.column(func(s Station) float64 { return s.X })
}

// Shear returns V at each station
func (d *Diagram) Shear() []float64 {
	return d.column(func(s Station) float64 { return s.V })
}

// Moment returns M at each station
func (d *Diagram) Moment() []float64 {
	return d.column(func(s Station) float64 { return s.M })
}

func (d *Diagram) column(f func(Station) float64) []float64 {
	out := make([]float64, len(d.Stations))
	for i, s := range d.Stations {
		out[i] = f(s)
	}
	return out
}

// orderedSupports returns the two support positions left to right
func orderedSupports(supports []Support) (a, b float64) {
	pos := []float64{supports[0].Position, supports[1].Position}
	sort.Float64s(pos)
	return pos[0], pos[1]
}
