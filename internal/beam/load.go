package beam

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// Kind names a load variant
type Kind string

const (
	KindPoint      Kind = "point"
	KindMoment     Kind = "moment"
	KindUDL        Kind = "udl"
	KindTriangular Kind = "triangular"
)

// Load is one of PointLoad, Moment, UDL or TriangularLoad.
// The set is closed: only types in this package implement it.
type Load interface {
	Kind() Kind
	LoadCase() nscp.LoadCase
	String() string
	isLoad()
}

// Direction of a concentrated moment
type Direction string

const (
	Clockwise     Direction = "Clockwise"
	Anticlockwise Direction = "Anticlockwise"
)

// ParseDirection accepts "cw"/"clockwise" and "ccw"/"acw"/"anticlockwise"/"counterclockwise".
// An empty string means clockwise.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cw", "clockwise":
		return Clockwise, nil
	case "ccw", "acw", "anticlockwise", "counterclockwise":
		return Anticlockwise, nil
	}
	return "", fmt.Errorf("unknown moment direction %q", s)
}

// Sign is +1 for clockwise and -1 for anticlockwise
func (d Direction) Sign() float64 {
	if d == Anticlockwise {
		return -1
	}
	return 1
}

// PointLoad is a concentrated force, positive downward
type PointLoad struct {
	Magnitude float64       // kN
	Position  float64       // m from left end
	Case      nscp.LoadCase // load case for factoring
}

// Moment is a concentrated couple
type Moment struct {
	Magnitude float64 // kN-m
	Position  float64 // m from left end
	Direction Direction
	Case      nscp.LoadCase
}

// UDL is a uniformly distributed load over [Start, End], positive downward
type UDL struct {
	Intensity float64 // kN/m
	Start     float64 // m
	End       float64 // m
	Case      nscp.LoadCase
}

// TriangularLoad varies linearly from StartIntensity at Start to EndIntensity at End
type TriangularLoad struct {
	StartIntensity float64 // kN/m
	EndIntensity   float64 // kN/m
	Start          float64 // m
	End            float64 // m
	Case           nscp.LoadCase
}

func (PointLoad) Kind() Kind      { return KindPoint }
func (Moment) Kind() Kind         { return KindMoment }
func (UDL) Kind() Kind            { return KindUDL }
func (TriangularLoad) Kind() Kind { return KindTriangular }

func (l PointLoad) LoadCase() nscp.LoadCase      { return caseOrDead(l.Case) }
func (l Moment) LoadCase() nscp.LoadCase         { return caseOrDead(l.Case) }
func (l UDL) LoadCase() nscp.LoadCase            { return caseOrDead(l.Case) }
func (l TriangularLoad) LoadCase() nscp.LoadCase { return caseOrDead(l.Case) }

func (PointLoad) isLoad()      {}
func (Moment) isLoad()         {}
func (UDL) isLoad()            {}
func (TriangularLoad) isLoad() {}

func (l PointLoad) String() string {
	return fmt.Sprintf("Point %.2f kN @ %.2f m (%s)", l.Magnitude, l.Position, l.LoadCase())
}

func (l Moment) String() string {
	return fmt.Sprintf("Moment %.2f kN-m %s @ %.2f m (%s)", l.Magnitude, l.Direction, l.Position, l.LoadCase())
}

func (l UDL) String() string {
	return fmt.Sprintf("UDL %.2f kN/m from %.2f to %.2f m (%s)", l.Intensity, l.Start, l.End, l.LoadCase())
}

func (l TriangularLoad) String() string {
	return fmt.Sprintf("Triangular %.2f→%.2f kN/m from %.2f to %.2f m (%s)",
		l.StartIntensity, l.EndIntensity, l.Start, l.End, l.LoadCase())
}

// Resultant returns the total vertical force of a load (kN, downward positive).
// Concentrated moments have no resultant force.
func Resultant(l Load) float64 {
	switch ld := l.(type) {
	case PointLoad:
		return ld.Magnitude
	case UDL:
		return ld.Intensity * (ld.End - ld.Start)
	case TriangularLoad:
		return (ld.StartIntensity + ld.EndIntensity) / 2 * (ld.End - ld.Start)
	case Moment:
		return 0
	}
	panic(fmt.Sprintf("beam: unhandled load type %T", l))
}

func caseOrDead(c nscp.LoadCase) nscp.LoadCase {
	if c == "" {
		return nscp.Dead
	}
	return c
}
