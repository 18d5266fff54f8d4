package beam

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// LoadFromFile loads a beam definition from a JSON file.
//
// Example:
//
//	{
//	  "name": "B-1",
//	  "length": 6,
//	  "supports": [{"type": "Pinned", "position": 0}, {"type": "Roller", "position": 6}],
//	  "loads": [
//	    {"type": "point", "magnitude": 10, "position": 3},
//	    {"type": "udl", "intensity": 2, "start": 0, "end": 6, "case": "L"}
//	  ]
//	}
func LoadFromFile(filepath string) (*Beam, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var b Beam
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return &b, nil
}

// jsonBeam is the file layout of a Beam
type jsonBeam struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Length      float64    `json:"length"`
	Supports    []Support  `json:"supports"`
	Loads       []jsonLoad `json:"loads"`
}

// jsonLoad flattens every load variant; Type selects which fields apply
type jsonLoad struct {
	Type           string  `json:"type"`
	Case           string  `json:"case,omitempty"`
	Magnitude      float64 `json:"magnitude,omitempty"`
	Position       float64 `json:"position,omitempty"`
	Direction      string  `json:"direction,omitempty"`
	Intensity      float64 `json:"intensity,omitempty"`
	StartIntensity float64 `json:"startIntensity,omitempty"`
	EndIntensity   float64 `json:"endIntensity,omitempty"`
	Start          float64 `json:"start,omitempty"`
	End            float64 `json:"end,omitempty"`
}

// UnmarshalJSON decodes the tagged load list
func (b *Beam) UnmarshalJSON(data []byte) error {
	var raw jsonBeam
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	loads := make([]Load, 0, len(raw.Loads))
	for i, jl := range raw.Loads {
		l, err := jl.load()
		if err != nil {
			return fmt.Errorf("loads[%d]: %w", i, err)
		}
		loads = append(loads, l)
	}

	*b = Beam{
		Name:        raw.Name,
		Description: raw.Description,
		Length:      raw.Length,
		Supports:    raw.Supports,
		Loads:       loads,
	}
	return nil
}

// MarshalJSON writes the same layout UnmarshalJSON reads
func (b *Beam) MarshalJSON() ([]byte, error) {
	raw := jsonBeam{
		Name:        b.Name,
		Description: b.Description,
		Length:      b.Length,
		Supports:    b.Supports,
		Loads:       make([]jsonLoad, 0, len(b.Loads)),
	}
	for _, l := range b.Loads {
		jl := jsonLoad{Type: string(l.Kind()), Case: string(l.LoadCase())}
		switch ld := l.(type) {
		case PointLoad:
			jl.Magnitude, jl.Position = ld.Magnitude, ld.Position
		case Moment:
			jl.Magnitude, jl.Position, jl.Direction = ld.Magnitude, ld.Position, string(ld.Direction)
		case UDL:
			jl.Intensity, jl.Start, jl.End = ld.Intensity, ld.Start, ld.End
		case TriangularLoad:
			jl.StartIntensity, jl.EndIntensity = ld.StartIntensity, ld.EndIntensity
			jl.Start, jl.End = ld.Start, ld.End
		}
		raw.Loads = append(raw.Loads, jl)
	}
	return json.Marshal(raw)
}

func (jl jsonLoad) load() (Load, error) {
	lc, err := nscp.ParseLoadCase(jl.Case)
	if err != nil {
		return nil, err
	}

	switch Kind(strings.ToLower(jl.Type)) {
	case KindPoint:
		return PointLoad{Magnitude: jl.Magnitude, Position: jl.Position, Case: lc}, nil
	case KindMoment:
		dir, err := ParseDirection(jl.Direction)
		if err != nil {
			return nil, err
		}
		return Moment{Magnitude: jl.Magnitude, Position: jl.Position, Direction: dir, Case: lc}, nil
	case KindUDL:
		return UDL{Intensity: jl.Intensity, Start: jl.Start, End: jl.End, Case: lc}, nil
	case KindTriangular:
		return TriangularLoad{
			StartIntensity: jl.StartIntensity,
			EndIntensity:   jl.EndIntensity,
			Start:          jl.Start,
			End:            jl.End,
			Case:           lc,
		}, nil
	}
	return nil, fmt.Errorf("unknown load type %q (use point, moment, udl or triangular)", jl.Type)
}

// UnmarshalText lets JSON support types be written in any case
func (t *SupportType) UnmarshalText(text []byte) error {
	st, err := ParseSupportType(string(text))
	if err != nil {
		return err
	}
	*t = st
	return nil
}
