package beam

import (
	"fmt"
	"math"
)

// Validate checks the beam before any solving. It never clamps: the first
// problem found is returned as a *GeometryError, a *ConfigurationError or
// ErrDegenerateSpan.
func (b *Beam) Validate() error {
	if !finite(b.Length) || b.Length <= 0 {
		return &GeometryError{Field: "length", Value: b.Length, Reason: "beam length must be positive"}
	}

	if len(b.Supports) != 2 {
		return &ConfigurationError{Supports: len(b.Supports)}
	}
	for i, s := range b.Supports {
		if err := b.checkCoordinate(fmt.Sprintf("supports[%d].position", i), s.Position); err != nil {
			return err
		}
	}
	if b.Supports[0].Position == b.Supports[1].Position {
		return ErrDegenerateSpan
	}

	for i, l := range b.Loads {
		if err := b.validateLoad(i, l); err != nil {
			return err
		}
	}
	return nil
}

func (b *Beam) validateLoad(i int, l Load) error {
	field := func(name string) string { return fmt.Sprintf("loads[%d].%s", i, name) }

	switch ld := l.(type) {
	case PointLoad:
		if err := checkFinite(field("magnitude"), ld.Magnitude); err != nil {
			return err
		}
		return b.checkCoordinate(field("position"), ld.Position)

	case Moment:
		if err := checkFinite(field("magnitude"), ld.Magnitude); err != nil {
			return err
		}
		if ld.Direction != Clockwise && ld.Direction != Anticlockwise {
			return &GeometryError{Field: field("direction"), Value: math.NaN(),
				Reason: fmt.Sprintf("direction %q is neither Clockwise nor Anticlockwise", ld.Direction)}
		}
		return b.checkCoordinate(field("position"), ld.Position)

	case UDL:
		if err := checkFinite(field("intensity"), ld.Intensity); err != nil {
			return err
		}
		return b.checkSpan(field, ld.Start, ld.End)

	case TriangularLoad:
		if err := checkFinite(field("startIntensity"), ld.StartIntensity); err != nil {
			return err
		}
		if err := checkFinite(field("endIntensity"), ld.EndIntensity); err != nil {
			return err
		}
		return b.checkSpan(field, ld.Start, ld.End)

	case nil:
		return &GeometryError{Field: fmt.Sprintf("loads[%d]", i), Value: math.NaN(), Reason: "missing load"}
	}
	panic(fmt.Sprintf("beam: unhandled load type %T", l))
}

func (b *Beam) checkSpan(field func(string) string, start, end float64) error {
	if err := b.checkCoordinate(field("start"), start); err != nil {
		return err
	}
	if err := b.checkCoordinate(field("end"), end); err != nil {
		return err
	}
	if start >= end {
		return &GeometryError{Field: field("end"), Value: end,
			Reason: fmt.Sprintf("end must be greater than start (%g)", start)}
	}
	return nil
}

func (b *Beam) checkCoordinate(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v < 0 || v > b.Length {
		return &GeometryError{Field: field, Value: v,
			Reason: fmt.Sprintf("must lie within [0, %g]", b.Length)}
	}
	return nil
}

func checkFinite(field string, v float64) error {
	if !finite(v) {
		return &GeometryError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
