package beam

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGeometry is wrapped by every *GeometryError
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnsupportedConfiguration is wrapped by *ConfigurationError.
	// It is informational: the input is well formed but cannot be analyzed.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrDegenerateSpan means both supports share one position
	ErrDegenerateSpan = errors.New("degenerate span: supports coincide")

	// ErrResolution means fewer than two diagram stations were requested
	ErrResolution = errors.New("resolution must be at least 2")
)

// GeometryError reports an input coordinate or magnitude that cannot be used
type GeometryError struct {
	Field  string  // e.g. "length", "supports[1].position", "loads[0].end"
	Value  float64 // offending value
	Reason string
}

// Error leaves out Value when it is NaN; fields such as a direction or a
// missing load carry no number.
func (e *GeometryError) Error() string {
	if math.IsNaN(e.Value) {
		return fmt.Sprintf("invalid geometry: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s = %g: %s", e.Field, e.Value, e.Reason)
}

func (e *GeometryError) Unwrap() error { return ErrInvalidGeometry }

// ConfigurationError reports a support count other than two
type ConfigurationError struct {
	Supports int
}

// Indeterminate reports whether the beam has redundant supports (3 to MaxSupports)
func (e *ConfigurationError) Indeterminate() bool {
	return e.Supports > 2 && e.Supports <= MaxSupports
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Indeterminate():
		return fmt.Sprintf("unsupported configuration: %d supports make the beam statically indeterminate; only 2 supports can be analyzed", e.Supports)
	case e.Supports < 2:
		return fmt.Sprintf("unsupported configuration: %d support(s) given; a beam needs exactly 2", e.Supports)
	default:
		return fmt.Sprintf("unsupported configuration: %d supports exceed the maximum of %d", e.Supports, MaxSupports)
	}
}

func (e *ConfigurationError) Unwrap() error { return ErrUnsupportedConfiguration }
