package beam

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// Compact notation used by CLI flags and batch workbooks:
//
//	supports:  pinned@0   roller@6   fixed@0
//	loads:     point:10@3            (10 kN at 3 m)
//	           moment:5cw@2          (5 kN-m clockwise at 2 m; ccw for anticlockwise)
//	           udl:2@0-6             (2 kN/m from 0 to 6 m)
//	           tri:0,4@0-6           (0 to 4 kN/m from 0 to 6 m)
//
// A load may end in /<case>, e.g. point:10@3/L, to set its load case.

// ParseSupport parses "<type>@<position>"
func ParseSupport(s string) (Support, error) {
	typ, pos, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Support{}, fmt.Errorf("support %q: expected <type>@<position>", s)
	}
	st, err := ParseSupportType(typ)
	if err != nil {
		return Support{}, fmt.Errorf("support %q: %w", s, err)
	}
	p, err := parseNumber(pos)
	if err != nil {
		return Support{}, fmt.Errorf("support %q: %w", s, err)
	}
	return Support{Type: st, Position: p}, nil
}

// ParseLoad parses "<kind>:<value>@<where>[/<case>]"
func ParseLoad(s string) (Load, error) {
	l, err := parseLoad(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", s, err)
	}
	return l, nil
}

func parseLoad(s string) (Load, error) {
	body, caseSym, _ := strings.Cut(s, "/")
	lc, err := nscp.ParseLoadCase(caseSym)
	if err != nil {
		return nil, err
	}

	kind, rest, ok := strings.Cut(body, ":")
	if !ok {
		return nil, fmt.Errorf("expected <kind>:<value>@<position>")
	}
	value, where, ok := strings.Cut(rest, "@")
	if !ok {
		return nil, fmt.Errorf("missing @<position>")
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "point", "p":
		p, err := parseNumber(value)
		if err != nil {
			return nil, err
		}
		a, err := parseNumber(where)
		if err != nil {
			return nil, err
		}
		return PointLoad{Magnitude: p, Position: a, Case: lc}, nil

	case "moment", "m":
		mag, dir, err := splitDirection(value)
		if err != nil {
			return nil, err
		}
		a, err := parseNumber(where)
		if err != nil {
			return nil, err
		}
		return Moment{Magnitude: mag, Position: a, Direction: dir, Case: lc}, nil

	case "udl", "u":
		w, err := parseNumber(value)
		if err != nil {
			return nil, err
		}
		start, end, err := parseSpan(where)
		if err != nil {
			return nil, err
		}
		return UDL{Intensity: w, Start: start, End: end, Case: lc}, nil

	case "tri", "triangular", "t":
		first, second, ok := strings.Cut(value, ",")
		if !ok {
			return nil, fmt.Errorf("triangular load needs <start intensity>,<end intensity>")
		}
		w1, err := parseNumber(first)
		if err != nil {
			return nil, err
		}
		w2, err := parseNumber(second)
		if err != nil {
			return nil, err
		}
		start, end, err := parseSpan(where)
		if err != nil {
			return nil, err
		}
		return TriangularLoad{StartIntensity: w1, EndIntensity: w2, Start: start, End: end, Case: lc}, nil
	}
	return nil, fmt.Errorf("unknown load kind %q (use point, moment, udl or tri)", kind)
}

// Notation formats a load in the compact notation ParseLoad reads
func Notation(l Load) string {
	var s string
	switch ld := l.(type) {
	case PointLoad:
		s = fmt.Sprintf("point:%s@%s", formatNumber(ld.Magnitude), formatNumber(ld.Position))
	case Moment:
		dir := "cw"
		if ld.Direction == Anticlockwise {
			dir = "ccw"
		}
		s = fmt.Sprintf("moment:%s%s@%s", formatNumber(ld.Magnitude), dir, formatNumber(ld.Position))
	case UDL:
		s = fmt.Sprintf("udl:%s@%s-%s", formatNumber(ld.Intensity), formatNumber(ld.Start), formatNumber(ld.End))
	case TriangularLoad:
		s = fmt.Sprintf("tri:%s,%s@%s-%s", formatNumber(ld.StartIntensity), formatNumber(ld.EndIntensity),
			formatNumber(ld.Start), formatNumber(ld.End))
	default:
		panic(fmt.Sprintf("beam: unhandled load type %T", l))
	}
	if c := l.LoadCase(); c != nscp.Dead {
		s += "/" + string(c)
	}
	return s
}

// SupportNotation formats a support as "<type>@<position>"
func SupportNotation(s Support) string {
	return fmt.Sprintf("%s@%s", strings.ToLower(string(s.Type)), formatNumber(s.Position))
}

func splitDirection(s string) (float64, Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	suffix := ""
	for _, d := range []string{"ccw", "acw", "cw"} {
		if strings.HasSuffix(s, d) {
			suffix = d
			s = strings.TrimSuffix(s, d)
			break
		}
	}
	dir, err := ParseDirection(suffix)
	if err != nil {
		return 0, "", err
	}
	mag, err := parseNumber(s)
	if err != nil {
		return 0, "", err
	}
	return mag, dir, nil
}

// parseSpan reads "<start>-<end>". A leading sign belongs to start and a
// sign after an exponent marker belongs to its number.
func parseSpan(s string) (start, end float64, err error) {
	s = strings.TrimSpace(s)
	i := -1
	for j := 1; j < len(s); j++ {
		if s[j] == '-' && s[j-1] != 'e' && s[j-1] != 'E' {
			i = j
			break
		}
	}
	if i < 0 {
		return 0, 0, fmt.Errorf("span %q: expected <start>-<end>", s)
	}
	if start, err = parseNumber(s[:i]); err != nil {
		return 0, 0, err
	}
	if end, err = parseNumber(s[i+1:]); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", strings.TrimSpace(s))
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
