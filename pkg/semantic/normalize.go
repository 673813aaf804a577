package semantic

import (
	"math"
	"strconv"
	"strings"
)

// numericPrecision is the number of fractional digits used when
// canonicalizing numeric values for comparison.
const numericPrecision = 10

// rangeStartField and rangeEndField name the numeric pair of the placeholder
// range shape. A range whose pair is all zeros carries no information and
// counts as undefined-like.
const (
	rangeStartField = "starting"
	rangeEndField   = "ending"
)

// undefinedLike reports whether a value is equivalent to "not set": nil, a
// blank string, an empty array or object, an array or object whose every
// element is itself undefined-like, or a zero placeholder range.
func undefinedLike(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		for _, elem := range val {
			if !undefinedLike(elem) {
				return false
			}
		}
		return true
	case map[string]any:
		if isZeroRange(val) {
			return true
		}
		for _, elem := range val {
			if !undefinedLike(elem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// isZeroRange reports whether a map is the placeholder range shape: a
// starting/ending numeric pair both equal to zero, with every other member
// undefined-like.
func isZeroRange(m map[string]any) bool {
	start, ok := m[rangeStartField]
	if !ok {
		return false
	}
	end, ok := m[rangeEndField]
	if !ok {
		return false
	}
	if !isNumericZero(start) || !isNumericZero(end) {
		return false
	}
	for key, v := range m {
		if key == rangeStartField || key == rangeEndField {
			continue
		}
		if !undefinedLike(v) {
			return false
		}
	}
	return true
}

// isNumericZero reports whether a value is a number (or numeric string)
// equal to zero.
func isNumericZero(v any) bool {
	f, ok := numericValue(v)
	return ok && f == 0
}

// numericValue extracts a finite numeric value from a number or a string
// that trims to a parseable finite number.
func numericValue(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// primitiveKind classifies a primitive for lock-step comparison. Values of
// differing kinds never compare equal.
type primitiveKind int

const (
	kindBool primitiveKind = iota
	kindNumber
	kindString
	kindOther
)

// normalizePrimitive canonicalizes a primitive value for comparison.
// Numbers, and strings that trim to parseable finite numbers, normalize to a
// fixed high-precision decimal string so that "100", "100.00" and 100.0
// compare equal. Non-numeric strings are trimmed only.
func normalizePrimitive(v any) (primitiveKind, string) {
	switch val := v.(type) {
	case bool:
		return kindBool, strconv.FormatBool(val)
	case string:
		if f, ok := numericValue(val); ok {
			return kindNumber, formatDecimal(f)
		}
		return kindString, strings.TrimSpace(val)
	default:
		if f, ok := numericValue(v); ok {
			return kindNumber, formatDecimal(f)
		}
		return kindOther, ""
	}
}

// formatDecimal renders a numeric value as a fixed-precision decimal string.
func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', numericPrecision, 64)
}
