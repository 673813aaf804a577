// Package semantic implements deep, order-aware structural comparison of
// JSON-like values under the cap-table normalization policy: undefined-like
// equivalence, numeric-string canonicalization, and ignored/deprecated field
// exclusion. The comparator never fails on well-formed input; every shape it
// cannot reconcile degrades to not-equal plus a recorded difference.
package semantic

import (
	"fmt"
	"reflect"
	"sort"
)

// Difference describes one divergence between the two compared values, for
// diagnostics only. The boolean comparison outcome never depends on how
// differences are rendered.
type Difference struct {
	// Path is the dotted/bracketed field path, rooted at "$".
	Path string

	// Description is a human-readable account of the divergence.
	Description string
}

// String returns the difference as "path: description".
func (d Difference) String() string {
	return d.Path + ": " + d.Description
}

// Result is the outcome of a comparison.
type Result struct {
	Equal       bool
	Differences []Difference
}

// Compare deeply compares a desired value against an actual value and
// returns both the boolean outcome and the field-path difference trail.
func Compare(desired, actual any, opts ...Option) Result {
	o := newOptions(opts...)
	var diffs []Difference
	equal := compareValues("$", desired, actual, o, &diffs)
	return Result{Equal: equal, Differences: diffs}
}

// Equal reports whether two values are semantically equal without collecting
// differences. Prefer this on hot paths; it short-circuits on the first
// divergence.
func Equal(desired, actual any, opts ...Option) bool {
	return compareValues("$", desired, actual, newOptions(opts...), nil)
}

// compareValues walks both values in lock-step. When diffs is nil it
// short-circuits on the first divergence; otherwise it records every
// divergence it finds and returns the aggregate outcome.
func compareValues(path string, desired, actual any, o *options, diffs *[]Difference) bool {
	desiredEmpty := undefinedLike(desired)
	actualEmpty := undefinedLike(actual)
	if desiredEmpty && actualEmpty {
		return true
	}
	if desiredEmpty != actualEmpty {
		side := "desired"
		if actualEmpty {
			side = "actual"
		}
		record(diffs, path, fmt.Sprintf("only one side is set (%s side is empty)", side))
		return false
	}

	switch d := desired.(type) {
	case map[string]any:
		a, ok := actual.(map[string]any)
		if !ok {
			record(diffs, path, fmt.Sprintf("shape mismatch: object vs %s", shapeOf(actual)))
			return false
		}
		return compareMaps(path, d, a, o, diffs)
	case []any:
		a, ok := actual.([]any)
		if !ok {
			record(diffs, path, fmt.Sprintf("shape mismatch: array vs %s", shapeOf(actual)))
			return false
		}
		return compareSlices(path, d, a, o, diffs)
	default:
		switch actual.(type) {
		case map[string]any, []any:
			record(diffs, path, fmt.Sprintf("shape mismatch: %s vs %s", shapeOf(desired), shapeOf(actual)))
			return false
		}
		return comparePrimitives(path, desired, actual, diffs)
	}
}

// compareMaps compares two objects over the union of their non-excluded keys.
func compareMaps(path string, desired, actual map[string]any, o *options, diffs *[]Difference) bool {
	keys := make([]string, 0, len(desired)+len(actual))
	seen := make(map[string]bool, len(desired)+len(actual))
	for key := range desired {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	for key := range actual {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	equal := true
	for _, key := range keys {
		if o.excluded(key) {
			continue
		}
		if !compareValues(path+"."+key, desired[key], actual[key], o, diffs) {
			equal = false
			if diffs == nil {
				return false
			}
		}
	}
	return equal
}

// compareSlices compares two arrays positionally. On a length mismatch both
// sides are first stripped of undefined-like elements, so a source that
// omits empty trailing entries matches one that includes them.
func compareSlices(path string, desired, actual []any, o *options, diffs *[]Difference) bool {
	if len(desired) != len(actual) {
		desired = stripUndefinedLike(desired)
		actual = stripUndefinedLike(actual)
		if len(desired) != len(actual) {
			record(diffs, path, fmt.Sprintf("length mismatch (%d vs %d)", len(desired), len(actual)))
			return false
		}
	}

	equal := true
	for i := range desired {
		if !compareValues(fmt.Sprintf("%s[%d]", path, i), desired[i], actual[i], o, diffs) {
			equal = false
			if diffs == nil {
				return false
			}
		}
	}
	return equal
}

// comparePrimitives compares two primitive values after canonicalization.
func comparePrimitives(path string, desired, actual any, diffs *[]Difference) bool {
	desiredKind, desiredNorm := normalizePrimitive(desired)
	actualKind, actualNorm := normalizePrimitive(actual)

	if desiredKind == kindOther && actualKind == kindOther {
		if reflect.DeepEqual(desired, actual) {
			return true
		}
		record(diffs, path, fmt.Sprintf("values differ (%v vs %v)", desired, actual))
		return false
	}
	if desiredKind != actualKind {
		record(diffs, path, fmt.Sprintf("primitive type mismatch (%v vs %v)", desired, actual))
		return false
	}
	if desiredNorm != actualNorm {
		record(diffs, path, fmt.Sprintf("values differ (%v vs %v)", desired, actual))
		return false
	}
	return true
}

// stripUndefinedLike removes undefined-like elements from a slice.
func stripUndefinedLike(items []any) []any {
	kept := make([]any, 0, len(items))
	for _, item := range items {
		if !undefinedLike(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// shapeOf names a value's shape for difference descriptions.
func shapeOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return "primitive"
	}
}

// record appends a difference when collection is enabled.
func record(diffs *[]Difference, path, description string) {
	if diffs == nil {
		return
	}
	*diffs = append(*diffs, Difference{Path: path, Description: description})
}
