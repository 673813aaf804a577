package captable

import (
	"strings"
	"unicode"
)

// Label returns a pluralization-aware, human-readable label for an entity
// type, for operator-facing diagnostics only. Labels carry no identity
// semantics and must never feed equality or matching decisions.
func Label(t EntityType, count int) string {
	words := splitCamel(string(Normalize(t)))
	if len(words) == 0 {
		return string(t)
	}
	if count != 1 {
		words[len(words)-1] = pluralize(words[len(words)-1])
	}
	return strings.Join(words, " ")
}

// Label returns the human-readable label for the tag. See the package-level
// Label function.
func (t EntityType) Label(count int) string {
	return Label(t, count)
}

// splitCamel splits a camelCase tag into lowercase words.
func splitCamel(s string) []string {
	var words []string
	var current strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
		current.WriteRune(unicode.ToLower(r))
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}

// pluralize applies basic English pluralization rules.
func pluralize(word string) string {
	switch {
	case strings.HasSuffix(word, "y") && !strings.HasSuffix(word, "ay") &&
		!strings.HasSuffix(word, "ey") && !strings.HasSuffix(word, "oy") && !strings.HasSuffix(word, "uy"):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(word, "s") || strings.HasSuffix(word, "x") ||
		strings.HasSuffix(word, "ch") || strings.HasSuffix(word, "sh"):
		return word + "es"
	default:
		return word + "s"
	}
}
