package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
		ok    bool
	}{
		{"float64", float64(1.5), 1.5, true},
		{"int", 42, 42, true},
		{"int64", int64(-7), -7, true},
		{"uint64", uint64(9), 9, true},
		{"numeric string", "3.25", 3.25, true},
		{"padded string", "  10  ", 10, true},
		{"word", "ten", 0, false},
		{"blank", "", 0, false},
		{"bool", true, 0, false},
		{"nan string", "NaN", 0, false},
		{"inf string", "+Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numericValue(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatDecimalPinsPrecision(t *testing.T) {
	assert.Equal(t, "100.0000000000", formatDecimal(100))
	assert.Equal(t, "0.5000000000", formatDecimal(0.5))
	assert.Equal(t, "-1.2500000000", formatDecimal(-1.25))
}

func TestNormalizePrimitiveKinds(t *testing.T) {
	kind, norm := normalizePrimitive("100.00")
	assert.Equal(t, kindNumber, kind)
	assert.Equal(t, "100.0000000000", norm)

	kind, norm = normalizePrimitive("  common  ")
	assert.Equal(t, kindString, kind)
	assert.Equal(t, "common", norm)

	kind, norm = normalizePrimitive(false)
	assert.Equal(t, kindBool, kind)
	assert.Equal(t, "false", norm)

	kind, _ = normalizePrimitive(struct{}{})
	assert.Equal(t, kindOther, kind)
}

func TestUndefinedLike(t *testing.T) {
	assert.True(t, undefinedLike(nil))
	assert.True(t, undefinedLike("  "))
	assert.True(t, undefinedLike([]any{}))
	assert.True(t, undefinedLike(map[string]any{"a": []any{nil}}))
	assert.True(t, undefinedLike(map[string]any{"starting": "0", "ending": 0}))

	assert.False(t, undefinedLike(0), "numeric zero is information, not absence")
	assert.False(t, undefinedLike(false), "false is information, not absence")
	assert.False(t, undefinedLike("0"))
	assert.False(t, undefinedLike([]any{0}))
}
