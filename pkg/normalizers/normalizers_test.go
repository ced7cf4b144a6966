package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Plomería", "plomeria"},
		{"PLOMERIA", "plomeria"},
		{"  plomeria  ", "plomeria"},
		{"Jardinería", "jardineria"},
		{"Albañilería", "albanileria"},
		{"Electricidad", "electricidad"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Fold(tc.input), "Fold(%q)", tc.input)
	}
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{"Plomería", "GASFITERÍA", "  Aire Acondicionado  ", "ñandú"}
	for _, input := range inputs {
		once := Fold(input)
		assert.Equal(t, once, Fold(once), "Fold must be idempotent for %q", input)
	}
}

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "plomeria", StripDiacritics("plomería"))
	assert.Equal(t, "nandu", StripDiacritics("ñandú"))
	assert.Equal(t, "unchanged", StripDiacritics("unchanged"))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("a   b\t\tc"))
	assert.Equal(t, "a b", CollapseWhitespace("  a \n b  "))
}

func TestAlphanumeric(t *testing.T) {
	assert.Equal(t, "abc123", Alphanumeric("a-b c!123"))
}

func TestRegistry(t *testing.T) {
	fn, ok := Get("fold")
	assert.True(t, ok)
	assert.Equal(t, "plomeria", fn("Plomería"))

	_, ok = Get("nonexistent")
	assert.False(t, ok)

	// Unknown normalizer names pass values through untouched
	assert.Equal(t, "Value", Apply("Value", "nonexistent"))
}

func TestApplyChain(t *testing.T) {
	result := ApplyChain("  Aire   Acondicionado  ", "collapse_whitespace", "fold")
	assert.Equal(t, "aire acondicionado", result)
}
