package specialties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestParseNilSecondary(t *testing.T) {
	assert.Equal(t, []string{"Plomería"}, Parse("Plomería", nil))
}

func TestParseEmptySecondary(t *testing.T) {
	assert.Equal(t, []string{"Plomería"}, Parse("Plomería", strptr("")))
	assert.Equal(t, []string{"Plomería"}, Parse("Plomería", strptr("   ")))
}

func TestParseJSONArray(t *testing.T) {
	raw := strptr(`["Gasfitería", "Electricidad"]`)
	assert.Equal(t, []string{"Plomería", "Gasfitería", "Electricidad"}, Parse("Plomería", raw))
}

func TestParsePlainString(t *testing.T) {
	assert.Equal(t, []string{"Plomería", "Gasfitería"}, Parse("Plomería", strptr("Gasfitería")))
}

func TestParseMalformedArray(t *testing.T) {
	// Broken JSON degrades to a single literal entry
	raw := strptr(`["Gasfitería",`)
	assert.Equal(t, []string{"Plomería", `["Gasfitería",`}, Parse("Plomería", raw))
}

func TestParseMixedArraySalvagesStrings(t *testing.T) {
	raw := strptr(`["Gasfitería", 42, null, "Electricidad"]`)
	assert.Equal(t, []string{"Plomería", "Gasfitería", "Electricidad"}, Parse("Plomería", raw))
}

func TestParseQuotedString(t *testing.T) {
	assert.Equal(t, []string{"Plomería", "Gasfitería"}, Parse("Plomería", strptr(`"Gasfitería"`)))
}

func TestParsePrimaryAlwaysFirst(t *testing.T) {
	raw := strptr(`["Electricidad", "Plomería"]`)
	parsed := Parse("Plomería", raw)
	require.NotEmpty(t, parsed)
	assert.Equal(t, "Plomería", parsed[0])
	assert.Equal(t, []string{"Plomería", "Electricidad"}, parsed)
}

func TestParseDeduplicatesByFoldedForm(t *testing.T) {
	// "plomeria" and "Plomería" fold to the same key; first spelling wins
	raw := strptr(`["plomeria", "PLOMERÍA", "Electricidad"]`)
	assert.Equal(t, []string{"Plomería", "Electricidad"}, Parse("Plomería", raw))
}

func TestParseEmptyPrimary(t *testing.T) {
	assert.Equal(t, []string{"Electricidad"}, Parse("", strptr(`["Electricidad"]`)))
	assert.Empty(t, Parse("", nil))
}

func TestParseIdempotent(t *testing.T) {
	raw := strptr(`["Gasfitería", "Electricidad", "plomería"]`)
	first := Parse("Plomería", raw)

	// Feed the output back through: primary is first[0], rest re-encoded
	second := Parse(first[0], strptr(`["`+first[1]+`", "`+first[2]+`"]`))
	assert.Equal(t, first, second)
}

func TestFoldPreservesOrder(t *testing.T) {
	assert.Equal(t, []string{"plomeria", "gasfiteria"}, Fold([]string{"Plomería", "Gasfitería"}))
}
