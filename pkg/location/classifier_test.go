package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/clover/pkg/models"
)

func TestTierSameCity(t *testing.T) {
	provider := &models.Provider{City: "Santiago", Region: "Metropolitana"}
	property := &models.Property{City: "Santiago", Region: "Valparaíso"}

	// City match wins even when the regions differ
	assert.Equal(t, models.DistanceTierSameCity, Tier(provider, property))
}

func TestTierSameRegion(t *testing.T) {
	provider := &models.Provider{City: "Viña del Mar", Region: "Valparaíso"}
	property := &models.Property{City: "Valparaíso", Region: "Valparaíso"}

	assert.Equal(t, models.DistanceTierSameRegion, Tier(provider, property))
}

func TestTierOther(t *testing.T) {
	provider := &models.Provider{City: "Concepción", Region: "Biobío"}
	property := &models.Property{City: "Santiago", Region: "Metropolitana"}

	assert.Equal(t, models.DistanceTierOther, Tier(provider, property))
}

func TestTierEmptyFieldsNeverMatch(t *testing.T) {
	provider := &models.Provider{}
	property := &models.Property{}

	// Two empty cities are not the same city
	assert.Equal(t, models.DistanceTierOther, Tier(provider, property))
}

func TestTierExactRawComparison(t *testing.T) {
	// Geo comparison is literal: casing differences do not match
	provider := &models.Provider{City: "santiago"}
	property := &models.Property{City: "Santiago"}

	assert.Equal(t, models.DistanceTierOther, Tier(provider, property))
}

func TestLabel(t *testing.T) {
	cases := []struct {
		name     string
		provider models.Provider
		expected string
	}{
		{"address and city", models.Provider{Address: "Av. Libertador 123", City: "Santiago"}, "Av. Libertador 123, Santiago"},
		{"city only", models.Provider{City: "Santiago"}, "Santiago"},
		{"region only", models.Provider{Region: "Metropolitana"}, "Metropolitana"},
		{"address only", models.Provider{Address: "Av. Libertador 123"}, "Av. Libertador 123"},
		{"nothing", models.Provider{}, NoLocationLabel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Label(&tc.provider))
		})
	}
}

func TestClassify(t *testing.T) {
	provider := &models.Provider{City: "Santiago", Address: "Calle Falsa 123"}
	property := &models.Property{City: "Santiago"}

	tier, label := Classify(provider, property)
	assert.Equal(t, models.DistanceTierSameCity, tier)
	assert.Equal(t, "Calle Falsa 123, Santiago", label)
}
