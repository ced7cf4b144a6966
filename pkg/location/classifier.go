// Package location buckets providers into distance tiers relative to a
// request's property.
package location

import (
	"strings"

	"github.com/Ramsey-B/clover/pkg/models"
)

// NoLocationLabel is shown when a provider has no location data at all.
const NoLocationLabel = "No especificada"

// Classify returns the provider's distance tier and display label relative to
// the property. City and region comparisons are exact raw string matches; geo
// names come from the same controlled vocabulary on both sides, unlike
// free-text specialties.
func Classify(provider *models.Provider, property *models.Property) (models.DistanceTier, string) {
	return Tier(provider, property), Label(provider)
}

// Tier applies the precedence rule: same city wins over same region, region
// over other. Empty fields never match.
func Tier(provider *models.Provider, property *models.Property) models.DistanceTier {
	if provider.City != "" && provider.City == property.City {
		return models.DistanceTierSameCity
	}
	if provider.Region != "" && provider.Region == property.Region {
		return models.DistanceTierSameRegion
	}
	return models.DistanceTierOther
}

// Label builds a human-readable location string from whatever fields are
// populated, in decreasing specificity.
func Label(provider *models.Provider) string {
	switch {
	case provider.Address != "" && provider.City != "":
		return strings.TrimSpace(provider.Address) + ", " + strings.TrimSpace(provider.City)
	case provider.City != "":
		return strings.TrimSpace(provider.City)
	case provider.Region != "":
		return strings.TrimSpace(provider.Region)
	case provider.Address != "":
		return strings.TrimSpace(provider.Address)
	default:
		return NoLocationLabel
	}
}
