// Package specialties turns a provider's raw specialty data into a
// normalized, ordered set of specialty strings.
package specialties

import (
	"encoding/json"
	"strings"

	"github.com/Ramsey-B/clover/pkg/normalizers"
)

// Parse resolves a provider's primary specialty plus its raw secondary
// payload into an ordered, duplicate-free list. secondaryRaw may be nil, a
// plain string, or a serialized JSON array; a malformed payload degrades to
// treating the raw value as a single-element list. The primary specialty is
// always first when not already present, so every provider with a primary
// keeps at least one entry.
//
// Parse is idempotent: feeding its output back in yields the same list.
func Parse(primary string, secondaryRaw *string) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := normalizers.Fold(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	add(primary)

	for _, s := range decodeSecondary(secondaryRaw) {
		add(s)
	}

	return out
}

// decodeSecondary decodes the raw secondary payload. Upstream stores this
// column as free text, so anything that is not a valid JSON string array is
// treated as a single literal entry.
func decodeSecondary(raw *string) []string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}

	if strings.HasPrefix(value, "[") {
		var list []string
		if err := json.Unmarshal([]byte(value), &list); err == nil {
			return list
		}
		// Mixed-type arrays still salvage the string elements
		var mixed []any
		if err := json.Unmarshal([]byte(value), &mixed); err == nil {
			list = list[:0]
			for _, item := range mixed {
				if s, ok := item.(string); ok {
					list = append(list, s)
				}
			}
			return list
		}
		return []string{value}
	}

	if strings.HasPrefix(value, `"`) {
		var single string
		if err := json.Unmarshal([]byte(value), &single); err == nil {
			return []string{single}
		}
	}

	return []string{value}
}

// Fold returns the folded forms of a specialty list, preserving order.
func Fold(specialties []string) []string {
	folded := make([]string, 0, len(specialties))
	for _, s := range specialties {
		folded = append(folded, normalizers.Fold(s))
	}
	return folded
}
