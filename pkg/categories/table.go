// Package categories maps canonical work categories to free-text specialty
// synonyms. The table is authored data: new categories are a config change,
// not a code change.
package categories

import (
	"encoding/json"
	"os"

	"github.com/Ramsey-B/clover/pkg/normalizers"
)

// Table resolves a request category to the set of specialty strings that
// should count as compatible with it. Synonyms are bilingual (English and
// Spanish) because provider specialties are free text in either language.
type Table struct {
	synonyms map[string][]string
}

// New builds a table from authored category data. Keys and synonyms are
// folded once at construction so lookups compare in canonical form.
func New(data map[string][]string) *Table {
	synonyms := make(map[string][]string, len(data))
	for category, words := range data {
		folded := make([]string, 0, len(words)+1)
		seen := make(map[string]struct{}, len(words)+1)

		key := normalizers.Fold(category)
		folded = append(folded, key)
		seen[key] = struct{}{}

		for _, w := range words {
			f := normalizers.Fold(w)
			if f == "" {
				continue
			}
			if _, ok := seen[f]; ok {
				continue
			}
			folded = append(folded, f)
			seen[f] = struct{}{}
		}
		synonyms[key] = folded
	}
	return &Table{synonyms: synonyms}
}

// Load reads a category table from a JSON file of the shape
// {"category": ["synonym", ...], ...}.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string][]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return New(data), nil
}

// SynonymsFor returns the folded synonym set for a category. Unknown
// categories degrade to literal matching: the folded category itself is
// returned as a singleton set.
func (t *Table) SynonymsFor(category string) []string {
	key := normalizers.Fold(category)
	if words, ok := t.synonyms[key]; ok {
		return words
	}
	return []string{key}
}

// Categories returns the canonical category keys in the table.
func (t *Table) Categories() []string {
	keys := make([]string, 0, len(t.synonyms))
	for k := range t.synonyms {
		keys = append(keys, k)
	}
	return keys
}

// Default returns the authored category table shipped with the service.
func Default() *Table {
	return New(map[string][]string{
		"general": {
			"general", "mantenimiento", "maintenance", "handyman",
			"reparaciones generales", "general repairs", "mantencion",
		},
		"electrical": {
			"electrical", "electricidad", "electricista", "electrician",
			"instalaciones electricas", "wiring", "iluminacion",
		},
		"plumbing": {
			"plumbing", "plomeria", "fontaneria", "plomero", "fontanero",
			"plumber", "gasfiteria", "gasfiter", "sanitario",
		},
		"structural": {
			"structural", "estructural", "albañileria", "albanileria",
			"construccion", "masonry", "concrete", "obra gruesa",
		},
		"appliance": {
			"appliance", "electrodomesticos", "linea blanca",
			"appliance repair", "refrigeracion", "lavadoras",
		},
		"cleaning": {
			"cleaning", "limpieza", "aseo", "cleaner", "sanitizacion",
			"limpieza profunda",
		},
		"painting": {
			"painting", "pintura", "pintor", "painter", "empapelado",
			"terminaciones",
		},
		"carpentry": {
			"carpentry", "carpinteria", "carpintero", "carpenter",
			"muebles", "woodwork", "puertas y ventanas",
		},
		"hvac": {
			"hvac", "climatizacion", "aire acondicionado", "calefaccion",
			"air conditioning", "heating", "ventilacion",
		},
		"gardening": {
			"gardening", "jardineria", "jardinero", "gardener", "paisajismo",
			"landscaping", "poda",
		},
		"other": {
			"other", "otro", "otros", "miscelaneo", "varios",
		},
	})
}
