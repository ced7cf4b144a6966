package categories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynonymsForKnownCategory(t *testing.T) {
	table := Default()

	synonyms := table.SynonymsFor("plumbing")
	assert.Contains(t, synonyms, "plumbing")
	assert.Contains(t, synonyms, "plomeria")
	assert.Contains(t, synonyms, "fontaneria")
	assert.Contains(t, synonyms, "gasfiteria")
}

func TestSynonymsForIsFoldedOnLookup(t *testing.T) {
	table := Default()

	// Accented and cased category names resolve to the same bucket
	assert.Equal(t, table.SynonymsFor("plumbing"), table.SynonymsFor("  PLUMBING  "))

	gardening := table.SynonymsFor("gardening")
	assert.Contains(t, gardening, "jardineria")
}

func TestSynonymsForUnknownCategory(t *testing.T) {
	table := Default()

	// Unknown categories degrade to a singleton of the folded key
	assert.Equal(t, []string{"techado"}, table.SynonymsFor("Techado"))
	assert.Equal(t, []string{"soldadura"}, table.SynonymsFor("  Soldadura "))
}

func TestNewFoldsSynonymsAtConstruction(t *testing.T) {
	table := New(map[string][]string{
		"Pintura": {"Pintor", "EMPAPELADO", "pintura"},
	})

	synonyms := table.SynonymsFor("pintura")
	assert.Equal(t, []string{"pintura", "pintor", "empapelado"}, synonyms)
}

func TestCategories(t *testing.T) {
	table := Default()
	keys := table.Categories()
	assert.Len(t, keys, 11)
	assert.Contains(t, keys, "plumbing")
	assert.Contains(t, keys, "hvac")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	content := `{"roofing": ["techado", "techumbre"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"roofing", "techado", "techumbre"}, table.SynonymsFor("roofing"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
