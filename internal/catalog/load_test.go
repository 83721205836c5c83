package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
cities:
  - id: austin
    name: Austin
    description: Live music capital
    timezone: America/Chicago
events:
  - id: acl
    title: City Limits
    description: Two weekends of music
    date: 2025-10-03
    venue: Zilker Park
    location: Austin, TX
    price: 150
    category: Festivals
    cityId: austin
  - id: open-mic
    title: Open Mic
    description: Bring a guitar
    date: "2025-06-12"
    venue: Cactus Cafe
    location: Austin, TX
    price: "$5 - $10"
    category: Concerts
    cityId: austin
    tags: [acoustic]
`

func TestLoadYAML(t *testing.T) {
	c, err := Load(strings.NewReader(yamlCatalog), FormatYAML)
	require.NoError(t, err)

	acl, ok := c.Event("acl")
	require.True(t, ok)
	assert.Equal(t, "2025-10-03", acl.Date.String())
	assert.Equal(t, PriceFixed, acl.Price.Kind())
	assert.Equal(t, 150.0, acl.Price.Amount())

	mic, ok := c.Event("open-mic")
	require.True(t, ok)
	assert.Equal(t, Range("$5 - $10"), mic.Price)
	assert.Equal(t, []string{"acoustic"}, mic.Tags)
}

func TestLoadJSONRoundTrip(t *testing.T) {
	c := defaultCatalogT(t)

	raw, err := json.Marshal(map[string]any{"cities": c.Cities(), "events": c.Events()})
	require.NoError(t, err)

	again, err := Load(strings.NewReader(string(raw)), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, c.Events(), again.Events())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		format  Format
		wantErr error
	}{
		{name: "unknown field", body: `{"cities": [], "events": [], "venues": []}`, format: FormatJSON},
		{name: "bad date", body: `{"cities": [{"id": "x"}], "events": [{"id": "a", "date": "June 1", "cityId": "x"}]}`, format: FormatJSON},
		{name: "bad price", body: `{"cities": [{"id": "x"}], "events": [{"id": "a", "date": "2025-06-01", "cityId": "x", "price": true}]}`, format: FormatJSON},
		{name: "unknown city", body: `{"cities": [], "events": [{"id": "a", "date": "2025-06-01", "cityId": "x"}]}`, format: FormatJSON, wantErr: ErrUnknownCity},
		{name: "yaml unknown field", body: "cities: []\nshows: []\n", format: FormatYAML},
		{name: "unsupported format", body: `{}`, format: Format("toml")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.body), tc.format)
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Events(), 2)

	_, err = LoadFile(filepath.Join(dir, "catalog.txt"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
