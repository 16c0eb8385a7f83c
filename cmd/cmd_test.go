package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pauladam94/Stars-Gapa/config"
	"github.com/pauladam94/Stars-Gapa/game"
)

func TestWriteCardsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCards(&buf, game.DefaultCatalog(), "text"))

	catalog, err := game.LoadCatalog(&buf)
	require.NoError(t, err)
	assert.Equal(t, game.DefaultCatalog().Len(), catalog.Len())
	for _, e := range catalog.Entries() {
		want, err := game.DefaultCatalog().Get(e.Card.Name())
		require.NoError(t, err)
		assert.Equal(t, want.String(), e.Card.String())
	}
}

func TestWriteCardsYaml(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCards(&buf, game.DefaultCatalog(), "yaml"))

	var entries []cardEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, game.DefaultCatalog().Len())
	assert.Equal(t, "Viper", entries[0].Name)
	assert.Equal(t, 0, entries[0].Copies)
	assert.Equal(t, []string{"gain 1 attack"}, entries[0].Abilities)

	assert.Error(t, writeCards(&buf, game.DefaultCatalog(), "xml"))
}

func TestImportAndLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cards.txt")
	require.NoError(t, os.WriteFile(file, []byte(`
Scout {0} ship copies 0
gain 1 currency.

Viper {0} ship copies 0
gain 1 attack.

Explorer {2} ship copies 0
gain 2 currency.

Cutter {2} ship [trade] copies 12
gain 2 currency, gain 4 life.
`), 0o644))
	dbPath := filepath.Join(dir, "cards.db")

	n, err := importCatalog(context.Background(), file, dbPath)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	cfg := &config.Config{Database: dbPath}
	catalog, err := loadCatalog(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, catalog.Len())

	cfg = &config.Config{Catalog: file}
	catalog, err = loadCatalog(context.Background(), cfg)
	require.NoError(t, err)
	cutter, err := catalog.Get("cutter")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), cutter.Price())

	catalog, err = loadCatalog(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, game.DefaultCatalog().Len(), catalog.Len())
}

func TestLoadCatalogEmptyDatabase(t *testing.T) {
	cfg := &config.Config{Database: filepath.Join(t.TempDir(), "empty.db")}
	_, err := loadCatalog(context.Background(), cfg)
	assert.Error(t, err)
}

func TestFindAndRemoveCard(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := filepath.Join(dir, "cards.txt")
	require.NoError(t, os.WriteFile(file, []byte(`
Scout {0} ship copies 0
gain 1 currency.

Cutter {2} ship [trade] copies 12
gain 2 currency, gain 4 life.
`), 0o644))
	dbPath := filepath.Join(dir, "cards.db")
	_, err := importCatalog(ctx, file, dbPath)
	require.NoError(t, err)

	cfg := &config.Config{Database: dbPath}
	text, err := findCard(ctx, cfg, "cutter")
	require.NoError(t, err)
	assert.Contains(t, text, "gain 2 currency, gain 4 life.")

	require.NoError(t, removeCard(ctx, dbPath, "CUTTER"))
	_, err = findCard(ctx, cfg, "Cutter")
	assert.ErrorIs(t, err, game.ErrUnknownCard)
	assert.ErrorIs(t, removeCard(ctx, dbPath, "Cutter"), game.ErrUnknownCard)

	text, err = findCard(ctx, &config.Config{}, "explorer")
	require.NoError(t, err)
	assert.Contains(t, text, "Explorer {2} ship")
}
