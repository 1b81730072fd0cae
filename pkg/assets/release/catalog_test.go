package release

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	asseterrors "github.com/autovibez/release-tools/pkg/assets/errors"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog.Presets, 2)
	require.Len(t, catalog.Textures, 1)
	require.Len(t, catalog.Combined, 2)

	require.Equal(t, "cream-of-the-crop", catalog.Presets[0].Name)
	require.Equal(t, "milkdrop-original", catalog.Presets[1].Name)
	require.Equal(t, "milkdrop-textures", catalog.Textures[0].Name)

	for _, set := range append(catalog.Presets, catalog.Textures...) {
		require.NotEmpty(t, set.SourceURL)
		require.NotEmpty(t, set.Description)
	}
	for _, set := range catalog.Combined {
		require.NotEmpty(t, set.Packages)
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "textures": [
    {"name": "extra-textures", "source_url": "https://example.com", "description": "More textures"}
  ]
}`), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Empty(t, catalog.Presets)
	require.Len(t, catalog.Textures, 1)
	require.Equal(t, "extra-textures", catalog.Textures[0].Name)
}

func TestLoadCatalogErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadCatalog(path)
		require.Error(t, err)
	})

	t.Run("empty catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		_, err := LoadCatalog(path)
		require.ErrorIs(t, err, asseterrors.ErrEmptyCatalog)
	})
}
