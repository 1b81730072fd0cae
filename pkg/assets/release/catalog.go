package release

import (
	"encoding/json"
	"fmt"
	"os"

	asseterrors "github.com/autovibez/release-tools/pkg/assets/errors"
)

// AssetSet names one upstream collection of presets or textures.
type AssetSet struct {
	Name        string `json:"name"`
	SourceURL   string `json:"source_url"`
	Description string `json:"description"`
}

// CombinedSet names one combined collection built from the display names
// of other packages.
type CombinedSet struct {
	Kind        string   `json:"kind"`
	Packages    []string `json:"packages"`
	Description string   `json:"description"`
}

// Catalog is the full list of asset sets a packaging run produces.
type Catalog struct {
	Presets  []AssetSet    `json:"presets"`
	Textures []AssetSet    `json:"textures"`
	Combined []CombinedSet `json:"combined"`
}

// DefaultCatalog returns the built-in release catalog, mirroring the
// packages shipped with AutoVibez releases.
func DefaultCatalog() Catalog {
	return Catalog{
		Presets: []AssetSet{
			{
				Name:        "cream-of-the-crop",
				SourceURL:   "https://github.com/projectM-visualizer/presets-cream-of-the-crop",
				Description: "~10,000 curated presets from the ProjectM community",
			},
			{
				Name:        "milkdrop-original",
				SourceURL:   "https://github.com/projectM-visualizer/presets-milkdrop-original",
				Description: "Classic Milkdrop presets from the original Winamp visualizer",
			},
		},
		Textures: []AssetSet{
			{
				Name:        "milkdrop-textures",
				SourceURL:   "https://github.com/projectM-visualizer/presets-milkdrop-texture-pack",
				Description: "Essential textures for Milkdrop-style visual effects",
			},
		},
		Combined: []CombinedSet{
			{
				Kind:        KindPresets,
				Packages:    []string{"Cream of the Crop", "Milkdrop Original"},
				Description: "Complete preset collection with all available presets",
			},
			{
				Kind:        KindTextures,
				Packages:    []string{"Milkdrop Textures"},
				Description: "Complete texture collection for all visual effects",
			},
		},
	}
}

// LoadCatalog reads a catalog override from a JSON file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}

	if len(catalog.Presets) == 0 && len(catalog.Textures) == 0 && len(catalog.Combined) == 0 {
		return Catalog{}, asseterrors.ErrEmptyCatalog
	}

	return catalog, nil
}
