package release

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

const (
	// PackageVersion is the fixed version string stamped into every
	// package's metadata.
	PackageVersion = "1.0.0"

	// Archive entry names
	MetadataEntry = "metadata.json"
	ReadmeEntry   = "README.md"

	// Asset kinds
	KindPresets  = "presets"
	KindTextures = "textures"
)

// Metadata is the package descriptor embedded as metadata.json in every
// release archive. Leaf packages carry SourceURL; combined packages carry
// the display names of their constituent packages instead.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	SourceURL   string   `json:"source_url,omitempty"`
	Packages    []string `json:"packages,omitempty"`
	Created     string   `json:"created"`
	Version     string   `json:"version"`
}

// encode renders the descriptor as indented JSON, matching the layout of
// the original release artifacts.
func (m Metadata) encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	return data, nil
}

// displayTitle upper-cases the first letter of every word so that a set
// name like "cream-of-the-crop" becomes "Cream-Of-The-Crop".
func displayTitle(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}

	return b.String()
}
