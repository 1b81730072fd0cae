// Package release builds the AutoVibez release asset packages: ZIP
// archives of preset and texture metadata plus the installation guide that
// ships next to them.
package release

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	asseterrors "github.com/autovibez/release-tools/pkg/assets/errors"
)

// Packager writes release asset packages into a single output directory.
type Packager struct {
	OutputDir string

	// Clock supplies the timestamp embedded in metadata and archive
	// entries. Defaults to time.Now; pinned in tests for reproducible
	// archives.
	Clock func() time.Time

	logger hclog.Logger
}

// NewPackager creates a Packager rooted at outputDir, creating the
// directory if it does not exist.
func NewPackager(outputDir string, logger hclog.Logger) (*Packager, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Packager{
		OutputDir: outputDir,
		Clock:     time.Now,
		logger:    logger,
	}, nil
}

func (p *Packager) created() string {
	return p.Clock().UTC().Format(time.RFC3339)
}

// CreatePresetPackage builds autovibez-presets-<name>.zip and returns its
// path.
func (p *Packager) CreatePresetPackage(name, sourceURL, description string) (string, error) {
	return p.createLeafPackage(KindPresets, "readme_presets.md.tmpl", name, sourceURL, description)
}

// CreateTexturePackage builds autovibez-textures-<name>.zip and returns
// its path.
func (p *Packager) CreateTexturePackage(name, sourceURL, description string) (string, error) {
	return p.createLeafPackage(KindTextures, "readme_textures.md.tmpl", name, sourceURL, description)
}

func (p *Packager) createLeafPackage(kind, tmpl, name, sourceURL, description string) (string, error) {
	if name == "" {
		return "", asseterrors.ErrEmptyPackageName
	}

	created := p.created()
	title := fmt.Sprintf("AutoVibez %s - %s", displayTitle(kind), displayTitle(name))

	meta := Metadata{
		Name:        title,
		Description: description,
		Type:        kind,
		SourceURL:   sourceURL,
		Created:     created,
		Version:     PackageVersion,
	}
	metaJSON, err := meta.encode()
	if err != nil {
		return "", err
	}

	readme, err := renderReadme(tmpl, readmeData{
		Title:       title,
		Description: description,
		Dirs:        AssetDirs(kind),
		SourceURL:   sourceURL,
		Created:     created,
	})
	if err != nil {
		return "", err
	}

	path := filepath.Join(p.OutputDir, fmt.Sprintf("autovibez-%s-%s.zip", kind, name))
	entries := []Entry{
		{Name: MetadataEntry, Data: metaJSON},
		{Name: ReadmeEntry, Data: readme},
	}
	if err := writeZip(path, p.Clock().UTC(), entries); err != nil {
		return "", err
	}

	p.logger.Info("📦 Created package", "kind", kind, "name", name, "path", path)
	return path, nil
}

// CreateCombinedPackage builds autovibez-<kind>-complete.zip from the
// display names of its constituent packages and returns its path.
func (p *Packager) CreateCombinedPackage(packages []string, kind, description string) (string, error) {
	if kind == "" {
		return "", asseterrors.ErrEmptyPackageName
	}
	if len(packages) == 0 {
		return "", asseterrors.ErrNoPackages
	}

	created := p.created()
	title := fmt.Sprintf("AutoVibez %s - Complete", displayTitle(kind))

	meta := Metadata{
		Name:        title,
		Description: description,
		Type:        kind,
		Packages:    packages,
		Created:     created,
		Version:     PackageVersion,
	}
	metaJSON, err := meta.encode()
	if err != nil {
		return "", err
	}

	readme, err := renderReadme("readme_combined.md.tmpl", readmeData{
		Title:       title + " Package",
		Description: description,
		Kind:        kind,
		Dirs:        AssetDirs(kind),
		Created:     created,
		Packages:    packages,
	})
	if err != nil {
		return "", err
	}

	path := filepath.Join(p.OutputDir, fmt.Sprintf("autovibez-%s-complete.zip", kind))
	entries := []Entry{
		{Name: MetadataEntry, Data: metaJSON},
		{Name: ReadmeEntry, Data: readme},
	}
	if err := writeZip(path, p.Clock().UTC(), entries); err != nil {
		return "", err
	}

	p.logger.Info("📦 Created combined package", "kind", kind, "packages", len(packages), "path", path)
	return path, nil
}
