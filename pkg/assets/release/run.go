package release

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/autovibez/release-tools/pkg/logging"
)

// DefaultOutputDir is where release assets land when no output directory
// is given.
const DefaultOutputDir = "release-assets"

// Artifact records one file produced by a packaging run.
type Artifact struct {
	Name string
	Path string
	Size int64
}

// BuildOptions controls a packaging run.
type BuildOptions struct {
	OutputDir   string // defaults to DefaultOutputDir
	CatalogPath string // optional catalog override; empty uses DefaultCatalog
	Tarballs    bool   // also write .tar.gz / .tar.bz2 mirrors
}

// BuildAll runs the full packaging sequence: every preset set, every
// texture set, every combined set, the installation guide, and the
// checksum sidecar. It returns a record of every artifact written.
func BuildAll(logger hclog.Logger, opts BuildOptions) ([]Artifact, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}

	catalog := DefaultCatalog()
	if opts.CatalogPath != "" {
		var err error
		catalog, err = LoadCatalog(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded catalog override", "path", opts.CatalogPath)
	}

	packager, err := NewPackager(opts.OutputDir, logger)
	if err != nil {
		return nil, err
	}

	var archives []string

	logger.Info("📦 Creating preset packages...", "count", len(catalog.Presets))
	for _, set := range catalog.Presets {
		path, err := packager.CreatePresetPackage(set.Name, set.SourceURL, set.Description)
		if err != nil {
			return nil, fmt.Errorf("preset package %s: %w", set.Name, err)
		}
		archives = append(archives, path)
	}

	logger.Info("🖼️ Creating texture packages...", "count", len(catalog.Textures))
	for _, set := range catalog.Textures {
		path, err := packager.CreateTexturePackage(set.Name, set.SourceURL, set.Description)
		if err != nil {
			return nil, fmt.Errorf("texture package %s: %w", set.Name, err)
		}
		archives = append(archives, path)
	}

	logger.Info("📦 Creating combined packages...", "count", len(catalog.Combined))
	for _, set := range catalog.Combined {
		path, err := packager.CreateCombinedPackage(set.Packages, set.Kind, set.Description)
		if err != nil {
			return nil, fmt.Errorf("combined package %s: %w", set.Kind, err)
		}
		archives = append(archives, path)
	}

	if opts.Tarballs {
		var mirrors []string
		for _, zipPath := range archives {
			m, err := packager.WriteTarMirrors(zipPath)
			if err != nil {
				return nil, err
			}
			mirrors = append(mirrors, m...)
		}
		archives = append(archives, mirrors...)
	}

	if _, err := packager.WriteChecksumFile(archives); err != nil {
		return nil, err
	}

	guidePath, err := packager.CreateInstallationGuide()
	if err != nil {
		return nil, err
	}

	paths := append(archives, guidePath)
	artifacts := make([]Artifact, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		artifacts = append(artifacts, Artifact{
			Name: filepath.Base(path),
			Path: path,
			Size: info.Size(),
		})
	}

	logger.Info("✅ Release assets created", "artifacts", len(artifacts), "output", opts.OutputDir)
	return artifacts, nil
}

// BuildWithLogLevel runs the full packaging sequence with explicit log
// level control. The CLI flag wins over AUTOVIBEZ_LOG_LEVEL; JSON output
// and a log file are selected through AUTOVIBEZ_JSON_LOG and
// AUTOVIBEZ_LOG_PATH.
func BuildWithLogLevel(opts BuildOptions, cliLogLevel string) ([]Artifact, error) {
	logLevel := cliLogLevel
	logSource := "CLI --log-level"
	if logLevel == "" {
		logLevel = logging.GetLogLevel()
		logSource = "AUTOVIBEZ_LOG_LEVEL"
	}

	var output io.Writer = os.Stderr
	if logPath := os.Getenv("AUTOVIBEZ_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			output = file
		}
	}

	logger := logging.NewLogger("autovibez-packager", logLevel, output)
	logger.Info("🎵 AutoVibez Release Asset Packager starting...")
	logger.Debug("Log level", "level", logLevel, "source", logSource)

	return BuildAll(logger, opts)
}
