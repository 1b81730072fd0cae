package pkg

import (
	"github.com/autovibez/release-tools/pkg/assets/release"
)

// BuildReleaseAssets packages every asset set in the built-in catalog into
// outputDir.
func BuildReleaseAssets(outputDir string) ([]release.Artifact, error) {
	return release.BuildWithLogLevel(release.BuildOptions{OutputDir: outputDir}, "")
}

// BuildReleaseAssetsWithOptions packages every asset set with full control
// over catalog, mirrors, and log level.
func BuildReleaseAssetsWithOptions(opts release.BuildOptions, logLevel string) ([]release.Artifact, error) {
	return release.BuildWithLogLevel(opts, logLevel)
}
