// Tests for the full packaging sequence
package release

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/autovibez/release-tools/pkg/assets/compress"
)

func testLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "run_test",
		Level:  hclog.Trace,
		Output: io.Discard,
	})
}

func TestBuildAllDefaultCatalog(t *testing.T) {
	outputDir := t.TempDir()

	artifacts, err := BuildAll(testLogger(), BuildOptions{OutputDir: outputDir})
	require.NoError(t, err)

	// 2 preset + 1 texture + 2 combined packages, plus the guide
	require.Len(t, artifacts, 6)

	names := make(map[string]bool, len(artifacts))
	for _, a := range artifacts {
		require.Greater(t, a.Size, int64(0))
		names[a.Name] = true
	}

	for _, expected := range []string{
		"autovibez-presets-cream-of-the-crop.zip",
		"autovibez-presets-milkdrop-original.zip",
		"autovibez-textures-milkdrop-textures.zip",
		"autovibez-presets-complete.zip",
		"autovibez-textures-complete.zip",
		GuideName,
	} {
		require.True(t, names[expected], "missing artifact %s", expected)
	}
}

func TestBuildAllChecksumSidecar(t *testing.T) {
	outputDir := t.TempDir()

	_, err := BuildAll(testLogger(), BuildOptions{OutputDir: outputDir})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, ChecksumsName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)

	for _, line := range lines {
		sum, name, ok := strings.Cut(line, "  ")
		require.True(t, ok, "malformed sidecar line: %q", line)

		algo, _, err := ParseChecksum(sum)
		require.NoError(t, err)
		require.Equal(t, ChecksumSHA256, algo)

		content, err := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, err)
		require.NoError(t, VerifyChecksum(content, sum))
	}
}

func TestBuildAllTarballMirrors(t *testing.T) {
	outputDir := t.TempDir()

	artifacts, err := BuildAll(testLogger(), BuildOptions{OutputDir: outputDir, Tarballs: true})
	require.NoError(t, err)

	// 5 packages, each with .tar.gz and .tar.bz2 mirrors, plus the guide
	require.Len(t, artifacts, 16)

	mirrorPath := filepath.Join(outputDir, "autovibez-presets-complete.tar.gz")
	zipEntries := readArchive(t, filepath.Join(outputDir, "autovibez-presets-complete.zip"))

	f, err := os.Open(mirrorPath)
	require.NoError(t, err)
	defer f.Close()

	cr, err := compress.NewReader(f, compress.Gzip)
	require.NoError(t, err)
	defer cr.Close()

	tr := tar.NewReader(cr)
	tarEntries := make(map[string][]byte)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		tarEntries[hdr.Name] = data
	}

	require.Equal(t, zipEntries, tarEntries, "tar mirror must carry exactly the ZIP's entries")
}

func TestBuildAllCatalogOverride(t *testing.T) {
	outputDir := t.TempDir()

	catalogPath := filepath.Join(t.TempDir(), "catalog.json")
	catalogJSON := `{
  "presets": [
    {
      "name": "test-pack",
      "source_url": "https://example.com/test-pack",
      "description": "A test preset pack"
    }
  ]
}`
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogJSON), 0o644))

	artifacts, err := BuildAll(testLogger(), BuildOptions{
		OutputDir:   outputDir,
		CatalogPath: catalogPath,
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	require.Equal(t, "autovibez-presets-test-pack.zip", artifacts[0].Name)
	require.Equal(t, GuideName, artifacts[1].Name)
}

func TestBuildAllBadCatalogPath(t *testing.T) {
	_, err := BuildAll(testLogger(), BuildOptions{
		OutputDir:   t.TempDir(),
		CatalogPath: filepath.Join(t.TempDir(), "missing.json"),
	})
	require.Error(t, err)
}
