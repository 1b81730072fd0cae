package release

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// GuideName is the file name of the installation guide written next to
// the packages.
const GuideName = "INSTALL_ASSETS.md"

//go:embed templates/install_guide.md
var guideContent []byte

// CreateInstallationGuide writes the static installation guide into the
// output directory and returns its path.
func (p *Packager) CreateInstallationGuide() (string, error) {
	path := filepath.Join(p.OutputDir, GuideName)
	if err := os.WriteFile(path, guideContent, 0o644); err != nil {
		return "", fmt.Errorf("writing installation guide: %w", err)
	}

	p.logger.Info("📋 Created installation guide", "path", path)
	return path, nil
}
