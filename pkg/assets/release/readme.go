package release

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

var readmeTemplates = template.Must(template.ParseFS(templateFS,
	"templates/readme_presets.md.tmpl",
	"templates/readme_textures.md.tmpl",
	"templates/readme_combined.md.tmpl",
))

// readmeData feeds the README templates. Packages and Kind are only set
// for combined packages, SourceURL only for leaf packages.
type readmeData struct {
	Title       string
	Description string
	Kind        string
	Dirs        PlatformDirs
	SourceURL   string
	Created     string
	Packages    []string
}

func renderReadme(name string, data readmeData) ([]byte, error) {
	var buf bytes.Buffer
	if err := readmeTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
