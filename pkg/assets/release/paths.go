package release

// PlatformDirs holds the per-platform install directory for an asset kind.
// The strings are shown verbatim in READMEs and the installation guide, so
// they keep the shell-style placeholders users expand themselves.
type PlatformDirs struct {
	Windows string
	MacOS   string
	Linux   string
}

// AssetDirs returns the install directories for an asset kind
// ("presets", "textures", ...).
func AssetDirs(kind string) PlatformDirs {
	return PlatformDirs{
		Windows: `%APPDATA%\autovibez\` + kind + `\`,
		MacOS:   "~/Library/Application Support/autovibez/" + kind + "/",
		Linux:   "~/.local/share/autovibez/" + kind + "/",
	}
}
