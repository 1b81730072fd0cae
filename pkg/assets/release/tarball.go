package release

import (
	"archive/tar"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/autovibez/release-tools/pkg/assets/compress"
)

// WriteTarMirrors writes .tar.gz and .tar.bz2 mirrors of an existing ZIP
// package. The mirrors carry exactly the entries the ZIP carries and are
// returned in the order they were written.
func (p *Packager) WriteTarMirrors(zipPath string) ([]string, error) {
	entries, err := readZipEntries(zipPath)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(zipPath, ".zip")
	modTime := p.Clock().UTC()

	var mirrors []string
	for _, codec := range []compress.Codec{compress.Gzip, compress.Bzip2} {
		path := base + ".tar" + codec.Extension()
		if err := writeTar(path, modTime, entries, codec); err != nil {
			return nil, err
		}
		mirrors = append(mirrors, path)
	}

	p.logger.Info("📦 Wrote tarball mirrors", "package", zipPath, "mirrors", len(mirrors))
	return mirrors, nil
}

func writeTar(path string, modTime time.Time, entries []Entry, codec compress.Codec) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating tarball %s: %w", path, err)
	}

	cw, err := compress.NewWriter(f, codec)
	if err != nil {
		f.Close()
		return err
	}

	tw := tar.NewWriter(cw)
	for _, e := range entries {
		hdr := &tar.Header{
			Name:    e.Name,
			Mode:    0o644,
			Size:    int64(len(e.Data)),
			ModTime: modTime,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			cw.Close()
			f.Close()
			return fmt.Errorf("writing tar header %s: %w", e.Name, err)
		}
		if _, err := tw.Write(e.Data); err != nil {
			cw.Close()
			f.Close()
			return fmt.Errorf("writing tar entry %s: %w", e.Name, err)
		}
	}

	if err := tw.Close(); err != nil {
		cw.Close()
		f.Close()
		return fmt.Errorf("closing tar writer: %w", err)
	}
	if err := cw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("closing %s writer: %w", codec, err)
	}

	return f.Close()
}
