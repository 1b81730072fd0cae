package release

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"time"
)

// Entry is a single file stored inside a release archive
type Entry struct {
	Name string
	Data []byte
}

// writeZip writes a deflate-compressed ZIP with the given entries. Entry
// modification times are pinned to modTime so two runs with the same clock
// produce byte-identical archives.
func writeZip(path string, modTime time.Time, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", path, err)
	}

	zw := zip.NewWriter(f)
	for _, e := range entries {
		hdr := &zip.FileHeader{
			Name:     e.Name,
			Method:   zip.Deflate,
			Modified: modTime,
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			f.Close()
			return fmt.Errorf("creating entry %s: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			f.Close()
			return fmt.Errorf("writing entry %s: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("closing archive %s: %w", path, err)
	}

	return f.Close()
}

// readZipEntries reads all entries back out of a ZIP archive, in archive
// order. Used by the tarball mirrors so they always carry exactly what the
// ZIP carries.
func readZipEntries(path string) ([]Entry, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer zr.Close()

	var entries []Entry
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("opening entry %s: %w", zf.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", zf.Name, err)
		}
		entries = append(entries, Entry{Name: zf.Name, Data: data})
	}

	return entries, nil
}
