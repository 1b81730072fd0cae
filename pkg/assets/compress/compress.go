// Package compress selects the stream codec used for tarball mirrors of
// release archives.
package compress

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// Codec identifies a supported compression codec
type Codec int

const (
	Gzip Codec = iota
	Bzip2
)

func (c Codec) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	default:
		return "unknown"
	}
}

// Extension returns the file extension conventionally used for the codec
func (c Codec) Extension() string {
	switch c {
	case Gzip:
		return ".gz"
	case Bzip2:
		return ".bz2"
	default:
		return ""
	}
}

// NewWriter wraps w with a compressing writer for the codec.
// The caller must Close the returned writer to flush the stream.
func NewWriter(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Bzip2:
		bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: 9})
		if err != nil {
			return nil, fmt.Errorf("creating bzip2 writer: %w", err)
		}
		return bw, nil
	default:
		return nil, fmt.Errorf("unknown codec: %d", c)
	}
}

// NewReader wraps r with a decompressing reader for the codec
func NewReader(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return gr, nil
	case Bzip2:
		br, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, fmt.Errorf("creating bzip2 reader: %w", err)
		}
		return br, nil
	default:
		return nil, fmt.Errorf("unknown codec: %d", c)
	}
}
