// Checksum utilities supporting multiple algorithms with prefixed format.
//
// Format: "algorithm:hexvalue" (e.g., "sha256:c0ffee123...", "adler32:babe1337")
package release

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/adler32"
	"os"
	"path/filepath"
	"strings"

	asseterrors "github.com/autovibez/release-tools/pkg/assets/errors"
)

// ChecksumsName is the file name of the checksum sidecar written next to
// the packages.
const ChecksumsName = "SHA256SUMS"

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm int

const (
	ChecksumSHA256 ChecksumAlgorithm = iota
	ChecksumSHA512
	ChecksumAdler32
)

func (c ChecksumAlgorithm) String() string {
	switch c {
	case ChecksumSHA256:
		return "sha256"
	case ChecksumSHA512:
		return "sha512"
	case ChecksumAdler32:
		return "adler32"
	default:
		return "unknown"
	}
}

func (c ChecksumAlgorithm) newHash() hash.Hash {
	switch c {
	case ChecksumSHA512:
		return sha512.New()
	case ChecksumAdler32:
		return adler32.New()
	default:
		return sha256.New()
	}
}

// ParseChecksum parses a prefixed checksum string into its algorithm and
// hex value.
func ParseChecksum(checksumStr string) (ChecksumAlgorithm, string, error) {
	parts := strings.SplitN(checksumStr, ":", 2)
	if len(parts) != 2 {
		return ChecksumSHA256, "", fmt.Errorf("invalid checksum format: %s", checksumStr)
	}

	var algo ChecksumAlgorithm
	switch parts[0] {
	case "sha256":
		algo = ChecksumSHA256
	case "sha512":
		algo = ChecksumSHA512
	case "adler32":
		algo = ChecksumAdler32
	default:
		return ChecksumSHA256, "", fmt.Errorf("unknown checksum algorithm: %s", parts[0])
	}

	return algo, parts[1], nil
}

// CalculateChecksum calculates a prefixed checksum over data
func CalculateChecksum(data []byte, algorithm ChecksumAlgorithm) string {
	h := algorithm.newHash()
	h.Write(data)
	return algorithm.String() + ":" + hex.EncodeToString(h.Sum(nil))
}

// VerifyChecksum verifies data against a prefixed checksum string,
// returning ErrChecksumMismatch on a well-formed but wrong checksum.
func VerifyChecksum(data []byte, checksumStr string) error {
	algo, expected, err := ParseChecksum(checksumStr)
	if err != nil {
		return err
	}

	actual := CalculateChecksum(data, algo)
	if actual != algo.String()+":"+expected {
		return asseterrors.ErrChecksumMismatch
	}

	return nil
}

// ChecksumFile calculates the SHA-256 checksum of a file on disk
func ChecksumFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return CalculateChecksum(data, ChecksumSHA256), nil
}

// WriteChecksumFile writes the SHA256SUMS sidecar covering the given
// artifact paths, one "sha256:hex  name" line per artifact, and returns
// the sidecar path.
func (p *Packager) WriteChecksumFile(paths []string) (string, error) {
	var b strings.Builder
	for _, path := range paths {
		sum, err := ChecksumFile(path)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s  %s\n", sum, filepath.Base(path))
	}

	sidecar := filepath.Join(p.OutputDir, ChecksumsName)
	if err := os.WriteFile(sidecar, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", ChecksumsName, err)
	}

	p.logger.Info("🔒 Wrote checksum sidecar", "path", sidecar, "artifacts", len(paths))
	return sidecar, nil
}
