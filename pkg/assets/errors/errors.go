package errors

import "errors"

var (
	// Packaging errors 📦
	ErrEmptyPackageName = errors.New("❌ empty package name")
	ErrNoPackages       = errors.New("❌ combined package needs at least one constituent package")
	ErrEmptyCatalog     = errors.New("❌ catalog lists no asset sets")

	// Checksum errors 🔒
	ErrChecksumMismatch = errors.New("❌ checksum mismatch")
)
