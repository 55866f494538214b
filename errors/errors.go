package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors. Callers match them with errors.Is; the builder in this
// package marks enriched errors so the match survives wrapping.
var (
	// ErrToolNotFound is returned when apktool.jar exists at neither the
	// configured override path nor the bundled default location.
	ErrToolNotFound = errors.New("apktool artifact not found")

	// ErrInvalidOption is returned by the command builder before any process
	// is spawned when an option value violates its declared type or enum.
	ErrInvalidOption = errors.New("invalid apktool option")

	// ErrProcessFailure is returned when apktool exits with a nonzero status.
	ErrProcessFailure = errors.New("apktool exited with a nonzero status")

	// ErrProcessStart is returned when the java runtime could not be started at all.
	ErrProcessStart = errors.New("failed to start apktool process")

	ErrMetadataNotFound   = errors.New("apktool.yml not found in decoded directory")
	ErrInvalidMetadata    = errors.New("invalid apktool.yml")
	ErrUnsupportedVersion = errors.New("unsupported apktool version")
	ErrInvalidVersion     = errors.New("invalid apktool version string")

	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidConfig   = errors.New("invalid apkwrap configuration")
)
