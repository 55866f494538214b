package apktool

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"

	errUtils "github.com/cloudposse/apkwrap/errors"
	log "github.com/cloudposse/apkwrap/pkg/logger"
)

// ToolFilename is the name of the bundled apktool artifact.
const ToolFilename = "apktool.jar"

// Filesystem defines the filesystem operations required to locate the tool artifact.
//
//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type Filesystem interface {
	Stat(name string) (os.FileInfo, error)
}

type osFilesystem struct{}

func (osFilesystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Locator resolves the path to apktool.jar. It is configured once and only read afterwards.
type Locator struct {
	// Override is a user-configured artifact path. It wins when it names a regular file.
	Override string
	// BundledDir holds the default artifact, ToolFilename.
	BundledDir string

	fs Filesystem
}

// NewLocator creates a Locator. An empty bundledDir means DefaultBundledDir().
func NewLocator(override, bundledDir string) *Locator {
	if bundledDir == "" {
		bundledDir = DefaultBundledDir()
	}
	return &Locator{
		Override:   override,
		BundledDir: bundledDir,
		fs:         osFilesystem{},
	}
}

// WithFilesystem returns a copy of the locator that checks paths through fs.
func (l *Locator) WithFilesystem(fs Filesystem) *Locator {
	c := *l
	c.fs = fs
	return &c
}

// DefaultBundledDir returns the directory holding the running executable,
// where a bundled apktool.jar is expected. When the executable cannot be
// found it returns "", which makes the bundled path relative to the working directory.
func DefaultBundledDir() string {
	exe, err := os.Executable()
	if err != nil {
		log.Debug("Cannot resolve the apkwrap executable, looking for the bundled apktool.jar in the working directory",
			"err", err)
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// BundledPath returns the default artifact location.
func (l *Locator) BundledPath() string {
	return filepath.Join(l.BundledDir, ToolFilename)
}

// ToolPath returns the override path when it is an existing regular file,
// otherwise the bundled path when it exists, otherwise ErrToolNotFound.
func (l *Locator) ToolPath() (string, error) {
	fs := l.fs
	if fs == nil {
		fs = osFilesystem{}
	}

	override := l.Override
	if override != "" {
		expanded, err := homedir.Expand(override)
		if err == nil {
			override = expanded
		}
		info, err := fs.Stat(override)
		if err == nil && info.Mode().IsRegular() {
			return override, nil
		}
		log.Debug("apktool override is not a regular file, using bundled default",
			"override", override, "bundled", l.BundledPath())
	}

	bundled := l.BundledPath()
	if _, err := fs.Stat(bundled); err == nil {
		return bundled, nil
	}

	b := errUtils.Build(errors.Wrapf(errUtils.ErrToolNotFound, "%s", bundled)).
		WithContext("bundled", bundled).
		WithHint("Set tool_path in apkwrap.yaml, APKWRAP_TOOL_PATH, or --tool-path to the location of apktool.jar")
	if override != "" {
		b = b.WithContext("override", override)
	}
	if l.BundledDir == "" {
		b = b.WithHint("The apkwrap executable could not be located, so apktool.jar was looked up in the working directory")
	}
	return "", b.Err()
}
