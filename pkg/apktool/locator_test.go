package apktool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

func writeFile(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("jar"), 0o644))
	return path
}

func TestLocator_ToolPath(t *testing.T) {
	t.Run("bundled default", func(t *testing.T) {
		dir := t.TempDir()
		bundled := writeFile(t, filepath.Join(dir, ToolFilename))

		got, err := NewLocator("", dir).ToolPath()
		require.NoError(t, err)
		assert.Equal(t, bundled, got)
	})

	t.Run("override regular file wins", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ToolFilename))
		override := writeFile(t, filepath.Join(t.TempDir(), "custom", "apktool_2.9.3.jar"))

		got, err := NewLocator(override, dir).ToolPath()
		require.NoError(t, err)
		assert.Equal(t, override, got)
	})

	t.Run("override directory falls back to bundled", func(t *testing.T) {
		dir := t.TempDir()
		bundled := writeFile(t, filepath.Join(dir, ToolFilename))

		got, err := NewLocator(t.TempDir(), dir).ToolPath()
		require.NoError(t, err)
		assert.Equal(t, bundled, got)
	})

	t.Run("missing override falls back to bundled", func(t *testing.T) {
		dir := t.TempDir()
		bundled := writeFile(t, filepath.Join(dir, ToolFilename))

		got, err := NewLocator(filepath.Join(dir, "nope.jar"), dir).ToolPath()
		require.NoError(t, err)
		assert.Equal(t, bundled, got)
	})

	t.Run("nothing found", func(t *testing.T) {
		dir := t.TempDir()

		_, err := NewLocator(filepath.Join(dir, "nope.jar"), dir).ToolPath()
		require.Error(t, err)
		assert.ErrorIs(t, err, errUtils.ErrToolNotFound)
		assert.Contains(t, err.Error(), filepath.Join(dir, ToolFilename))
	})
}

func TestLocator_WithFilesystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := NewMockFilesystem(ctrl)

	l := NewLocator("", "/opt/apkwrap")
	mocked := l.WithFilesystem(fs)
	assert.NotSame(t, l, mocked)

	fs.EXPECT().Stat("/opt/apkwrap/apktool.jar").Return(nil, os.ErrNotExist)

	_, err := mocked.ToolPath()
	assert.ErrorIs(t, err, errUtils.ErrToolNotFound)
}

func TestLocator_OverrideStatError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := NewMockFilesystem(ctrl)

	bundled := writeFile(t, filepath.Join(t.TempDir(), ToolFilename))
	info, err := os.Stat(bundled)
	require.NoError(t, err)

	gomock.InOrder(
		fs.EXPECT().Stat("/denied/apktool.jar").Return(nil, os.ErrPermission),
		fs.EXPECT().Stat("/opt/apkwrap/apktool.jar").Return(info, nil),
	)

	got, err := NewLocator("/denied/apktool.jar", "/opt/apkwrap").WithFilesystem(fs).ToolPath()
	require.NoError(t, err)
	assert.Equal(t, "/opt/apkwrap/apktool.jar", got)
}

func TestLocator_EmptyBundledDirUsesWorkingDirectory(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)

	l := &Locator{}
	_, err := l.ToolPath()
	require.ErrorIs(t, err, errUtils.ErrToolNotFound)
	assert.Contains(t, strings.Join(errors.GetAllHints(err), "\n"), "working directory")

	writeFile(t, filepath.Join(wd, ToolFilename))
	got, err := l.ToolPath()
	require.NoError(t, err)
	assert.Equal(t, ToolFilename, got)
}

func TestDefaultBundledDir(t *testing.T) {
	dir := DefaultBundledDir()
	assert.NotEmpty(t, dir)
	assert.Equal(t, filepath.Join(dir, ToolFilename), NewLocator("", "").BundledPath())
}
