package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/konvent-build/konvent/internal/testutils/fstest"
)

func TestFindFileInParentDirsOnRoot(t *testing.T) {
	_, err := FindFileInParentDirs(filepath.FromSlash("/"), "mytestfile-which-must-not-exist-1234")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFileInParentDirWithExcessivePathSeparator(t *testing.T) {
	tempdir := t.TempDir()

	const wantedFilename = ".konvent.toml"
	const subdir1 = "subdir1"
	subdir2AbsPath := filepath.Join(tempdir, subdir1, "subdir2")
	wantedFileAbsPath := filepath.Join(tempdir, subdir1, wantedFilename)

	fstest.WriteToFile(t, []byte("hello"), wantedFileAbsPath)

	foundPath, err := FindFileInParentDirs(subdir2AbsPath+string(os.PathSeparator), wantedFilename)
	assert.NoError(t, err)
	assert.Equal(t, wantedFileAbsPath, foundPath)
}

func TestIsDir(t *testing.T) {
	tempdir := t.TempDir()
	filePath := filepath.Join(tempdir, "f")
	fstest.WriteToFile(t, []byte("hello"), filePath)

	isDir, err := IsDir(tempdir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = IsDir(filePath)
	assert.NoError(t, err)
	assert.False(t, isDir)

	_, err = IsDir(filepath.Join(tempdir, "doesnotexist"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileExists(t *testing.T) {
	tempdir := t.TempDir()
	filePath := filepath.Join(tempdir, "f")
	fstest.WriteToFile(t, []byte("hello"), filePath)

	assert.True(t, FileExists(filePath))
	assert.False(t, FileExists(tempdir))
	assert.False(t, FileExists(filepath.Join(tempdir, "doesnotexist")))
}
