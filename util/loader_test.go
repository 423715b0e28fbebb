package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestLoadDirectoryImageFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.png"))
	touch(t, filepath.Join(dir, "a.JPG"))
	touch(t, filepath.Join(dir, "notes.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	files, err := LoadDirectoryImageFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "a", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "a.JPG"), files[0].Path)
	assert.Equal(t, "b", files[1].Name)
}

func TestLoadDirectoryImageFilesMissing(t *testing.T) {
	_, err := LoadDirectoryImageFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestValidateImageFile(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "photo.webp")
	txt := filepath.Join(dir, "photo.txt")
	touch(t, img)
	touch(t, txt)

	assert.NoError(t, ValidateImageFile(img))
	assert.Error(t, ValidateImageFile(txt))
	assert.Error(t, ValidateImageFile(filepath.Join(dir, "missing.jpg")))
	assert.Error(t, ValidateImageFile(dir))
}

func TestIsSupportedImage(t *testing.T) {
	assert.True(t, IsSupportedImage("x.JPEG"))
	assert.True(t, IsSupportedImage("/a/b/c.bmp"))
	assert.False(t, IsSupportedImage("x.gif"))
	assert.False(t, IsSupportedImage("noext"))
}
