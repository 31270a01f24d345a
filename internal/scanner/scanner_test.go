package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExtensions = []string{".jpg", ".jpeg", ".heic"}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func TestListPhotos(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.jpeg", "c.heic", "notes.txt", "d.png")

	photos, err := ListPhotos(dir, testExtensions)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpeg", "c.heic"}, photos)
}

func TestListPhotosCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Photo.JPG", "Trip.HeIc")

	photos, err := ListPhotos(dir, testExtensions)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Photo.JPG", "Trip.HeIc"}, photos)
}

func TestListPhotosNormalizesAllowlist(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.jpeg", "c.heic", "d.png")

	photos, err := ListPhotos(dir, []string{".JPG", "jpeg", " .Heic "})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpeg", "c.heic"}, photos)
}

func TestListPhotosNoCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "readme.md", "archive.zip")

	_, err := ListPhotos(dir, testExtensions)
	assert.ErrorIs(t, err, ErrNoPhotos)
}

func TestListPhotosEmptyDirectory(t *testing.T) {
	_, err := ListPhotos(t.TempDir(), testExtensions)
	assert.ErrorIs(t, err, ErrNoPhotos)
}

func TestListPhotosIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.jpg"), 0755))
	writeFiles(t, dir, "real.jpg")

	photos, err := ListPhotos(dir, testExtensions)
	require.NoError(t, err)
	assert.Equal(t, []string{"real.jpg"}, photos)
}

func TestListPhotosMissingDirectory(t *testing.T) {
	_, err := ListPhotos(filepath.Join(t.TempDir(), "nope"), testExtensions)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoPhotos)
}
