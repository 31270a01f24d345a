package exif

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataAccessors(t *testing.T) {
	d := &Data{
		dates: map[DateField]string{
			DateTimeOriginal: "2023:07:04 18:22:11",
			SceneCaptureType: "", // present, not string-typed
		},
		coords: map[Axis]Coordinate{
			Latitude: {Degrees: 39, Minutes: 48, Valid: true, Ref: "N", RefOK: true},
		},
	}

	val, ok := d.DateValue(DateTimeOriginal)
	assert.True(t, ok)
	assert.Equal(t, "2023:07:04 18:22:11", val)

	val, ok = d.DateValue(SceneCaptureType)
	assert.True(t, ok)
	assert.Empty(t, val)

	_, ok = d.DateValue(DateTimeDigitized)
	assert.False(t, ok)

	c, ok := d.Coordinate(Latitude)
	assert.True(t, ok)
	assert.Equal(t, "N", c.Ref)
	assert.True(t, c.Valid)

	_, ok = d.Coordinate(Longitude)
	assert.False(t, ok)
}

func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := DecodeFile(filepath.Join(dir, "missing.jpg"))
		assert.Error(t, err)
	})

	t.Run("no exif block", func(t *testing.T) {
		path := filepath.Join(dir, "plain.jpg")
		require.NoError(t, os.WriteFile(path, []byte("not a photo"), 0644))

		_, err := DecodeFile(path)
		assert.Error(t, err)
	})

	t.Run("heic without exif box", func(t *testing.T) {
		path := filepath.Join(dir, "broken.HEIC")
		require.NoError(t, os.WriteFile(path, []byte("not a heic container"), 0644))

		_, err := DecodeFile(path)
		assert.Error(t, err)
	})
}
