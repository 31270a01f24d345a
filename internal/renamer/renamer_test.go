package renamer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoren/photorename/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name     string
		parsed   metadata.Parsed
		original string
		want     string
		wantOK   bool
	}{
		{
			name:     "date only",
			parsed:   metadata.Parsed{Date: "2023-07-04"},
			original: "img001.jpg",
			want:     "2023-07-04_img001.jpg",
			wantOK:   true,
		},
		{
			name:     "date and address",
			parsed:   metadata.Parsed{Date: "2023-07-04", Address: "Springfield"},
			original: "img001.jpg",
			want:     "2023-07-04-Springfield_img001.jpg",
			wantOK:   true,
		},
		{
			name:     "no date means no rename",
			parsed:   metadata.Parsed{Address: "Springfield"},
			original: "img001.jpg",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewName(tt.parsed, tt.original)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img001.jpg"), []byte("photo"), 0644))

	err := Rename(dir, "img001.jpg", "2023-07-04_img001.jpg")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "img001.jpg"))
	assert.FileExists(t, filepath.Join(dir, "2023-07-04_img001.jpg"))
}

func TestRenameRefusesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img001.jpg"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taken.jpg"), []byte("b"), 0644))

	err := Rename(dir, "img001.jpg", "taken.jpg")
	assert.Error(t, err)
	assert.FileExists(t, filepath.Join(dir, "img001.jpg"))
}

func TestRenameMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := Rename(dir, "missing.jpg", "2023-07-04_missing.jpg")
	assert.Error(t, err)
}
