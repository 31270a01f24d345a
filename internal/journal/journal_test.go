package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilJournalIsNoOp(t *testing.T) {
	j := New("")
	assert.Nil(t, j)

	// Record and Save on a nil journal must not panic
	j.Record("/photos", "a.jpg", "2023-07-04_a.jpg")
	assert.NoError(t, j.Save())
}

func TestRecordAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest", "renames.json")

	j := New(path)
	require.NotNil(t, j)

	j.Record("/photos", "a.jpg", "2023-07-04_a.jpg")
	j.Record("/photos", "b.jpg", "2023-07-05-Springfield_b.jpg")
	require.NoError(t, j.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var manifest struct {
		Renames []Entry `json:"renames"`
	}
	require.NoError(t, json.Unmarshal(data, &manifest))
	require.Len(t, manifest.Renames, 2)
	assert.Equal(t, "a.jpg", manifest.Renames[0].From)
	assert.Equal(t, "2023-07-04_a.jpg", manifest.Renames[0].To)
	assert.Equal(t, "/photos", manifest.Renames[0].Directory)
	assert.False(t, manifest.Renames[0].Timestamp.IsZero())
}
