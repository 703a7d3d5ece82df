package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclaredDimensions(t *testing.T) {
	tests := []struct {
		aspect string
		w, h   int
		ok     bool
	}{
		{"1920 / 1080", 1920, 1080, true},
		{"0640 / 0480", 640, 480, true},
		{"1920/1080", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		w, h, ok := declaredDimensions(tt.aspect)
		assert.Equal(t, tt.ok, ok, "aspect %q", tt.aspect)
		if tt.ok {
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		}
	}
}

func TestCheckAspectsSkipsFilesWithoutExif(t *testing.T) {
	dir := t.TempDir()
	// Not a real JPEG; exif.Decode fails and the file is skipped, not an error.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_Tier_Fox_500x500.jpg"), []byte("not a jpeg"), 0o644))

	records := []Record{
		{File: "001_Tier_Fox_500x500.jpg", Sort: 1, Category: "animals", Title: "Fox", Aspect: "500 / 500"},
		{File: "002_Vogel_Wren_640x480.png", Sort: 2, Category: "birds", Title: "Wren", Aspect: "640 / 480"},
	}
	mismatches, err := CheckAspects(dir, records)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestCheckAspectsMissingFile(t *testing.T) {
	records := []Record{
		{File: "001_Tier_Fox_500x500.jpg", Aspect: "500 / 500"},
	}
	_, err := CheckAspects(t.TempDir(), records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open image")
}
