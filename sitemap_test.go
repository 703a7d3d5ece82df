package gallery

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSitemap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	records := []Record{
		{File: "001_Landschaft_Alps_3000x2000.jpg", Sort: 1, Category: "landscapes", Title: "Alps", Aspect: "3000 / 2000"},
		{File: "002_Vogel_Wren_640x480.jpg", Sort: 2, Category: "birds", Title: "Wren", Aspect: "640 / 480"},
	}
	require.NoError(t, WriteSitemap(path, "https://mbh.photos", records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))

	var got struct {
		XMLNS string `xml:"xmlns,attr"`
		URLs  []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(data, &got))
	assert.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", got.XMLNS)
	require.Len(t, got.URLs, 3)
	assert.Equal(t, "https://mbh.photos/", got.URLs[0].Loc)
	assert.Equal(t, "https://mbh.photos/images/001_Landschaft_Alps_3000x2000.jpg", got.URLs[1].Loc)
	assert.Equal(t, "https://mbh.photos/images/002_Vogel_Wren_640x480.jpg", got.URLs[2].Loc)
}

func TestWriteSitemapEmptyManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, WriteSitemap(path, "https://mbh.photos", nil))

	var got struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, xml.Unmarshal(data, &got))
	require.Len(t, got.URLs, 1)
	assert.Equal(t, "https://mbh.photos/", got.URLs[0].Loc)
}
