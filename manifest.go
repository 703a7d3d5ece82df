package gallery

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CategoryMap maps raw filename category tokens to published category names.
// Lookups are total: an absent key means the file is rejected, the raw token
// is never passed through to the manifest.
type CategoryMap map[string]string

// DefaultCategories returns the category table used by mbh.photos.
func DefaultCategories() CategoryMap {
	return CategoryMap{
		"Landschaft": "landscapes",
		"Vogel":      "birds",
		"Tier":       "animals",
	}
}

// imageExts lists the extensions considered gallery images. Anything else is
// skipped without a diagnostic.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// aspectRe matches the trailing WxH filename token, e.g. "1920x1080".
var aspectRe = regexp.MustCompile(`^(\d+)[xX](\d+)$`)

// BuildManifest parses every filename against the naming convention
//
//	<sort>_<Category>_<Title-Tokens...>_<WxH>.<ext>
//
// and returns the accepted records sorted ascending by sort key, together
// with one Rejection per filename that looked like an image but failed
// validation. Ties in the sort key keep the input order. The function is
// pure: it never touches the filesystem and never fails.
func BuildManifest(names []string, categories CategoryMap) ([]Record, []Rejection) {
	records := make([]Record, 0, len(names))
	var rejected []Rejection
	for _, name := range names {
		if !imageExts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		rec, reason := parseFilename(name, categories)
		if reason != "" {
			rejected = append(rejected, Rejection{File: name, Reason: reason})
			continue
		}
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Sort < records[j].Sort
	})
	return records, rejected
}

// parseFilename validates a single filename and builds its Record. The empty
// reason string means the record is valid.
func parseFilename(name string, categories CategoryMap) (Record, string) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(base, "_")
	if len(parts) < 4 {
		return Record{}, "missing parts, want <sort>_<category>_<title>_<WxH>"
	}

	sortKey, err := strconv.Atoi(parts[0])
	if err != nil {
		return Record{}, fmt.Sprintf("invalid sort prefix %q", parts[0])
	}

	category, ok := categories[parts[1]]
	if !ok {
		return Record{}, fmt.Sprintf("unknown category %q", parts[1])
	}

	m := aspectRe.FindStringSubmatch(parts[len(parts)-1])
	if m == nil {
		return Record{}, fmt.Sprintf("invalid aspect format %q", parts[len(parts)-1])
	}

	// Middle tokens form the title; hyphens double as in-token spaces.
	title := strings.Join(parts[2:len(parts)-1], " ")
	title = strings.ReplaceAll(title, "-", " ")

	return Record{
		// macOS filesystems hand back decomposed Unicode; normalize so the
		// manifest matches the composed-form references in the site markup.
		File:     norm.NFC.String(name),
		Sort:     sortKey,
		Category: category,
		Title:    title,
		Aspect:   m[1] + " / " + m[2],
	}, ""
}
