package gallery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ListImages returns the names of all regular entries in the source
// directory. Subdirectories are ignored. os.ReadDir sorts by name, so the
// listing (and with it manifest tie-breaking) is deterministic regardless of
// filesystem enumeration order.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("gallery: read source dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// WriteManifest serializes the records as pretty-printed UTF-8 JSON and
// fully overwrites the file at path. An empty manifest is written as "[]",
// never "null".
func WriteManifest(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("gallery: encode manifest: %w", err)
	}
	data = append(data, '\n')
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("gallery: create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("gallery: write manifest: %w", err)
	}
	return nil
}
