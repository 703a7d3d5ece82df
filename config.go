package gallery

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the gallery manifest tool. The zero
// value plus setDefaults matches the paths the mbh.photos build has always
// used, so running without a config file keeps the historical behavior.
type Config struct {
	SourceDir  string `yaml:"source_dir"`  // Directory scanned for images (default "images")
	OutputPath string `yaml:"output_path"` // Manifest destination (default "manifest.json")

	SiteURL     string `yaml:"site_url"`     // Canonical site URL, used for sitemap locs
	SitemapPath string `yaml:"sitemap_path"` // Empty disables sitemap output
	HistoryDB   string `yaml:"history_db"`   // SQLite build-history path; empty disables history

	Categories map[string]string `yaml:"categories"` // Extra category token mappings
}

func (c *Config) setDefaults() {
	if c.SourceDir == "" {
		c.SourceDir = "images"
	}
	if c.OutputPath == "" {
		c.OutputPath = "manifest.json"
	}
	if c.SiteURL == "" {
		c.SiteURL = "https://mbh.photos"
	}
}

// CategoryMap returns the default category table extended with any entries
// from the config file. Config entries may override defaults.
func (c *Config) CategoryMap() CategoryMap {
	m := DefaultCategories()
	for k, v := range c.Categories {
		m[k] = v
	}
	return m
}

// LoadConfig reads a YAML config file and applies defaults. An empty path or
// a missing file yields the default configuration; a present but unparsable
// file is an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("gallery: parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("gallery: read config: %w", err)
		}
	}
	cfg.setDefaults()
	return cfg, nil
}
