// Package gallery builds the image manifest for the mbh.photos gallery.
// It parses structured metadata (sort key, category, title, aspect ratio)
// out of image filenames and writes an ordered JSON manifest consumed by
// the gallery renderer, plus optional extras: a static sitemap, an EXIF
// dimension cross-check, and a SQLite history of build runs.
package gallery

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BuildResult summarizes one manifest build.
type BuildResult struct {
	Records  []Record
	Rejected []Rejection
	Skipped  int // entries without an image extension
}

// Run executes one full build: scan the source directory, parse filenames,
// write the manifest, and produce the optional sitemap and history entry.
// Per-file rejections are logged as warnings and never fail the run; only
// I/O errors do.
func Run(cfg Config, logger *zap.Logger) (BuildResult, error) {
	names, err := ListImages(cfg.SourceDir)
	if err != nil {
		return BuildResult{}, err
	}

	records, rejected := BuildManifest(names, cfg.CategoryMap())
	for _, rej := range rejected {
		logger.Warn("skipping file",
			zap.String("file", rej.File),
			zap.String("reason", rej.Reason))
	}

	if err := WriteManifest(cfg.OutputPath, records); err != nil {
		return BuildResult{}, err
	}

	if cfg.SitemapPath != "" {
		if err := WriteSitemap(cfg.SitemapPath, cfg.SiteURL, records); err != nil {
			return BuildResult{}, err
		}
	}

	res := BuildResult{
		Records:  records,
		Rejected: rejected,
		Skipped:  len(names) - len(records) - len(rejected),
	}

	if cfg.HistoryDB != "" {
		if err := recordRun(cfg, res); err != nil {
			// History is bookkeeping, not output; a broken history DB should
			// not invalidate a manifest that was already written.
			logger.Warn("recording build run failed", zap.Error(err))
		}
	}

	logger.Info("manifest written",
		zap.Int("images", len(records)),
		zap.String("output", cfg.OutputPath))
	return res, nil
}

func recordRun(cfg Config, res BuildResult) error {
	store, err := NewStore(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveRun(BuildRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		Accepted:  len(res.Records),
		Rejected:  len(res.Rejected),
		Skipped:   res.Skipped,
		Output:    cfg.OutputPath,
	})
}
