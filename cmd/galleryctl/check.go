package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gallery "github.com/mbharanya/mbh.photos"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-check filename dimensions against EXIF metadata",
	Long: `check parses the source directory like build does, then compares the WxH
declared in each accepted JPEG filename with the pixel dimensions stored in
its EXIF headers. Mismatches are reported as warnings; nothing is written.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := gallery.NewLogger(flagVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	names, err := gallery.ListImages(cfg.SourceDir)
	if err != nil {
		return err
	}
	records, rejected := gallery.BuildManifest(names, cfg.CategoryMap())
	for _, rej := range rejected {
		logger.Warn("skipping file",
			zap.String("file", rej.File),
			zap.String("reason", rej.Reason))
	}

	mismatches, err := gallery.CheckAspects(cfg.SourceDir, records)
	if err != nil {
		return err
	}
	for _, m := range mismatches {
		logger.Warn("aspect mismatch",
			zap.String("file", m.File),
			zap.String("declared", m.Declared),
			zap.String("exif", m.Actual))
	}
	fmt.Printf("Checked %d images, %d mismatches\n", len(records), len(mismatches))
	return nil
}
