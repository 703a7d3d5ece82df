package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gallery "github.com/mbharanya/mbh.photos"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan the source directory and write the manifest",
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := gallery.NewLogger(flagVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	res, err := gallery.Run(cfg, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s with %d images\n", cfg.OutputPath, len(res.Records))
	return nil
}
