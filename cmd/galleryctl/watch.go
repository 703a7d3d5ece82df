package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	gallery "github.com/mbharanya/mbh.photos"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the manifest whenever the source directory changes",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := gallery.NewLogger(flagVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Initial build so the manifest reflects the directory as it is now.
	if _, err := gallery.Run(cfg, logger); err != nil {
		return err
	}

	rebuild := func() error {
		_, err := gallery.Run(cfg, logger)
		return err
	}
	w, err := gallery.NewWatcher(cfg.SourceDir, 500*time.Millisecond, logger, rebuild)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w.Start(ctx)
	<-ctx.Done()
	w.Stop()
	logger.Info("watch stopped")
	return nil
}
