package gallery

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher rebuilds the manifest whenever image files in the source directory
// change. Events are debounced so a batch copy triggers one rebuild, not one
// per file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	dir      string
	debounce time.Duration
	rebuild  func() error

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewWatcher creates a Watcher over dir that calls rebuild after changes
// settle for the debounce window.
func NewWatcher(dir string, debounce time.Duration, logger *zap.Logger, rebuild func() error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("gallery: create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("gallery: watch %s: %w", dir, err)
	}
	return &Watcher{
		watcher:  fw,
		logger:   logger,
		dir:      dir,
		debounce: debounce,
		rebuild:  rebuild,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine. Non-blocking.
func (w *Watcher) Start(ctx context.Context) {
	w.logger.Info("watching for changes", zap.String("dir", w.dir))
	go w.run(ctx)
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("closing watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevantEvent(ev) {
				continue
			}
			w.logger.Debug("change detected",
				zap.String("file", filepath.Base(ev.Name)),
				zap.String("op", ev.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			timerC = timer.C

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.rebuild(); err != nil {
				w.logger.Error("rebuild failed", zap.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// relevantEvent reports whether a filesystem event can change the manifest.
func relevantEvent(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	return imageExts[strings.ToLower(filepath.Ext(ev.Name))]
}
