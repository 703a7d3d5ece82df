package gallery

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherRebuildsOnImageChange(t *testing.T) {
	dir := t.TempDir()
	rebuilt := make(chan struct{}, 1)
	w, err := NewWatcher(dir, 50*time.Millisecond, zap.NewNop(), func() error {
		select {
		case rebuilt <- struct{}{}:
		default:
		}
		return nil
	})
	require.NoError(t, err)

	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_Tier_Fox_500x500.jpg"), []byte("x"), 0o644))

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger a rebuild")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"), time.Second, zap.NewNop(), func() error { return nil })
	require.Error(t, err)
}

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"image create", fsnotify.Event{Name: "a/001_Tier_Fox_500x500.jpg", Op: fsnotify.Create}, true},
		{"image remove", fsnotify.Event{Name: "a/001_Tier_Fox_500x500.PNG", Op: fsnotify.Remove}, true},
		{"non-image write", fsnotify.Event{Name: "a/notes.txt", Op: fsnotify.Write}, false},
		{"image chmod only", fsnotify.Event{Name: "a/001_Tier_Fox_500x500.jpg", Op: fsnotify.Chmod}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevantEvent(tt.ev))
		})
	}
}
