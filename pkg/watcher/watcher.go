// Package watcher reloads the fixtures file when it changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reports debounced changes to a single file. The parent directory
// is watched rather than the file, so editors that save by writing a
// temporary file and renaming it over the original are still seen.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce *Debouncer
	log      zerolog.Logger
}

// New starts watching path. Call Run to deliver change notifications and
// Close to release the underlying watcher.
func New(path string, log zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		fs:       fsw,
		debounce: NewDebouncer(DefaultQuietPeriod),
		log:      log.With().Str("component", "watcher").Str("path", abs).Logger(),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is done, calling onChange once per burst of writes,
// creates or renames that touch the watched file.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug().Str("op", event.Op.String()).Msg("fixtures file changed")
			w.debounce.Trigger(onChange)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close stops the underlying file watcher
func (w *Watcher) Close() error {
	w.debounce.Stop()
	return w.fs.Close()
}
