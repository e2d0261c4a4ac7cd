package generate

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultWatchDebounce is the default debounce interval for theme file events.
const DefaultWatchDebounce = 300 * time.Millisecond

// watcher reports changes of a single file. Containing directory is watched
// rather than the file itself, so editors which save by renaming are handled.
type watcher struct {
	log      *zap.Logger
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
}

func newWatcher(path string, debounce time.Duration, log *zap.Logger) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	return &watcher{log: log.Named("watcher"), fsw: fsw, path: abs, debounce: debounce}, nil
}

// Run calls onChange after every burst of changes to the file until context
// is canceled. Errors returned by onChange are logged and do not stop
// watching.
func (w *watcher) Run(ctx context.Context, onChange func() error) error {
	defer w.fsw.Close()

	var (
		timer    *time.Timer
		debounce <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	w.log.Info("Watching for changes", zap.String("file", w.path))
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Watching stopped", zap.String("file", w.path))
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if abs, _ := filepath.Abs(event.Name); abs != w.path {
				continue
			}
			// write/create/rename covers atomic saves
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("File event", zap.Stringer("op", event.Op))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			debounce = timer.C

		case <-debounce:
			timer, debounce = nil, nil
			if err := onChange(); err != nil {
				w.log.Error("Unable to regenerate stylesheet", zap.Error(err))
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("File watcher error", zap.Error(err))
		}
	}
}
