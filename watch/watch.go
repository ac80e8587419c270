// SPDX-License-Identifier: MIT

// Package watch reruns an action whenever the city data file changes.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename-and-replace keep triggering events. Bursts of
// events are collapsed: the action runs once the file has been quiet for the
// debounce interval, and never concurrently with itself.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// DefaultDebounce is used when a non-positive debounce is given.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors one file through its parent directory.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	fw       *fsnotify.Watcher
}

// New starts watching the directory holding path.
func New(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, errors.Annotatef(err, "watch %s", filepath.Dir(abs))
	}

	return &Watcher{path: abs, debounce: debounce, logger: logger, fw: fw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run calls onChange after every settled burst of writes to the file until
// ctx is cancelled. Errors from onChange are logged and do not stop the
// loop. Run closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	defer w.fw.Close()

	// Armed only by relevant events.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("data file event", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
			timer.Reset(w.debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.logger.Error("reload failed", zap.String("path", w.path), zap.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}

	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
