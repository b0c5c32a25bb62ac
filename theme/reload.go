package theme

import (
	"go.uber.org/zap"
)

// Reloader owns the active theme and swaps it when the backing file changes.
// Poll must be called from the game loop; the watcher goroutine never
// touches the theme itself.
type Reloader struct {
	path    string
	current *Theme
	watcher *Watcher
	logger  *zap.SugaredLogger
}

// NewReloader loads path, or the built-in palette when path is empty. With
// watch set the file is re-read whenever it is written.
func NewReloader(path string, watch bool, logger *zap.SugaredLogger) (*Reloader, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	r := &Reloader{path: path, current: Default(), logger: logger.Named("theme")}

	if path == "" {
		return r, nil
	}

	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	r.current = t
	r.logger.Infow("loaded theme", "path", path)

	if !watch {
		return r, nil
	}

	w, err := NewWatcher(path)
	if err != nil {
		r.logger.Warnw("theme hot reload disabled", "path", path, "error", err)
		return r, nil
	}
	r.watcher = w

	return r, nil
}

func (r *Reloader) Theme() *Theme {
	return r.current
}

// Reload re-reads the theme file. On failure the current theme is kept.
func (r *Reloader) Reload() error {
	if r.path == "" {
		return nil
	}

	t, err := Load(r.path)
	if err != nil {
		r.logger.Warnw("theme reload failed, keeping previous", "path", r.path, "error", err)
		return err
	}

	r.current = t
	r.logger.Infow("reloaded theme", "path", r.path)
	return nil
}

// Poll drains pending watcher events without blocking and reports whether
// the theme changed.
func (r *Reloader) Poll() bool {
	if r.watcher == nil {
		return false
	}

	pending := false
	for drained := false; !drained; {
		select {
		case _, ok := <-r.watcher.Events:
			if ok {
				pending = true
			} else {
				drained = true
			}
		case err, ok := <-r.watcher.Errors:
			if ok {
				r.logger.Warnw("theme watcher error", "error", err)
			}
		default:
			drained = true
		}
	}

	if !pending {
		return false
	}
	return r.Reload() == nil
}

func (r *Reloader) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}
