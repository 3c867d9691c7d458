package assets

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch evicts cached assets whose files are written, replaced or removed,
// so the next load reads them again. It watches the directory of every path
// loaded so far and of every path loaded while it runs.
//
// Watch blocks until ctx is done or the manager is closed. It returns
// ctx.Err() in the first case and nil in the second.
func (m *Manager) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("assets: create watcher: %w", err)
	}

	m.mu.Lock()
	switch {
	case m.closed:
		m.mu.Unlock()
		_ = w.Close()
		return ErrClosed
	case m.watcher != nil:
		m.mu.Unlock()
		_ = w.Close()
		return ErrWatching
	}
	m.watcher = w
	for dir := range m.dirs {
		if err := w.Add(dir); err != nil {
			m.logger.Warn("assets: watch directory", "dir", dir, "err", err)
		}
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		if m.watcher == w {
			m.watcher = nil
		}
		m.mu.Unlock()
		_ = w.Close()
	}()

	const changed = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&changed != 0 {
				m.Evict(event.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			m.logger.Warn("assets: watcher error", "err", err)
		}
	}
}
