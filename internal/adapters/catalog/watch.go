package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch reloads c from path whenever the file changes and signals on the
// returned channel after each successful reload. The directory is watched
// rather than the file so editors that save by rename are picked up.
// The channel is closed when ctx is done.
func Watch(ctx context.Context, path string, c *Catalog, logger zerolog.Logger) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				spots, err := ReadFile(path)
				if err != nil {
					logger.Warn().Err(err).Str("path", path).Msg("catalog reload failed")
					continue
				}
				if err := c.Replace(spots); err != nil {
					logger.Warn().Err(err).Str("path", path).Msg("catalog reload failed")
					continue
				}
				logger.Info().Str("path", path).Int("spots", len(spots)).Msg("catalog reloaded")

				select {
				case changes <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("catalog watcher error")
			}
		}
	}()

	return changes, nil
}
