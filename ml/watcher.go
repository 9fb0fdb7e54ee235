package ml

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchArtifacts logs a warning whenever an artifact file changes on disk.
// Loaded artifacts are immutable for the process lifetime, so a change means
// the serving process is now stale and needs a restart to pick it up.
func WatchArtifacts(paths ArtifactPaths, logger *zap.Logger) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, path := range []string{paths.Model, paths.InputScaler, paths.OutputScaler} {
		if path == "" {
			continue
		}
		if err := watcher.Add(path); err != nil {
			logger.Warn("cannot watch artifact file", zap.String("path", path), zap.Error(err))
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					logger.Warn("artifact changed on disk, restart required to reload",
						zap.String("path", event.Name),
						zap.String("op", event.Op.String()))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("artifact watcher error", zap.Error(err))
			}
		}
	}()

	return watcher.Close, nil
}
