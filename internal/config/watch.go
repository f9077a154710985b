package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the config at path whenever it is written or replaced and
// passes the result to onChange. Read and validation failures go to onError;
// the watch keeps running. Watch returns once the watcher is set up and stops
// when ctx is done.
//
// The parent directory is watched rather than the file so that editors that
// save by renaming a temp file over the original are still noticed.
func Watch(ctx context.Context, path string, onChange func(Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config dir: %w", err)
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				c, err := read(path)
				if err == nil {
					c = applyEnv(c)
					err = c.Validate()
				}
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				onChange(c)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()
	return nil
}
