// internal/config/watch.go
package config

import (
	"context"
	"fmt"
	"time"

	"farm-flies/internal/logger"

	"github.com/radovskyb/watcher"
)

// WatchInterval — период опроса файла настроек.
const WatchInterval = 500 * time.Millisecond

// WatchSettings следит за файлом настроек и вызывает onChange
// с новыми значениями после каждой записи. Работает до отмены ctx.
func WatchSettings(ctx context.Context, path string, onChange func(Settings)) error {
	w := watcher.New()
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write, watcher.Create)
	if err := w.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				w.Close()
				return
			case e := <-w.Event:
				s, err := LoadSettings(path)
				if err != nil {
					logger.Errorf("settings reload after %s: %v", e.Op, err)
					continue
				}
				logger.Infof("settings reloaded: %s", path)
				onChange(s)
			case err := <-w.Error:
				logger.Errorf("settings watcher: %v", err)
			case <-w.Closed:
				return
			}
		}
	}()

	go func() {
		if err := w.Start(WatchInterval); err != nil {
			logger.Errorf("settings watcher stopped: %v", err)
		}
	}()
	w.Wait()
	return nil
}
