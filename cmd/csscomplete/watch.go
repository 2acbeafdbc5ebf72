package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yacobolo/csscomplete"
	"github.com/yacobolo/csscomplete/internal/log"
)

// configChangeQuiet coalesces the burst of events a single save produces
const configChangeQuiet = 200 * time.Millisecond

// configWatcher calls onChange when the config file is written, created,
// renamed or removed.
type configWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *csscomplete.Debouncer
	done      chan struct{}
}

// watchConfig watches the directory holding path. Editors often save by
// replacing the file, which drops a watch placed on the file itself.
func watchConfig(path string, onChange func()) (*configWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	cw := &configWatcher{
		watcher:   w,
		debouncer: csscomplete.NewDebouncer(configChangeQuiet),
		done:      make(chan struct{}),
	}
	go cw.loop(abs, onChange)
	return cw, nil
}

func (cw *configWatcher) loop(target string, onChange func()) {
	defer close(cw.done)
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Config("Config file event: %s", event)
			cw.debouncer.Submit(onChange, nil)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Config("Watcher error: %v", err)
		}
	}
}

// Close stops watching and drops a pending notice
func (cw *configWatcher) Close() error {
	err := cw.watcher.Close()
	<-cw.done
	cw.debouncer.Stop()
	return err
}
