package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/achilleasa/spheretrace/asset"
	"github.com/achilleasa/spheretrace/log"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

var errRemoteWatch = errors.New("watch mode requires a local scene file")

// A sceneWatcher reports debounced changes to a single file. It watches the
// parent directory so that editors which replace the file on save are also
// picked up.
type sceneWatcher struct {
	logger  log.Logger
	watcher *fsnotify.Watcher

	path     string
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer

	// Receives a value after the file settles.
	Changed chan struct{}
	done    chan struct{}
}

func newSceneWatcher(file string, debounce time.Duration) (*sceneWatcher, error) {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err = watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	sw := &sceneWatcher{
		logger:   log.New("watcher"),
		watcher:  watcher,
		path:     absPath,
		debounce: debounce,
		Changed:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

func (sw *sceneWatcher) run() {
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				sw.logger.Debugf("%s: %s", event.Op, event.Name)
				sw.schedule()
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.logger.Warningf("watch error: %v", err)
		case <-sw.done:
			return
		}
	}
}

// Restart the debounce timer.
func (sw *sceneWatcher) schedule() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.timer = time.AfterFunc(sw.debounce, func() {
		select {
		case sw.Changed <- struct{}{}:
		default:
		}
	})
}

// Stop watching.
func (sw *sceneWatcher) Close() error {
	sw.mu.Lock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.mu.Unlock()

	close(sw.done)
	return sw.watcher.Close()
}

// Invoke render each time the scene file changes until the process is
// interrupted. Render errors are logged and do not stop the loop.
func watchScene(sceneFile string, render func() error) error {
	res, err := asset.NewResource(sceneFile, nil)
	if err != nil {
		return err
	}
	localPath := res.LocalPath()
	res.Close()
	if localPath == "" {
		return errRemoteWatch
	}

	sw, err := newSceneWatcher(localPath, watchDebounce)
	if err != nil {
		return err
	}
	defer sw.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	logger.Noticef("watching %s for changes; press ctrl+c to exit", localPath)
	for {
		select {
		case <-sw.Changed:
			logger.Noticef("scene changed; re-rendering")
			if err := render(); err != nil {
				logger.Errorf("render failed: %v", err)
			}
		case sig := <-sigChan:
			logger.Noticef("received %s; exiting", sig)
			return nil
		}
	}
}
