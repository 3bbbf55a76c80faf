package main

import (
	"errors"
	"os"
	"path"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// AllowlistWatcher - apply an allowlist file and track it for updates
type AllowlistWatcher interface {
	Start() error
}

const (
	allowlistLoggerPrefix = "allowlist"
)

type allowlistWatcherData struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
}

func newAllowlistWatcher(targetFile string, log *logger.L) (AllowlistWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err.Error())
		return nil, err
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %v", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, errors.New("file does not exist")
	}

	return &allowlistWatcherData{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
	}, nil
}

func (w *allowlistWatcherData) Start() error {
	// initial application, a bad file blocks startup so the
	// operator notices immediately
	err := applyAllowlist(w.filePath)
	if nil != err {
		return err
	}

	err = w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %v, abort", err)
		return err
	}

	go func() {
		for {
			event := <-w.watcher.Events
			w.log.Infof("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Errorf("file %s removed, stop", w.filePath)
				close(w.change)
				return
			}

			if path.Base(event.Name) != path.Base(filepath.Clean(w.filePath)) {
				w.log.Infof("file %s not match, discard event", w.filePath)
				continue
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending allowlist change event...")
				w.sendEvent(w.change, "change")
			}
		}
	}()

	go w.reloadLoop()

	return nil
}

// a failed reload leaves the current allocations intact
func (w *allowlistWatcherData) reloadLoop() {
	for range w.change {
		err := applyAllowlist(w.filePath)
		if nil != err {
			w.log.Errorf("reload error: %s", err)
		}
	}
	w.log.Warn("allowlist reload stopped")
}

func (w *allowlistWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *allowlistWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" || event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
