// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// watchedFS reads the files in a directory and sends on the Changed
// channel the name of every read file that is later written on disk.
type watchedFS struct {
	root    string
	fsys    fs.FS
	watcher *fsnotify.Watcher
	Changed chan string
	Errors  chan error

	sync.Mutex
	watched map[string]bool
}

func newWatchedFS(root string) (*watchedFS, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	prefix := filepath.ToSlash(root)
	if prefix == "." {
		prefix = ""
	} else if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	w := &watchedFS{
		root:    root,
		fsys:    os.DirFS(root),
		watcher: watcher,
		Changed: make(chan string),
		Errors:  make(chan error),
		watched: map[string]bool{},
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					name := filepath.ToSlash(event.Name)
					w.Changed <- strings.TrimPrefix(name, prefix)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.Errors <- err
			}
		}
	}()
	return w, nil
}

func (w *watchedFS) Close() error {
	return w.watcher.Close()
}

// ReadFile reads the file with the given name and adds it to the watched
// files.
func (w *watchedFS) ReadFile(name string) ([]byte, error) {
	err := w.watch(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(w.fsys, name)
}

func (w *watchedFS) watch(name string) error {
	w.Lock()
	defer w.Unlock()
	if w.watched[name] {
		return nil
	}
	err := w.watcher.Add(filepath.FromSlash(path.Join(w.root, name)))
	if err != nil {
		return err
	}
	w.watched[name] = true
	return nil
}
