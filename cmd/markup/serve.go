// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	markuplib "github.com/open2b/markup"
	"github.com/open2b/markup/native"

	"github.com/yuin/goldmark"
)

// serve runs a web server that renders the files in the root directory as
// HTML pages. Markdown files are converted to HTML, every other file is
// escaped and shown as text. Rendered pages are cached and a page is
// evicted from the cache when its file changes on disk.
func serve(addr string) error {

	conf, err := readConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		conf.Addr = addr
	}

	fsys, err := newWatchedFS(conf.Root)
	if err != nil {
		return err
	}
	defer fsys.Close()

	srv := &server{
		fsys:  fsys,
		title: conf.Title,
		pages: map[string]native.HTML{},
	}
	go func() {
		for {
			select {
			case name := <-fsys.Changed:
				srv.Lock()
				delete(srv.pages, name)
				srv.Unlock()
			case err := <-fsys.Errors:
				srv.logf("%v", err)
			}
		}
	}()

	s := &http.Server{
		Addr:           conf.Addr,
		Handler:        srv,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	fmt.Fprintf(os.Stderr, "Web server is available at http://localhost%s/\n", conf.Addr)
	fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop\n\n")

	return s.ListenAndServe()
}

// readFileFS is implemented by the file systems the server reads the
// served files from.
type readFileFS interface {
	ReadFile(name string) ([]byte, error)
}

type server struct {
	fsys  readFileFS
	title string

	sync.Mutex
	pages map[string]native.HTML
}

func (srv *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	name := r.URL.Path[1:]
	if name == "" || strings.HasSuffix(name, "/") {
		name += "index.md"
	}
	if !fs.ValidPath(name) {
		http.NotFound(w, r)
		return
	}

	srv.Lock()
	page, ok := srv.pages[name]
	srv.Unlock()

	if !ok {
		var err error
		page, err = srv.render(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			srv.logf("%s", err)
			return
		}
		srv.Lock()
		srv.pages[name] = page
		srv.Unlock()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write([]byte(page))
	if err != nil {
		srv.logf("%s", err)
	}
}

// render renders the file with the given name as a safe HTML page. The
// content of a Markdown file is converted to HTML and trusted as it is;
// any other file is escaped.
func (srv *server) render(name string) (native.HTML, error) {
	src, err := srv.fsys.ReadFile(name)
	if err != nil {
		return "", err
	}
	var body native.HTML
	if ext := path.Ext(name); ext == ".md" || ext == ".markdown" {
		var b bytes.Buffer
		err = goldmark.Convert(src, &b)
		if err != nil {
			return "", err
		}
		body = native.HTML(b.String())
	} else {
		escaped, err := markuplib.Escape(string(src))
		if err != nil {
			return "", err
		}
		body = "<pre>" + escaped + "</pre>"
	}
	title, err := markuplib.Escape(srv.title + " - " + name)
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html>\n<html>\n<head><title>" + title + "</title></head>\n<body>\n" +
		body + "\n</body>\n</html>\n", nil
}

func (srv *server) logf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}
