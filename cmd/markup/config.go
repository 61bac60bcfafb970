// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the configuration of the serve command.
type config struct {
	// Addr is the listen address of the web server.
	Addr string `yaml:"addr"`
	// Root is the directory containing the files to serve.
	Root string `yaml:"root"`
	// Title is the title of the rendered pages.
	Title string `yaml:"title"`
}

// readConfig reads the configuration from the markup.yaml file in the
// current directory. If the file does not exist, or an option is not set,
// the default values are used.
func readConfig() (config, error) {
	conf := config{
		Addr:  ":8080",
		Root:  ".",
		Title: "Markup preview",
	}
	data, err := os.ReadFile("markup.yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return conf, err
	}
	var read config
	if err := yaml.Unmarshal(data, &read); err != nil {
		return conf, fmt.Errorf("cannot read markup.yaml: %s", err)
	}
	if read.Addr != "" {
		conf.Addr = read.Addr
	}
	if read.Root != "" {
		conf.Root = read.Root
	}
	if read.Title != "" {
		conf.Title = read.Title
	}
	return conf, nil
}
