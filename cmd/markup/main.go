// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	markup(os.Args...)
}

// TestEnvironment is true when testing the markup command, false otherwise.
var TestEnvironment = false

// exit causes the current program to exit with the given status code. If
// running in a test environment, every exit call is a no-op.
func exit(status int) {
	if !TestEnvironment {
		os.Exit(status)
	}
}

// stderr prints lines on stderr.
func stderr(lines ...string) {
	for _, l := range lines {
		fmt.Fprint(os.Stderr, l+"\n")
	}
}

// exitError prints msg on stderr with a bold red color and exits with
// status code 1.
func exitError(format string, a ...interface{}) {
	msg := fmt.Errorf(format, a...)
	stderr("\033[1;31m"+msg.Error()+"\033[0m", `exit status 1`)
	exit(1)
}

// markup runs command 'markup' with given args. The first argument must be
// the executable name.
func markup(args ...string) {
	flag.Usage = commandsHelp["markup"]

	// No command provided.
	if len(args) == 1 {
		flag.Usage()
		exit(0)
		return
	}

	cmdArg := args[1]

	// Used by flag.Parse.
	os.Args = append(args[:1], args[2:]...)

	cmd, ok := commands[cmdArg]
	if !ok {
		stderr(
			fmt.Sprintf("markup %s: unknown command", cmdArg),
			`Run 'markup help' for usage.`,
		)
		exit(1)
		return
	}
	cmd()
}

// commandsHelp maps a command name to a function that prints help for that
// command.
var commandsHelp = map[string]func(){
	"markup": func() {
		stderr(
			`Markup is a tool for previewing how text is escaped in HTML`,
			``,
			`Usage:`,
			``,
			`	   markup <command> [arguments]`,
			``,
			`The commands are:`,
			``,
			`	   serve       run a web server that shows local files as escaped HTML pages`,
			`	   version     print Markup version`,
			``,
			`Use "markup help <command>" for more information about a command.`,
		)
		flag.PrintDefaults()
	},
	"serve": func() {
		stderr(
			`usage: markup serve [-addr address]`,
			``,
			`Serve runs a web server that renders the files in the root directory as`,
			`HTML pages. Markdown files are converted to HTML, every other file is`,
			`escaped and shown as text. When a served file changes on disk, its page`,
			`is rendered again on the next request.`,
			``,
			`The server reads its configuration from the markup.yaml file in the`,
			`current directory, if it exists.`,
			``,
			`The -addr flag sets the listen address, overriding the configuration.`,
		)
	},
	"version": func() {
		stderr(
			`usage: markup version`,
		)
	},
}

// commands maps a command name to a function that executes the command.
var commands = map[string]func(){
	"help": func() {
		if len(os.Args) == 1 {
			flag.Usage()
			exit(0)
			return
		}
		name := os.Args[1]
		if help, ok := commandsHelp[name]; ok {
			help()
			exit(0)
		} else {
			stderr(
				fmt.Sprintf("markup help %s: unknown help topic", name),
				`Run 'markup help'.`,
			)
			exit(1)
		}
	},
	"serve": func() {
		addr := flag.String("addr", "", "listen address, overrides the configuration")
		flag.Parse()
		err := serve(*addr)
		if err != nil {
			exitError("%s", err)
		}
	},
	"version": func() {
		fmt.Printf("markup version %s\n", version)
	},
}
