// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

// avrodoc renders an HTML reference page for an Avro schema to stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/avrodoc"
)

// cliOptions describes avrodoc CLI flags and the schema file argument.
type cliOptions struct {
	SchemaTitle   string `long:"schema-title" description:"Document title override" default:""`
	SchemaVersion string `long:"schema-version" description:"Schema version shown in the page footer" default:""`

	Args struct {
		Schema string `positional-arg-name:"avsc" description:"Avro schema file path" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	options := &cliOptions{}
	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = programName()

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			if flagErr.Type == flags.ErrHelp {
				_, _ = fmt.Fprintln(stdout, err.Error())
				return 0
			}

			_, _ = fmt.Fprintln(stderr, err.Error())
			return 2
		}

		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	logger := newLogger(stderr)
	logger.Debug("rendering schema documentation", "file", options.Args.Schema)

	page, err := avrodoc.RenderFile(options.Args.Schema, avrodoc.Options{
		Title:   options.SchemaTitle,
		Version: options.SchemaVersion,
	})
	if err != nil {
		logger.Error("documentation generation failed", "err", err)
		return 1
	}

	if _, err := fmt.Fprintln(stdout, page); err != nil {
		logger.Error("write html to stdout", "err", err)
		return 1
	}

	return 0
}

// newLogger creates the stderr diagnostics logger.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
}

// programName derives the CLI name for usage output.
func programName() string {
	name := strings.TrimSpace(os.Args[0])
	if name == "" {
		return "avrodoc"
	}

	return filepath.Base(name)
}
