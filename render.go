// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// toolVersion is reported in the page footer attribution.
	toolVersion = "0.1.0"
	// toolURL is the project homepage linked from the footer.
	toolURL = "https://github.com/woozymasta/avrodoc"
	// missingDocPlaceholder marks absent doc strings in rendered sections.
	missingDocPlaceholder = "missing"
)

// RenderFile reads a schema from file and renders the HTML reference page.
func RenderFile(path string, opt Options) (string, error) {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	if strings.TrimSpace(opt.SourcePath) == "" {
		opt.SourcePath = filepath.Base(path)
	}

	return Render(schemaBytes, opt)
}

// Render converts schema bytes into one self-contained HTML document:
// parse, extract edges, render the dependency graph, then execute the page
// template. Any stage failure aborts the render.
func Render(schemaBytes []byte, opt Options) (string, error) {
	opt = opt.withDefaults()

	set, err := Parse(schemaBytes)
	if err != nil {
		return "", err
	}

	graphSVG, err := opt.Graph.RenderSVG(BuildDOT(set, ExtractEdges(set)))
	if err != nil {
		return "", err
	}

	view, err := buildPageView(set, graphSVG, opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := pageTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	return out.String(), nil
}
