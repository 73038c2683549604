// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import "time"

// Options configures one documentation render.
type Options struct {
	// Title overrides the schema filename in the page title and header.
	Title string
	// Version is an optional schema version string shown in the footer.
	Version string
	// SourcePath is the schema origin shown in the footer; RenderFile fills
	// it with the file basename when empty.
	SourcePath string
	// Graph lays out and renders the dependency graph; defaults to the
	// embedded Graphviz engine.
	Graph GraphRenderer
	// Doc converts doc string markdown to HTML; defaults to goldmark.
	Doc DocRenderer
	// Now supplies the footer generation timestamp; defaults to time.Now.
	Now func() time.Time
}

// withDefaults fills unset collaborators with their default implementations.
func (opt Options) withDefaults() Options {
	if opt.Graph == nil {
		opt.Graph = graphvizRenderer{}
	}

	if opt.Doc == nil {
		opt.Doc = newGoldmarkRenderer()
	}

	if opt.Now == nil {
		opt.Now = time.Now
	}

	return opt
}
