// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// DocRenderer converts doc string markdown into HTML markup.
type DocRenderer interface {
	RenderHTML(source string) (string, error)
}

// goldmarkRenderer converts CommonMark doc strings with goldmark.
type goldmarkRenderer struct {
	markdown goldmark.Markdown
}

// newGoldmarkRenderer builds the default doc string converter.
func newGoldmarkRenderer() *goldmarkRenderer {
	return &goldmarkRenderer{markdown: goldmark.New()}
}

// RenderHTML converts one markdown doc string to HTML.
func (r *goldmarkRenderer) RenderHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderDoc, err)
	}

	return buf.String(), nil
}
