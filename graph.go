// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/goccy/go-graphviz"
)

// GraphRenderer lays out DOT text and returns SVG markup.
type GraphRenderer interface {
	RenderSVG(dot string) (string, error)
}

// BuildDOT serializes the named type table and extracted edges to Graphviz
// DOT text. Every node links to the matching in-page anchor through its href
// attribute, which Graphviz carries into the SVG output.
func BuildDOT(set *SchemaSet, edges []Edge) string {
	var buf bytes.Buffer
	buf.WriteString("digraph avrodoc {\n")
	for _, name := range set.Names() {
		fmt.Fprintf(&buf, "  %q [href=%q];\n", name, "#"+name)
	}

	for _, edge := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", edge.Source, edge.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// svgWidthRe matches the fixed point width Graphviz writes on the svg element.
var svgWidthRe = regexp.MustCompile(`svg width="\d+pt"`)

// graphvizRenderer renders DOT through the embedded Graphviz engine.
type graphvizRenderer struct{}

// RenderSVG lays out dot with the hierarchical "dot" engine and returns SVG
// with a page-relative width so the graph scales with the viewport.
func (graphvizRenderer) RenderSVG(dot string) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: init: %w", ErrRenderGraph, err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return "", fmt.Errorf("%w: parse dot: %w", ErrRenderGraph, err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderGraph, err)
	}

	return relativeWidth(buf.String()), nil
}

// relativeWidth replaces the fixed svg width attribute with a proportional one.
func relativeWidth(svg string) string {
	return svgWidthRe.ReplaceAllString(svg, `svg width="100%"`)
}
