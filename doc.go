// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

/*
Package avrodoc renders a self-contained HTML reference page for an Apache
Avro schema document.

Every named type in the schema (record, enum, fixed) gets its own section
documenting fields, types, defaults, and doc strings, and the page embeds an
SVG dependency graph between the named types.

Basic render from schema bytes:

	schemaBytes, err := os.ReadFile("schema.avsc")
	if err != nil {
		return err
	}

	page, err := avrodoc.Render(schemaBytes, avrodoc.Options{
		Title:      "Event Schemas",
		SourcePath: "schema.avsc",
	})
	if err != nil {
		return err
	}

	fmt.Println(page)

Render directly from file:

	page, err := avrodoc.RenderFile("schema.avsc", avrodoc.Options{})
	if err != nil {
		return err
	}

	fmt.Println(page)

Doc strings pass through a markdown converter and the dependency graph is
laid out with Graphviz; both sit behind narrow interfaces (DocRenderer,
GraphRenderer) on Options so callers and tests can substitute their own.
*/
package avrodoc
