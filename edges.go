// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import "github.com/hamba/avro/v2"

// Edge is one "source references target" pair between named types.
type Edge struct {
	Source string
	Target string
}

// ExtractEdges walks record fields and collects references to other named
// types: a named field type, a named array item type, or every named branch
// of a union. Primitives and maps contribute no edges.
//
// Edges follow field declaration order within each record, records follow
// table order. Self-loops and parallel edges are preserved; nothing is
// deduplicated.
func ExtractEdges(set *SchemaSet) []Edge {
	edges := make([]Edge, 0, set.Len())
	for _, name := range set.Names() {
		schema, ok := set.Get(name)
		if !ok {
			continue
		}

		record, ok := schema.(*avro.RecordSchema)
		if !ok {
			continue
		}

		for _, field := range record.Fields() {
			edges = append(edges, fieldEdges(name, field.Type())...)
		}
	}

	return edges
}

// fieldEdges collects edges contributed by one field type.
func fieldEdges(source string, schema avro.Schema) []Edge {
	switch typed := schema.(type) {
	case *avro.ArraySchema:
		if target, ok := namedTarget(typed.Items()); ok {
			return []Edge{{Source: source, Target: target}}
		}
	case *avro.UnionSchema:
		edges := make([]Edge, 0, len(typed.Types()))
		for _, branch := range typed.Types() {
			if target, ok := namedTarget(branch); ok {
				edges = append(edges, Edge{Source: source, Target: target})
			}
		}

		return edges
	default:
		if target, ok := namedTarget(schema); ok {
			return []Edge{{Source: source, Target: target}}
		}
	}

	return nil
}

// namedTarget resolves a schema to a fully-qualified named type, unwrapping
// references to their definition.
func namedTarget(schema avro.Schema) (string, bool) {
	switch typed := schema.(type) {
	case *avro.RefSchema:
		return typed.Schema().FullName(), true
	case avro.NamedSchema:
		return typed.FullName(), true
	default:
		return "", false
	}
}
