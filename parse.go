// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import (
	"encoding/json"
	"fmt"

	"github.com/hamba/avro/v2"
)

// SchemaSet holds the root schema and every named type collected from it,
// keyed by fully-qualified name and ordered by declaration.
type SchemaSet struct {
	types map[string]avro.NamedSchema
	names []string

	// Root is the parsed root schema of the document.
	Root avro.Schema
}

// Parse decodes schema text and collects all named types.
//
// Malformed JSON yields ErrDecodeSchema carrying the offending text and the
// underlying decoder message. Valid JSON that violates Avro schema rules
// (unknown type tag, duplicate or invalid name, invalid enum symbol,
// malformed logical type) yields ErrParseSchema.
func Parse(schemaBytes []byte) (*SchemaSet, error) {
	var decoded any
	if err := json.Unmarshal(schemaBytes, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeSchema, string(schemaBytes), err)
	}

	// Fresh cache per invocation keeps parsing pure across calls.
	root, err := avro.ParseBytesWithCache(schemaBytes, "", &avro.SchemaCache{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseSchema, err)
	}

	set := &SchemaSet{
		types: make(map[string]avro.NamedSchema),
		Root:  root,
	}
	set.collect(root)
	return set, nil
}

// Names returns fully-qualified type names in declaration order.
func (s *SchemaSet) Names() []string {
	return s.names
}

// Get returns the named type for a fully-qualified name.
func (s *SchemaSet) Get(name string) (avro.NamedSchema, bool) {
	schema, ok := s.types[name]
	return schema, ok
}

// Len returns the number of collected named types.
func (s *SchemaSet) Len() int {
	return len(s.names)
}

// collect walks the schema tree depth-first and records named types at their
// definition site. References point at already-recorded definitions.
func (s *SchemaSet) collect(schema avro.Schema) {
	switch typed := schema.(type) {
	case *avro.RefSchema:
	case *avro.RecordSchema:
		if !s.add(typed) {
			return
		}

		for _, field := range typed.Fields() {
			s.collect(field.Type())
		}
	case *avro.EnumSchema:
		s.add(typed)
	case *avro.FixedSchema:
		s.add(typed)
	case *avro.ArraySchema:
		s.collect(typed.Items())
	case *avro.MapSchema:
		s.collect(typed.Values())
	case *avro.UnionSchema:
		for _, branch := range typed.Types() {
			s.collect(branch)
		}
	}
}

// add records one named type and reports whether it was seen for the first time.
func (s *SchemaSet) add(schema avro.NamedSchema) bool {
	name := schema.FullName()
	if _, ok := s.types[name]; ok {
		return false
	}

	s.types[name] = schema
	s.names = append(s.names, name)
	return true
}
