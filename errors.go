// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema text is not valid JSON.
	ErrDecodeSchema = errors.New("decode schema json")
	// ErrParseSchema is returned when JSON is valid but violates Avro schema rules.
	ErrParseSchema = errors.New("parse avro schema")
	// ErrUnknownSpecURL is returned when a kind or logical type name has no specification URL.
	ErrUnknownSpecURL = errors.New("no specification url for type")
	// ErrRenderGraph is returned when dependency graph layout or rendering fails.
	ErrRenderGraph = errors.New("render dependency graph")
	// ErrRenderDoc is returned when doc string markdown conversion fails.
	ErrRenderDoc = errors.New("render doc string")
	// ErrExecuteTemplate is returned when HTML page template execution fails.
	ErrExecuteTemplate = errors.New("execute page template")
)
