// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import (
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"strings"
	"time"

	"github.com/hamba/avro/v2"
)

// pageView is the root view model passed to the HTML page template.
type pageView struct {
	PageTitle      string
	Heading        string
	GraphSVG       template.HTML
	Sections       []sectionView
	Filename       string
	SchemaVersion  string
	GeneratedLabel string
	GeneratedISO   string
	ToolVersion    string
	ToolURL        string
}

// sectionView represents one named type section.
type sectionView struct {
	FullName  string
	Kind      string
	KindURL   string
	Doc       template.HTML
	Symbols   []string
	Fields    []fieldView
	FixedSize int
	IsEnum    bool
	IsRecord  bool
	IsFixed   bool
}

// fieldView represents one row of a record field table.
type fieldView struct {
	ID      string
	Name    string
	Doc     template.HTML
	Type    template.HTML
	Default template.HTML
}

// buildPageView assembles the full page view model from the named type table.
func buildPageView(set *SchemaSet, graphSVG string, opt Options) (pageView, error) {
	filename := strings.TrimSpace(opt.SourcePath)
	if filename == "" {
		filename = "(memory)"
	}

	title := strings.TrimSpace(opt.Title)
	pageTitle := title
	if pageTitle == "" {
		pageTitle = filename
	}

	pageTitle += " (avrodoc)"

	heading := title
	if heading == "" {
		heading = pageTitle
	}

	now := opt.Now().UTC()
	view := pageView{
		PageTitle:      pageTitle,
		Heading:        heading,
		GraphSVG:       template.HTML(graphSVG),
		Sections:       make([]sectionView, 0, set.Len()),
		Filename:       filename,
		SchemaVersion:  strings.TrimSpace(opt.Version),
		GeneratedLabel: now.Format(time.UnixDate),
		GeneratedISO:   now.Format(time.RFC3339),
		ToolVersion:    toolVersion,
		ToolURL:        toolURL,
	}

	for _, name := range set.Names() {
		schema, ok := set.Get(name)
		if !ok {
			continue
		}

		section, err := buildSectionView(schema, opt.Doc)
		if err != nil {
			return pageView{}, err
		}

		view.Sections = append(view.Sections, section)
	}

	return view, nil
}

// buildSectionView renders one named type into its section view.
func buildSectionView(schema avro.NamedSchema, docs DocRenderer) (sectionView, error) {
	kind := string(schema.Type())
	kindURL, err := specificationURL(kind)
	if err != nil {
		return sectionView{}, err
	}

	doc, err := docHTML(namedDoc(schema), docs)
	if err != nil {
		return sectionView{}, err
	}

	section := sectionView{
		FullName: schema.FullName(),
		Kind:     kind,
		KindURL:  kindURL,
		Doc:      doc,
	}

	switch typed := schema.(type) {
	case *avro.EnumSchema:
		section.IsEnum = true
		section.Symbols = typed.Symbols()
	case *avro.FixedSchema:
		section.IsFixed = true
		section.FixedSize = typed.Size()
	case *avro.RecordSchema:
		section.IsRecord = true
		section.Fields = make([]fieldView, 0, len(typed.Fields()))
		for _, field := range typed.Fields() {
			row, err := buildFieldView(typed.FullName(), field, docs)
			if err != nil {
				return sectionView{}, err
			}

			section.Fields = append(section.Fields, row)
		}
	}

	return section, nil
}

// buildFieldView renders one record field into its table row view.
func buildFieldView(schemaName string, field *avro.Field, docs DocRenderer) (fieldView, error) {
	doc, err := docHTML(field.Doc(), docs)
	if err != nil {
		return fieldView{}, err
	}

	typeCell, err := fieldTypeHTML(field.Type())
	if err != nil {
		return fieldView{}, err
	}

	return fieldView{
		ID:      schemaName + "." + field.Name(),
		Name:    field.Name(),
		Doc:     doc,
		Type:    template.HTML(typeCell),
		Default: defaultHTML(field),
	}, nil
}

// fieldTypeHTML renders one field type recursively: named types as anchor
// links, arrays and unions with bracketed nested renders, logical types as
// specification links, and any other primitive as its bare type name.
func fieldTypeHTML(schema avro.Schema) (string, error) {
	var buf strings.Builder
	buf.WriteString(`<span class="type">`)

	switch typed := schema.(type) {
	case *avro.RefSchema:
		writeAnchor(&buf, typed.Schema().FullName())
	case *avro.ArraySchema:
		url, err := specificationURL("array")
		if err != nil {
			return "", err
		}

		writeLink(&buf, url, "array")
		buf.WriteString("[")
		inner, err := fieldTypeHTML(typed.Items())
		if err != nil {
			return "", err
		}

		buf.WriteString(inner)
		buf.WriteString("]")
	case *avro.UnionSchema:
		url, err := specificationURL("union")
		if err != nil {
			return "", err
		}

		writeLink(&buf, url, "union")
		buf.WriteString("[")
		for i, branch := range typed.Types() {
			if i != 0 {
				buf.WriteString("|")
			}

			inner, err := fieldTypeHTML(branch)
			if err != nil {
				return "", err
			}

			buf.WriteString(inner)
		}

		buf.WriteString("]")
	case avro.NamedSchema:
		writeAnchor(&buf, typed.FullName())
	default:
		if logical := logicalTypeName(schema); logical != "" {
			url, err := specificationURL(logical)
			if err != nil {
				return "", err
			}

			writeLink(&buf, url, logical)
		} else {
			buf.WriteString(html.EscapeString(string(schema.Type())))
		}
	}

	buf.WriteString("</span>")
	return buf.String(), nil
}

// writeAnchor writes an in-page anchor link for a fully-qualified name.
func writeAnchor(buf *strings.Builder, fullName string) {
	writeLink(buf, "#"+fullName, fullName)
}

// writeLink writes one escaped hyperlink.
func writeLink(buf *strings.Builder, href, text string) {
	buf.WriteString(`<a href="`)
	buf.WriteString(html.EscapeString(href))
	buf.WriteString(`">`)
	buf.WriteString(html.EscapeString(text))
	buf.WriteString("</a>")
}

// docHTML converts a doc string through the markdown renderer or emits the
// emphasized missing placeholder.
func docHTML(doc string, docs DocRenderer) (template.HTML, error) {
	if strings.TrimSpace(doc) == "" {
		return template.HTML("<i>" + missingDocPlaceholder + "</i>"), nil
	}

	converted, err := docs.RenderHTML(doc)
	if err != nil {
		return "", err
	}

	return template.HTML(converted), nil
}

// defaultHTML renders the tri-state field default: empty cell when no
// default is declared, a literal null marker for an explicit null, the value
// otherwise.
func defaultHTML(field *avro.Field) template.HTML {
	if !field.HasDefault() {
		return ""
	}

	if field.Default() == nil {
		return template.HTML("<samp>null</samp>")
	}

	return template.HTML(html.EscapeString(defaultText(field.Default())))
}

// defaultText formats one non-null default value: strings verbatim,
// everything else as inline JSON.
func defaultText(value any) string {
	if text, ok := value.(string); ok {
		return text
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

// namedDoc extracts the doc string from named types that declare one.
func namedDoc(schema avro.NamedSchema) string {
	type documented interface {
		Doc() string
	}

	if typed, ok := schema.(documented); ok {
		return typed.Doc()
	}

	return ""
}

// logicalTypeName returns the logical type annotation name, if any.
func logicalTypeName(schema avro.Schema) string {
	type logicalTyped interface {
		Logical() avro.LogicalSchema
	}

	typed, ok := schema.(logicalTyped)
	if !ok {
		return ""
	}

	logical := typed.Logical()
	if logical == nil {
		return ""
	}

	return string(logical.Type())
}
