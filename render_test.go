// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// stubGraph is a GraphRenderer fake recording the DOT it received.
type stubGraph struct {
	dot string
	svg string
	err error
}

func (s *stubGraph) RenderSVG(dot string) (string, error) {
	s.dot = dot
	if s.err != nil {
		return "", s.err
	}

	if s.svg == "" {
		return `<svg width="100%"></svg>`, nil
	}

	return s.svg, nil
}

func fixedClock() time.Time {
	return time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
}

func renderFixture(t *testing.T, opt Options) string {
	t.Helper()

	if opt.Graph == nil {
		opt.Graph = &stubGraph{}
	}

	if opt.Now == nil {
		opt.Now = fixedClock
	}

	page, err := RenderFile("testdata/example.avsc", opt)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	return page
}

func TestRenderFileProducesFullDocument(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Fatalf("page should start with doctype: %q", page[:64])
	}

	if !strings.Contains(page, "Schema filename: <code>example.avsc</code>") {
		t.Fatal("footer should carry the schema filename")
	}

	if !strings.Contains(page, `datetime="2026-08-27T12:00:00Z"`) {
		t.Fatal("footer should carry the generation timestamp")
	}
}

func TestRenderOneSectionPerNamedType(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	if got := strings.Count(page, `<section class="schema"`); got != 5 {
		t.Fatalf("section count = %d, want 5", got)
	}

	anchors := []string{
		`id="org.example.payments.Transfer"`,
		`id="org.example.payments.Currency"`,
		`id="org.example.payments.Account"`,
		`id="org.example.payments.Annotation"`,
		`id="org.example.payments.Checksum"`,
	}
	for _, anchor := range anchors {
		if !strings.Contains(page, anchor) {
			t.Fatalf("page missing section anchor %s", anchor)
		}
	}
}

func TestRenderSectionOrderFollowsTable(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	last := -1
	for _, anchor := range []string{
		`id="org.example.payments.Transfer"`,
		`id="org.example.payments.Currency"`,
		`id="org.example.payments.Account"`,
		`id="org.example.payments.Annotation"`,
		`id="org.example.payments.Checksum"`,
	} {
		index := strings.Index(page, anchor)
		if index < 0 {
			t.Fatalf("page missing %s", anchor)
		}

		if index < last {
			t.Fatalf("section %s out of table order", anchor)
		}

		last = index
	}
}

func TestRenderDefaultCells(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	if !strings.Contains(page, "<td><samp>null</samp></td>") {
		t.Fatal("explicit null default should render the null marker")
	}

	if !strings.Contains(page, "<td>0</td>") {
		t.Fatal("zero default should render literal 0")
	}

	if !strings.Contains(page, "<td></td>") {
		t.Fatal("absent default should render an empty cell")
	}
}

func TestRenderUnionTypeCell(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	want := `<span class="type"><a href="https://avro.apache.org/docs/1.11.1/specification/#unions">union</a>` +
		`[<span class="type">null</span>|<span class="type">string</span>]</span>`
	if !strings.Contains(page, want) {
		t.Fatal("union type cell should join branch renders with |")
	}
}

func TestRenderEnumSymbols(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	for _, symbol := range []string{"EUR", "USD", "GBP"} {
		if !strings.Contains(page, "<li><samp>"+symbol+"</samp></li>") {
			t.Fatalf("enum section missing symbol %q", symbol)
		}
	}
}

func TestRenderFixedSizeNote(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	if !strings.Contains(page, "Fixed type 16 bytes in size.") {
		t.Fatal("fixed section should state its byte size")
	}
}

func TestRenderMissingDocPlaceholder(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	if !strings.Contains(page, "<i>missing</i>") {
		t.Fatal("undocumented entries should render the missing placeholder")
	}
}

func TestRenderDocStringsThroughMarkdown(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	if !strings.Contains(page, "<strong>transfer</strong>") {
		t.Fatal("schema doc markdown should convert to HTML")
	}
}

func TestRenderFieldAnchors(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	if !strings.Contains(page, `id="org.example.payments.Transfer.memo"`) {
		t.Fatal("field rows should carry schema.field anchors")
	}
}

func TestRenderTitleOverride(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{Title: "Payments"})
	if !strings.Contains(page, "<title>Payments (avrodoc)</title>") {
		t.Fatal("title override should replace the filename in the page title")
	}

	if !strings.Contains(page, "<h1>Payments</h1>") {
		t.Fatal("title override should become the page heading")
	}
}

func TestRenderDefaultTitleUsesFilename(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{})
	if !strings.Contains(page, "<title>example.avsc (avrodoc)</title>") {
		t.Fatal("default title should derive from the schema filename")
	}
}

func TestRenderVersionInFooter(t *testing.T) {
	t.Parallel()

	page := renderFixture(t, Options{Version: "1.2.3"})
	if !strings.Contains(page, `<p id="schema-version">Schema version: <code>1.2.3</code></p>`) {
		t.Fatal("footer should carry the schema version")
	}

	page = renderFixture(t, Options{})
	if strings.Contains(page, `id="schema-version"`) {
		t.Fatal("footer should omit version paragraph when no version is set")
	}
}

func TestRenderPassesDOTToGraphRenderer(t *testing.T) {
	t.Parallel()

	stub := &stubGraph{}
	renderFixture(t, Options{Graph: stub})
	if !strings.Contains(stub.dot, `"org.example.payments.Transfer" [href="#org.example.payments.Transfer"];`) {
		t.Fatalf("graph renderer received unexpected dot:\n%s", stub.dot)
	}
}

func TestRenderEmbedsGraphSVG(t *testing.T) {
	t.Parallel()

	stub := &stubGraph{svg: `<svg width="100%"><g id="graph-marker"/></svg>`}
	page := renderFixture(t, Options{Graph: stub})
	if !strings.Contains(page, `<g id="graph-marker"/>`) {
		t.Fatal("graph SVG should embed unescaped in the figure")
	}
}

func TestRenderGraphFailureAborts(t *testing.T) {
	t.Parallel()

	stub := &stubGraph{err: ErrRenderGraph}
	_, err := RenderFile("testdata/example.avsc", Options{Graph: stub, Now: fixedClock})
	if !errors.Is(err, ErrRenderGraph) {
		t.Fatalf("error = %v, want ErrRenderGraph", err)
	}
}

func TestRenderFileMissing(t *testing.T) {
	t.Parallel()

	_, err := RenderFile("testdata/absent.avsc", Options{Graph: &stubGraph{}})
	if !errors.Is(err, ErrReadSchemaFile) {
		t.Fatalf("error = %v, want ErrReadSchemaFile", err)
	}
}

func TestRenderSourcePathFallback(t *testing.T) {
	t.Parallel()

	page, err := Render(readFixture(t), Options{Graph: &stubGraph{}, Now: fixedClock})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(page, "Schema filename: <code>(memory)</code>") {
		t.Fatal("in-memory renders should mark the missing source path")
	}
}
