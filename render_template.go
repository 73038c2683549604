// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import (
	"embed"
	"html/template"
)

// templateFS stores the built-in page template embedded into the package.
//
//go:embed templates/page.html.gotmpl
var templateFS embed.FS

// pageTemplate is the parsed HTML page template.
var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.gotmpl"))
