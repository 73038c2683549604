// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/avrodoc

package avrodoc

import "fmt"

// specificationURLs maps Avro kind and logical type names to their entries
// in the Avro specification. Lookups for names outside this table fail; the
// kind set is closed by the specification.
var specificationURLs = map[string]string{
	"decimal":                "https://avro.apache.org/docs/1.11.1/specification/#decimal",
	"uuid":                   "https://avro.apache.org/docs/1.11.1/specification/#uuid",
	"date":                   "https://avro.apache.org/docs/1.11.1/specification/#date",
	"time-millis":            "https://avro.apache.org/docs/1.11.1/specification/#time-millisecond-precision",
	"time-micros":            "https://avro.apache.org/docs/1.11.1/specification/#time-microsecond-precision",
	"timestamp-millis":       "https://avro.apache.org/docs/1.11.1/specification/#timestamp-millisecond-precision",
	"timestamp-micros":       "https://avro.apache.org/docs/1.11.1/specification/#timestamp-microsecond-precision",
	"local-timestamp-millis": "https://avro.apache.org/docs/1.11.1/specification/#local-timestamp-millisecond-precision",
	"local-timestamp-micros": "https://avro.apache.org/docs/1.11.1/specification/#local-timestamp-microsecond-precision",
	"duration":               "https://avro.apache.org/docs/1.11.1/specification/#duration",
	"record":                 "https://avro.apache.org/docs/1.11.1/specification/#schema-record",
	"enum":                   "https://avro.apache.org/docs/1.11.1/specification/#enums",
	"array":                  "https://avro.apache.org/docs/1.11.1/specification/#arrays",
	"map":                    "https://avro.apache.org/docs/1.11.1/specification/#maps",
	"union":                  "https://avro.apache.org/docs/1.11.1/specification/#unions",
	"fixed":                  "https://avro.apache.org/docs/1.11.1/specification/#fixed",
}

// specificationURL resolves one kind or logical type name to its
// specification URL and fails for unregistered names.
func specificationURL(name string) (string, error) {
	url, ok := specificationURLs[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownSpecURL, name)
	}

	return url, nil
}
