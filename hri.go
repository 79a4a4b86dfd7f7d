/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1encode

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// HRIText renders ctx's currently extracted AI list as human-readable
// interpretation (HRI) text: one "(ai) value" line per extracted AI, in
// extraction order, with the registry title appended as a trailing comment
// when it is non-empty and includeTitles is set.
//
// Every ingestion path (including a Digital Link URI, whose percent-decoded
// values pass through element-string processing) checks each value against
// its CSET82/numeric rule, so extracted values are ASCII. HRIText does not
// re-check this: any line whose value is not valid UTF-8 is transcoded from
// ISO 8859-1
// (Latin-1) before being appended, since that is the encoding real-world
// deployments of the free-text 4300-series AIs (ship-to name/address) most
// commonly use and it can represent every byte value, so the transcode
// never fails.
func HRIText(ctx *Context, includeTitles bool) []string {
	extracted := ctx.GetExtractedAIs()
	lines := make([]string, 0, len(extracted))

	for _, e := range extracted {
		value := e.Value
		if !utf8.ValidString(value) {
			value = latin1ToUTF8(value)
		}

		var line strings.Builder
		line.WriteByte('(')
		line.WriteString(e.AI)
		line.WriteString(") ")
		line.WriteString(value)

		if includeTitles && e.Title != "" {
			line.WriteString("  # ")
			line.WriteString(e.Title)
		}

		lines = append(lines, line.String())
	}

	return lines
}

// latin1ToUTF8 reinterprets s's bytes as ISO 8859-1 and returns the
// equivalent, always-valid UTF-8 string.
func latin1ToUTF8(s string) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		// ISO 8859-1 maps every byte value to a Unicode code point, so the
		// decoder cannot fail; this is unreachable in practice.
		return s
	}
	return decoded
}
