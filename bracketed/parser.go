/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bracketed

import (
	"strings"

	"github.com/pkg/errors"

	"gs1encode/ai"
)

// Parse converts a bracketed AI string, e.g. "(01)00888446671424(10)ABC123",
// into the canonical FNC1-delimited element string
// "#010088844667142410ABC123" (no "#" after the fixed-length AI 01) and
// validates every extracted AI along the way.
//
// A literal "(" inside a value is written as "\(".
func Parse(aiData string) ([]ai.ExtractedAI, error) {
	dataStr, err := toElementString(aiData)
	if err != nil {
		return nil, err
	}
	return ai.ProcessElementString(dataStr)
}

// toElementString performs the bracketed-to-canonical rewrite without
// running the element-string processor, so intermediate parse failures can
// be reported before validation is attempted.
func toElementString(aiData string) (string, error) {
	var out strings.Builder
	fnc1req := true

	p := aiData
	for len(p) > 0 {
		if p[0] != '(' {
			return "", errors.New("Failed to parse AI data")
		}
		p = p[1:]

		closeIdx := strings.IndexByte(p, ')')
		if closeIdx < 0 {
			return "", errors.New("Failed to parse AI data")
		}
		aiKey := p[:closeIdx]
		rest := p[closeIdx+1:]

		entry, ok := ai.Lookup(aiKey, len(aiKey))
		if !ok {
			trunc := aiKey
			if len(trunc) > 4 {
				trunc = trunc[:4]
			}
			return "", errors.Errorf("Unrecognised AI: %s", trunc)
		}

		if fnc1req {
			out.WriteByte('#')
		}
		out.WriteString(entry.AI)
		fnc1req = entry.FNC1

		if len(rest) == 0 {
			return "", errors.New("Failed to parse AI data")
		}

		valStart := out.Len()
		r := rest
		for {
			openIdx := strings.IndexByte(r, '(')
			if openIdx < 0 {
				out.WriteString(r)
				p = ""
				break
			}
			if openIdx > 0 && r[openIdx-1] == '\\' {
				out.WriteString(r[:openIdx-1])
				out.WriteByte('(')
				r = r[openIdx+1:]
				continue
			}
			out.WriteString(r[:openIdx])
			p = r[openIdx:]
			break
		}

		value := out.String()[valStart:]
		if err := ai.CheckValueLengthContent(entry, []byte(value)); err != nil {
			return "", err
		}
	}

	if out.Len() > ai.MaxData {
		return "", errors.New("Failed to parse AI data")
	}

	return out.String(), nil
}
