/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"strings"

	"github.com/pkg/errors"
)

// ProcessElementString parses a canonical "#ai1val1[#]ai2val2..." string
// (# is FNC1) into an ordered list of extracted AI/value pairs, validating
// each value against the registry as it goes.
func ProcessElementString(data string) ([]ExtractedAI, error) {
	if len(data) == 0 || data[0] != '#' {
		return nil, errors.New("Missing FNC1 in first position")
	}
	p := data[1:]

	if len(p) == 0 {
		return nil, errors.New("The AI data is empty")
	}

	var extracted []ExtractedAI

	for len(p) > 0 {
		entry, ok := Lookup(p, 0)
		if !ok {
			end := len(p)
			if end > 4 {
				end = 4
			}
			return nil, errors.Errorf("Unrecognised AI: %s", p[:end])
		}

		p = p[len(entry.AI):]

		end := strings.IndexByte(p, '#')
		if end < 0 {
			end = len(p)
		}

		vallen, err := Validate(entry, []byte(p[:end]))
		if err != nil {
			return nil, err
		}
		if vallen == 0 {
			return nil, errors.Errorf("AI (%s) data is empty", entry.AI)
		}

		if len(extracted) >= MaxAIs {
			return nil, errors.New("Too many AIs")
		}
		extracted = append(extracted, ExtractedAI{
			AI:           entry.AI,
			Value:        p[:vallen],
			Length:       vallen,
			Title:        entry.Title,
			FNC1Required: entry.FNC1,
		})

		p = p[vallen:]
		if entry.FNC1 && len(p) != 0 && p[0] != '#' {
			return nil, errors.Errorf("AI (%s) data is too long", entry.AI)
		}

		// Skip FNC1, even at end of fixed-length AIs: a deliberate leniency.
		if len(p) > 0 && p[0] == '#' {
			p = p[1:]
		}
	}

	return extracted, nil
}
