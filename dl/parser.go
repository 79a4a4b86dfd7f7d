/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package dl

import (
	"strings"

	"github.com/pkg/errors"

	"gs1encode/ai"
	"gs1encode/charset"
)

// uriCharacters is the set of bytes permitted anywhere in a Digital Link
// URI, including the percent sign used for escapes.
var uriCharacters = [128]bool{}

func init() {
	const allowed = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~:/?#[]@!$&'()*+,;=%"
	for _, c := range allowed {
		uriCharacters[c] = true
	}
}

// Parse converts a GS1 Digital Link URI into the canonical FNC1-delimited
// element string and validates every extracted AI along the way.
func Parse(dlData string) ([]ai.ExtractedAI, error) {
	dataStr, err := toElementString(dlData)
	if err != nil {
		return nil, err
	}
	return ai.ProcessElementString(dataStr)
}

func toElementString(dlData string) (string, error) {
	for i := 0; i < len(dlData); i++ {
		c := dlData[i]
		if c >= 128 || !uriCharacters[c] {
			return "", errors.New("URI contains illegal characters")
		}
	}

	rest := dlData
	switch {
	case strings.HasPrefix(rest, "https://"):
		rest = rest[len("https://"):]
	case strings.HasPrefix(rest, "http://"):
		rest = rest[len("http://"):]
	default:
		return "", errors.New("Scheme must be http:// or https://")
	}

	slashIdx := strings.IndexByte(rest, '/')
	if slashIdx < 1 {
		return "", errors.New("URI must contain a domain and path info")
	}
	pathAndMore := rest[slashIdx:]

	pathPart := pathAndMore
	queryPart := ""
	if qIdx := strings.IndexByte(pathAndMore, '?'); qIdx >= 0 {
		pathPart = pathAndMore[:qIdx]
		queryPart = pathAndMore[qIdx+1:]
	}
	if fIdx := strings.IndexByte(queryPart, '#'); fIdx >= 0 {
		queryPart = queryPart[:fIdx]
	}

	segments := strings.Split(strings.TrimPrefix(pathPart, "/"), "/")

	rootIdx := -1
	for end := len(segments); end >= 2; end -= 2 {
		aiSeg := segments[end-2]
		entry, ok := ai.Lookup(aiSeg, len(aiSeg))
		if !ok {
			break
		}
		if ai.IsDLPrimaryKey(entry.AI) {
			rootIdx = end - 2
			break
		}
	}
	if rootIdx < 0 {
		return "", errors.New("No GS1 DL keys found in path info")
	}

	var out strings.Builder
	fnc1req := true

	for i := rootIdx; i+1 < len(segments); i += 2 {
		aiSeg, valSeg := segments[i], segments[i+1]
		entry, ok := ai.Lookup(aiSeg, len(aiSeg))
		if !ok {
			return "", errors.Errorf("Unrecognised AI: %s", aiSeg)
		}

		decoded, err := charset.PercentDecode(valSeg, ai.MaxAILen)
		if err != nil {
			return "", errors.Errorf("Decoded AI (%s) from DL path info too long", entry.AI)
		}
		decoded = padGTIN14(entry.AI, decoded)

		writeAI(&out, entry, decoded, &fnc1req)
		if err := ai.CheckValueLengthContent(entry, []byte(decoded)); err != nil {
			return "", err
		}
	}

	for _, token := range strings.Split(queryPart, "&") {
		if token == "" {
			continue
		}

		eqIdx := strings.IndexByte(token, '=')
		if eqIdx < 0 {
			continue // singleton, no value: skip
		}
		key, val := token[:eqIdx], token[eqIdx+1:]

		if !allDigits(key) {
			continue // skip non-numeric keys
		}
		entry, ok := ai.Lookup(key, len(key))
		if !ok {
			return "", errors.Errorf("Unknown AI (%s) in query parameters", key)
		}

		decoded, err := charset.PercentDecode(val, ai.MaxAILen)
		if err != nil {
			return "", errors.Errorf("Decoded AI (%s) value from DL query params too long", entry.AI)
		}
		decoded = padGTIN14(entry.AI, decoded)

		writeAI(&out, entry, decoded, &fnc1req)
		if err := ai.CheckValueLengthContent(entry, []byte(decoded)); err != nil {
			return "", err
		}
	}

	if out.Len() > ai.MaxData {
		return "", errors.New("Failed to parse DL data")
	}

	return out.String(), nil
}

func writeAI(out *strings.Builder, entry *ai.Definition, value string, fnc1req *bool) {
	if *fnc1req {
		out.WriteByte('#')
	}
	out.WriteString(entry.AI)
	*fnc1req = entry.FNC1
	out.WriteString(value)
}

// padGTIN14 left-pads a Digital-Link-supplied AI 01 value of length 8, 12,
// or 13 to a full 14-digit GTIN. Every other AI, and every other length, is
// returned unchanged.
func padGTIN14(aiKey, value string) string {
	if aiKey != "01" {
		return value
	}
	switch len(value) {
	case 8, 12, 13:
		return strings.Repeat("0", 14-len(value)) + value
	default:
		return value
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
