/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"bytes"

	"github.com/pkg/errors"

	"gs1encode/charset"
)

// Validate walks def's components against value in order, applying the
// implicit character-set linter for each component's CSet followed by any
// declared Linter, and returns the number of bytes of value consumed by
// the components. It stops at the first component with CSet == CSetNone.
//
// The returned byte count never includes a following FNC1; the caller is
// responsible for that.
func Validate(def *Definition, value []byte) (int, error) {
	if len(value) == 0 {
		return 0, errors.Errorf("AI (%s) data is empty", def.AI)
	}

	consumed := 0
	remaining := value
	for _, part := range def.Components {
		if part.CSet == CSetNone {
			break
		}

		complen := len(remaining)
		if part.Max < complen {
			complen = part.Max
		}
		compval := remaining[:complen]

		if complen < part.Min {
			return 0, errors.Errorf("AI (%s) data is too short", def.AI)
		}

		var err error
		if part.CSet == CSetNumeric {
			err = charset.NumericOnly(compval)
		} else {
			err = charset.Cset82Only(compval)
		}
		if err != nil {
			return 0, errors.Wrapf(err, "AI (%s)", def.AI)
		}

		if part.Linter != nil {
			if err := part.Linter(compval); err != nil {
				return 0, errors.Wrapf(err, "AI (%s)", def.AI)
			}
		}

		remaining = remaining[complen:]
		consumed += complen
	}

	return consumed, nil
}

// CheckValueLengthContent runs the length/content pre-check that the
// bracketed-AI and Digital Link parsers perform before per-component
// linting, so that a value with the wrong overall length is reported as
// such rather than as a confusing linter failure. It fails if value's
// length falls outside the sum of def's component minimums and maximums,
// or if value contains a literal '#'.
func CheckValueLengthContent(def *Definition, value []byte) error {
	var minlen, maxlen int
	for _, part := range def.Components {
		if part.CSet == CSetNone {
			break
		}
		minlen += part.Min
		maxlen += part.Max
	}

	if len(value) < minlen {
		return errors.Errorf("AI (%s) value is too short", def.AI)
	}
	if len(value) > maxlen {
		return errors.Errorf("AI (%s) value is too long", def.AI)
	}
	if bytes.IndexByte(value, '#') >= 0 {
		return errors.Errorf("AI (%s) contains illegal # character", def.AI)
	}

	return nil
}
