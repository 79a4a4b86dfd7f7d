/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bracketed

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestParse(t *testing.T) {
	w := expect.WrapT(t)

	extracted, err := Parse("(01)00888446671424(10)ABC123")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 2)
	w.ShouldBeEqual(extracted[0].AI, "01")
	w.ShouldBeEqual(extracted[0].Value, "00888446671424")
	w.ShouldBeEqual(extracted[1].AI, "10")
	w.ShouldBeEqual(extracted[1].Value, "ABC123")
}

func TestParseEscapedBracket(t *testing.T) {
	w := expect.WrapT(t)

	extracted, err := Parse(`(10)AB\(CD`)
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 1)
	w.ShouldBeEqual(extracted[0].Value, "AB(CD")
}

func TestParseFixedLengthNeedsNoFNC1(t *testing.T) {
	w := expect.WrapT(t)

	// AI 00 is fixed-length; the element string built from it must not
	// carry a trailing FNC1 before the next AI.
	extracted, err := toElementString("(00)001234567890123452(10)ABC")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(extracted, "#0000123456789012345210ABC")
}

func TestParseFailures(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Parse("01)00888446671424")
	w.As("missing opening paren").ShouldFail(err)

	_, err = Parse("(01(00888446671424")
	w.As("missing closing paren").ShouldFail(err)

	_, err = Parse("(23)NotARegisteredAI")
	w.As("unrecognised AI").ShouldFail(err)

	_, err = Parse("(10)")
	w.As("empty value").ShouldFail(err)

	_, err = Parse("(10)AB#CD")
	w.As("literal # in value").ShouldFail(err)
}
