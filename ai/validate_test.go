/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestValidateFixedNumeric(t *testing.T) {
	entry, ok := Lookup("01", 2)
	w := expect.WrapT(t)
	w.StopOnMismatch().ShouldBeTrue(ok)

	n, err := Validate(entry, []byte("00888446671424"))
	w.ShouldSucceed(err)
	w.ShouldBeEqual(n, 14)

	_, err = Validate(entry, []byte("0088844667142x"))
	w.ShouldFail(err)

	_, err = Validate(entry, []byte("00888446671420")) // bad check digit
	w.ShouldFail(err)

	_, err = Validate(entry, []byte("008884"))
	w.ShouldFail(err)
}

func TestValidateVariableCset82(t *testing.T) {
	entry, ok := Lookup("10", 2)
	w := expect.WrapT(t)
	w.StopOnMismatch().ShouldBeTrue(ok)

	n, err := Validate(entry, []byte("ABC-123"))
	w.ShouldSucceed(err)
	w.ShouldBeEqual(n, 7)

	// truncated to Max when more data follows without a separator
	n, err = Validate(entry, []byte("012345678901234567890123"))
	w.ShouldSucceed(err)
	w.ShouldBeEqual(n, 20)

	_, err = Validate(entry, []byte(""))
	w.ShouldFail(err)
}

func TestValidateMultiComponent(t *testing.T) {
	entry, ok := Lookup("253", 3)
	w := expect.WrapT(t)
	w.StopOnMismatch().ShouldBeTrue(ok)

	n, err := Validate(entry, []byte("1234567890128"))
	w.ShouldSucceed(err)
	w.ShouldBeEqual(n, 13)

	n, err = Validate(entry, []byte("1234567890128EXTRA"))
	w.ShouldSucceed(err)
	w.ShouldBeEqual(n, 18)
}

func TestCheckValueLengthContentGDTIBoundary(t *testing.T) {
	entry, ok := Lookup("253", 3)
	w := expect.WrapT(t)
	w.StopOnMismatch().ShouldBeTrue(ok)

	// AI 253 (GDTI) is a 13-digit fixed component plus a 0-17 char CSET82
	// serial: total value length must fall in [13, 30].
	w.As("12_too_short").ShouldFail(CheckValueLengthContent(entry, []byte("123456789012")))
	w.As("13_min").ShouldSucceed(CheckValueLengthContent(entry, []byte("1234567890128")))
	w.As("30_max").ShouldSucceed(CheckValueLengthContent(entry, []byte("1234567890128"+strings.Repeat("A", 17))))
	w.As("31_too_long").ShouldFail(CheckValueLengthContent(entry, []byte("1234567890128"+strings.Repeat("A", 18))))
}

func TestCheckValueLengthContent(t *testing.T) {
	entry, ok := Lookup("10", 2)
	w := expect.WrapT(t)
	w.StopOnMismatch().ShouldBeTrue(ok)

	w.ShouldSucceed(CheckValueLengthContent(entry, []byte("A")))
	w.ShouldFail(CheckValueLengthContent(entry, []byte("")))
	w.ShouldFail(CheckValueLengthContent(entry, []byte("012345678901234567890")))
	w.ShouldFail(CheckValueLengthContent(entry, []byte("AB#CD")))
}
