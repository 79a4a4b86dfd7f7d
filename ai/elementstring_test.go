/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestProcessElementString(t *testing.T) {
	w := expect.WrapT(t)

	extracted, err := ProcessElementString("#0100888446671424#10ABC123")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 2)
	w.ShouldBeEqual(extracted[0].AI, "01")
	w.ShouldBeEqual(extracted[0].Value, "00888446671424")
	w.ShouldBeEqual(extracted[1].AI, "10")
	w.ShouldBeEqual(extracted[1].Value, "ABC123")

	// a fixed-length AI followed directly by another AI needs no separator
	extracted, err = ProcessElementString("#0000123456789012345210ABC123")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 2)
	w.ShouldBeEqual(extracted[0].AI, "00")
	w.ShouldBeEqual(extracted[0].Value, "001234567890123452")
	w.ShouldBeEqual(extracted[1].AI, "10")

	// trailing '#' after a fixed-length AI is tolerated (deliberate leniency)
	extracted, err = ProcessElementString("#00001234567890123452#")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 1)
}

func TestProcessElementStringFailures(t *testing.T) {
	w := expect.WrapT(t)

	_, err := ProcessElementString("0100888446671424")
	w.As("no leading FNC1").ShouldFail(err)

	_, err = ProcessElementString("#")
	w.As("empty AI data").ShouldFail(err)

	_, err = ProcessElementString("#23NotARegisteredAI")
	w.As("unrecognised AI").ShouldFail(err)

	// a variable-length AI directly abutting more data without a
	// separator overruns into "too long"
	_, err = ProcessElementString("#10ABC1230100888446671424")
	w.As("missing FNC1 after variable AI").ShouldFail(err)
}
