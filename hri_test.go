/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1encode

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestHRIText(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.StopOnMismatch().ShouldSucceed(ctx.SetGS1dataStr("(01)00888446671424(10)ABC123"))

	lines := HRIText(ctx, false)
	w.ShouldBeEqual(len(lines), 2)
	w.ShouldBeEqual(lines[0], "(01) 00888446671424")
	w.ShouldBeEqual(lines[1], "(10) ABC123")
}

func TestHRITextWithTitles(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.StopOnMismatch().ShouldSucceed(ctx.SetGS1dataStr("(01)00888446671424"))

	lines := HRIText(ctx, true)
	w.ShouldBeEqual(len(lines), 1)
	w.ShouldBeTrue(len(lines[0]) > len("(01) 00888446671424"))
}

func TestHRITextLatin1Fallback(t *testing.T) {
	w := expect.WrapT(t)

	// The ingestion paths reject non-CSET82 bytes, so a raw non-UTF-8 octet
	// is planted directly in an extracted X-typed value (here AI 10,
	// BATCH/LOT); HRIText must still render something rather than emitting
	// invalid UTF-8.
	ctx := Init()
	w.StopOnMismatch().ShouldSucceed(ctx.SetGS1dataStr("(01)00888446671424(10)AB"))
	ctx.extracted[1].Value = "AB\xe9"

	lines := HRIText(ctx, false)
	w.ShouldBeEqual(len(lines), 2)
	w.ShouldBeEqual(lines[1], "(10) ABé")
}
