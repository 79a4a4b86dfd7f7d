/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1encode

import (
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"

	"gs1encode/ai"
)

func TestSetGS1dataStr(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	err := ctx.SetGS1dataStr("(01)00888446671424(10)ABC123")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(ctx.GetDataStr(), "#010088844667142410ABC123")

	extracted := ctx.GetExtractedAIs()
	w.ShouldBeEqual(len(extracted), 2)
	w.ShouldBeEqual(extracted[0].AI, "01")
	w.ShouldBeEqual(extracted[1].AI, "10")
	w.ShouldBeEqual(ctx.GetErrMsg(), "")
}

func TestParseDLURI(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	err := ctx.ParseDLURI("https://id.example.org/01/00888446671424")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(ctx.GetDataStr(), "#0100888446671424")
	w.ShouldBeEqual(len(ctx.GetExtractedAIs()), 1)
}

func TestSetDataStrElementString(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	err := ctx.SetDataStr("#0100888446671424#10ABC123")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(ctx.GetExtractedAIs()), 2)
}

func TestSetDataStrElementStringTooLong(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	oversized := "#10" + strings.Repeat("A", ai.MaxData)
	err := ctx.SetDataStr(oversized)
	w.ShouldFail(err)
	w.ShouldBeEqual(ctx.GetErrMsg(), err.Error())
}

func TestSetDataStrNonAIPayload(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	err := ctx.SetDataStr("036000291452")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(ctx.GetDataStr(), "036000291452")
	w.ShouldBeEqual(len(ctx.GetExtractedAIs()), 0)
}

func TestSetDataStrAddCheckDigit(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	ctx.SetAddCheckDigit(true)
	err := ctx.SetDataStr("036000291450") // wrong trailing digit, overwritten
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(ctx.GetDataStr(), "036000291452")
}

func TestErrMsgStickyOnFailure(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	err := ctx.SetGS1dataStr("(23)NotARegisteredAI")
	w.As("unrecognised AI").ShouldFail(err)
	w.ShouldBeEqual(ctx.GetErrMsg(), err.Error())
}

func TestFreeClearsState(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.StopOnMismatch().ShouldSucceed(ctx.SetGS1dataStr("(01)00888446671424"))
	ctx.Free()
	w.ShouldBeEqual(ctx.GetDataStr(), "")
	w.ShouldBeEqual(len(ctx.GetExtractedAIs()), 0)
}
