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

func TestSetSymbology(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.StopOnMismatch().ShouldSucceed(ctx.SetSymbology(SymQR))
	w.ShouldBeEqual(ctx.Symbology(), SymQR)

	w.As("out of range").ShouldFail(ctx.SetSymbology(symNumSymbologies))
	w.As("below sentinel").ShouldFail(ctx.SetSymbology(Symbology(-2)))
}

func TestSetPixMult(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.As("zero").ShouldFail(ctx.SetPixMult(0))
	w.As("too large").ShouldFail(ctx.SetPixMult(MaxPixMult + 1))
	w.As("in range").ShouldSucceed(ctx.SetPixMult(10))
	w.ShouldBeEqual(ctx.PixMult(), 10)
}

func TestSetXYUndercut(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.StopOnMismatch().ShouldSucceed(ctx.SetPixMult(10))

	w.As("valid").ShouldSucceed(ctx.SetXUndercut(4))
	w.As("half pixmult is invalid").ShouldFail(ctx.SetXUndercut(5))
	w.As("valid Y").ShouldSucceed(ctx.SetYUndercut(3))
}

func TestSetRSSExpSegWidth(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.As("odd").ShouldFail(ctx.SetRSSExpSegWidth(3))
	w.As("too small").ShouldFail(ctx.SetRSSExpSegWidth(0))
	w.As("too large").ShouldFail(ctx.SetRSSExpSegWidth(24))
	w.As("valid").ShouldSucceed(ctx.SetRSSExpSegWidth(12))
}

func TestSetDMDimensions(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.As("automatic rows").ShouldSucceed(ctx.SetDMRows(0))
	w.As("too few rows").ShouldFail(ctx.SetDMRows(4))
	w.As("valid rows").ShouldSucceed(ctx.SetDMRows(16))
	w.As("automatic columns").ShouldSucceed(ctx.SetDMColumns(0))
	w.As("too few columns").ShouldFail(ctx.SetDMColumns(4))
}

func TestSetQRConfig(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.As("automatic version").ShouldSucceed(ctx.SetQRVersion(0))
	w.As("version out of range").ShouldFail(ctx.SetQRVersion(41))
	w.As("valid EC level").ShouldSucceed(ctx.SetQRECLevel(QRECLevelH))
	w.As("invalid EC level").ShouldFail(ctx.SetQRECLevel(QREClevel(0)))
}

func TestSetFilenames(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.As("short name").ShouldSucceed(ctx.SetOutFile("out.bmp"))
	w.ShouldBeEqual(ctx.OutFile(), "out.bmp")

	longName := make([]byte, MaxFilenameLength)
	for i := range longName {
		longName[i] = 'a'
	}
	w.As("too long").ShouldFail(ctx.SetDataFile(string(longName)))
}

func TestFileInputFlag(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.ShouldBeFalse(ctx.FileInput())
	ctx.SetFileInput(true)
	w.ShouldBeTrue(ctx.FileInput())
}
