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

// TestEndToEndScenarios exercises the concrete bracketed-AI and Digital
// Link scenarios through the full Context ingestion path, checking the
// resulting canonical element string.
func TestEndToEndScenarios(t *testing.T) {
	w := expect.WrapT(t)

	bracketed := []struct{ input, want string }{
		{"(01)12345678901231(10)12345", "#01123456789012311012345"},
		{"(3100)123456(10)12345", "#31001234561012345"},
		{"(10)12345(11)991225", "#1012345#11991225"},
		{`(10)12345\(11)991225`, "#1012345(11)991225"},
	}
	for _, tt := range bracketed {
		ctx := Init()
		w.As(tt.input).StopOnMismatch().ShouldSucceed(ctx.SetGS1dataStr(tt.input))
		w.As(tt.input).ShouldBeEqual(ctx.GetDataStr(), tt.want)
	}

	dlScenarios := []struct{ input, want string }{
		{"https://id.gs1.org/01/9520123456788", "#0109520123456788"},
		{"https://id.gs1.org/01/09520123456788/10/ABC1/21/12345?17=180426",
			"#010952012345678810ABC1#2112345#17180426"},
		{"https://example.com/8004/9520614141234567?01=9520123456788",
			"#80049520614141234567#0109520123456788"},
	}
	for _, tt := range dlScenarios {
		ctx := Init()
		w.As(tt.input).StopOnMismatch().ShouldSucceed(ctx.ParseDLURI(tt.input))
		w.As(tt.input).ShouldBeEqual(ctx.GetDataStr(), tt.want)
	}
}

// TestEndToEndNegativeScenarios exercises the concrete failing scenarios
// named alongside the positive table.
func TestEndToEndNegativeScenarios(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.As("empty value").ShouldFail(ctx.SetGS1dataStr("(10)(11)98765"))

	ctx = Init()
	w.As("fixed AI too long").ShouldFail(ctx.SetGS1dataStr("(01)123456789012312(10)12345"))

	ctx = Init()
	w.As("253 tail too long").ShouldFail(ctx.ParseDLURI(
		"https://id.gs1.org/253/1231231231232TEST56789012345678"))

	ctx = Init()
	w.As("unknown numeric query AI").ShouldFail(ctx.ParseDLURI(
		"https://a.example.com/01/12312312312333?99=ABC&999=faux"))

	ctx = Init()
	w.As("bad GTIN check digit").ShouldFail(ctx.SetDataStr("#0112345678901234"))
}

// TestRoundTripInvariant checks invariant 1 from the testable-properties
// table: re-serialising the extracted AI list reproduces the element
// string bracketed parsing produced.
func TestRoundTripInvariant(t *testing.T) {
	w := expect.WrapT(t)

	ctx := Init()
	w.StopOnMismatch().ShouldSucceed(ctx.SetGS1dataStr("(10)12345(11)991225"))

	rebuilt := Init()
	w.StopOnMismatch().ShouldSucceed(rebuilt.SetDataStr(ctx.GetDataStr()))
	w.ShouldBeEqual(len(rebuilt.GetExtractedAIs()), len(ctx.GetExtractedAIs()))
	for i, e := range ctx.GetExtractedAIs() {
		w.ShouldBeEqual(rebuilt.GetExtractedAIs()[i].AI, e.AI)
		w.ShouldBeEqual(rebuilt.GetExtractedAIs()[i].Value, e.Value)
	}
}

// TestGTINPaddingBoundary checks the boundary behaviour named in the
// testable-properties table: DL GTIN lengths 8/12/13 pad, 14 passes
// through, and 9/10/11/15 fail.
func TestGTINPaddingBoundary(t *testing.T) {
	w := expect.WrapT(t)

	valid := []struct{ length int; path string }{
		{8, "https://id.example.org/01/96385074"},
		{14, "https://id.example.org/01/00888446671424"},
	}
	for _, tt := range valid {
		ctx := Init()
		w.As(tt.path).ShouldSucceed(ctx.ParseDLURI(tt.path))
	}

	invalid := []string{
		"https://id.example.org/01/123456789",     // 9 digits
		"https://id.example.org/01/1234567890",    // 10 digits
		"https://id.example.org/01/12345678901",   // 11 digits
		"https://id.example.org/01/123456789012345", // 15 digits
	}
	for _, path := range invalid {
		ctx := Init()
		w.As(path).ShouldFail(ctx.ParseDLURI(path))
	}
}
