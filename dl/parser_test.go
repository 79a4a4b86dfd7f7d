/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package dl

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestParseBasic(t *testing.T) {
	w := expect.WrapT(t)

	extracted, err := Parse("https://id.example.org/01/00888446671424")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 1)
	w.ShouldBeEqual(extracted[0].AI, "01")
	w.ShouldBeEqual(extracted[0].Value, "00888446671424")
}

func TestParseGTINPadding(t *testing.T) {
	type padTest struct {
		name, path, want string
	}
	for _, tt := range []padTest{
		{"GTIN8", "https://id.example.org/01/96385074", "00000096385074"},
		{"GTIN12", "https://id.example.org/01/614141007349", "00614141007349"},
		{"GTIN13", "https://id.example.org/01/4006381333931", "04006381333931"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := expect.WrapT(t)
			extracted, err := Parse(tt.path)
			w.StopOnMismatch().ShouldSucceed(err)
			w.ShouldBeEqual(len(extracted), 1)
			w.ShouldBeEqual(extracted[0].Value, tt.want)
		})
	}
}

func TestParseQualifiers(t *testing.T) {
	w := expect.WrapT(t)

	extracted, err := Parse("https://id.example.org/01/00888446671424/22/2A/10/ABC123")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 3)
	w.ShouldBeEqual(extracted[0].AI, "01")
	w.ShouldBeEqual(extracted[1].AI, "22")
	w.ShouldBeEqual(extracted[1].Value, "2A")
	w.ShouldBeEqual(extracted[2].AI, "10")
	w.ShouldBeEqual(extracted[2].Value, "ABC123")
}

func TestParseQueryParams(t *testing.T) {
	w := expect.WrapT(t)

	extracted, err := Parse("https://id.example.org/01/00888446671424?17=201225&nonsense&irrelevant=abc")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 2)
	w.ShouldBeEqual(extracted[0].AI, "01")
	w.ShouldBeEqual(extracted[1].AI, "17")
	w.ShouldBeEqual(extracted[1].Value, "201225")
}

func TestParsePercentDecoding(t *testing.T) {
	w := expect.WrapT(t)

	extracted, err := Parse("https://id.example.org/01/00888446671424/10/ABC%2F123")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(len(extracted), 2)
	w.ShouldBeEqual(extracted[1].Value, "ABC/123")
}

func TestParseFailures(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Parse("ftp://id.example.org/01/00888446671424")
	w.As("bad scheme").ShouldFail(err)

	_, err = Parse("https://id.example.org")
	w.As("no path info").ShouldFail(err)

	_, err = Parse("https://id.example.org/some/thing")
	w.As("no DL key in path").ShouldFail(err)

	_, err = Parse("https://id.example.org/01/00888446671424?23=unknown")
	w.As("unknown numeric AI in query").ShouldFail(err)

	_, err = Parse("https://id.example.org/01/00888446671424 space")
	w.As("illegal character").ShouldFail(err)
}
