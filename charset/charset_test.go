/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package charset

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestNumericOnly(t *testing.T) {
	for _, s := range []string{"0", "9", "0123456789", "000000"} {
		t.Run(fmt.Sprintf("Valid_%q", s), func(t *testing.T) {
			expect.WrapT(t).ShouldSucceed(NumericOnly([]byte(s)))
		})
	}

	for _, s := range []string{"", "a", "1a", "1.2", "-1", " 1", "1 "} {
		t.Run(fmt.Sprintf("Invalid_%q", s), func(t *testing.T) {
			w := expect.WrapT(t)
			err := NumericOnly([]byte(s))
			if s == "" {
				w.ShouldSucceed(err)
				return
			}
			w.ShouldFail(err)
		})
	}
}

func TestCset82Only(t *testing.T) {
	valid := `!"%&'()*+,-./0123456789:;<=>?` +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

	for _, c := range valid {
		t.Run(fmt.Sprintf("Char_%q", c), func(t *testing.T) {
			expect.WrapT(t).ShouldSucceed(Cset82Only([]byte(string(c))))
		})
	}

	for _, s := range []string{" ", "#", "$", "[", "]", "^", "`", "{", "}", "|", "~", "\x00"} {
		t.Run(fmt.Sprintf("Invalid_%q", s), func(t *testing.T) {
			expect.WrapT(t).ShouldFail(Cset82Only([]byte(s)))
		})
	}
}

func TestVerifyMod10CheckDigit(t *testing.T) {
	for _, s := range []string{
		"036000291452", // well-known UPC-A example
		"00614141007349", // real GTIN-14 example
		"00888446671424", // real GTIN-14 example
		"31",             // trivial two digit case, weight starts at 3 for even length
		"0",              // single digit, weight starts at 1 for odd length: check digit of "" is 0
	} {
		t.Run(fmt.Sprintf("Valid_%q", s), func(t *testing.T) {
			expect.WrapT(t).ShouldSucceed(VerifyMod10CheckDigit([]byte(s)))
		})
	}

	for _, s := range []string{"036000291450", "00614141007340", "37"} {
		t.Run(fmt.Sprintf("Invalid_%q", s), func(t *testing.T) {
			expect.WrapT(t).ShouldFail(VerifyMod10CheckDigit([]byte(s)))
		})
	}

	t.Run("NonDigit", func(t *testing.T) {
		expect.WrapT(t).ShouldFail(VerifyMod10CheckDigit([]byte("0761042532428x")))
	})
}

func TestRecomputeMod10CheckDigit(t *testing.T) {
	w := expect.WrapT(t)
	for _, s := range []string{"036000291452", "00614141007349", "00888446671424", "31"} {
		fixed := RecomputeMod10CheckDigit([]byte(s))
		w.ShouldBeEqual(string(fixed), s)
	}

	// a corrupted trailing digit is corrected back
	fixed := RecomputeMod10CheckDigit([]byte("036000291459"))
	w.ShouldBeEqual(string(fixed), "036000291452")
}

func TestPercentDecode(t *testing.T) {
	type decodeTest struct {
		name, in, want string
		wantErr        bool
	}

	for _, tt := range []decodeTest{
		{name: "Plain", in: "hello", want: "hello"},
		{name: "Space", in: "A%20B", want: "A B"},
		{name: "LowerHex", in: "A%2fB", want: "A/B"},
		{name: "Null", in: "A%00B", want: "A\x00B"},
		{name: "TruncatedOneDigit", in: "ABC%2", want: "ABC%2"},
		{name: "TruncatedNoDigits", in: "ABC%", want: "ABC%"},
		{name: "InvalidHexDigit", in: "A%g4B", want: "A%g4B"},
		{name: "PercentAtEnd", in: "abc%", want: "abc%"},
		{name: "MultipleEscapes", in: "%2Fa%2Fb%2F", want: "/a/b/"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := expect.WrapT(t)
			got, err := PercentDecode(tt.in, 8192)
			if tt.wantErr {
				w.ShouldFail(err)
				return
			}
			w.ShouldSucceed(err)
			w.ShouldBeEqual(got, tt.want)
		})
	}

	t.Run("ExceedsMaxLen", func(t *testing.T) {
		_, err := PercentDecode("abcdef", 3)
		expect.WrapT(t).ShouldFail(err)
	})
}
