/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestLookupExact(t *testing.T) {
	for _, ai := range []string{"00", "01", "10", "253", "8003", "8010", "99"} {
		t.Run(ai, func(t *testing.T) {
			w := expect.WrapT(t)
			entry, ok := Lookup(ai, len(ai))
			w.ShouldBeTrue(ok)
			w.ShouldBeEqual(entry.AI, ai)
		})
	}

	for _, ai := range []string{"23", "09", "8888", ""} {
		t.Run(fmt.Sprintf("Unregistered_%q", ai), func(t *testing.T) {
			_, ok := Lookup(ai, len(ai))
			expect.WrapT(t).ShouldBeFalse(ok)
		})
	}
}

func TestLookupPrefix(t *testing.T) {
	type prefixTest struct {
		in, wantAI string
	}
	for _, tt := range []prefixTest{
		{"0112345678901231", "01"},
		{"10ABC123", "10"},
		{"253123456789012X", "253"},
		{"37102", "37"},
		{"800312345", "8003"},
	} {
		t.Run(tt.in, func(t *testing.T) {
			w := expect.WrapT(t)
			entry, ok := Lookup(tt.in, 0)
			w.StopOnMismatch().ShouldBeTrue(ok)
			w.ShouldBeEqual(entry.AI, tt.wantAI)
		})
	}

	t.Run("NoMatch", func(t *testing.T) {
		_, ok := Lookup("zz123", 0)
		expect.WrapT(t).ShouldBeFalse(ok)
	})
}

func TestDefinitionFNC1(t *testing.T) {
	w := expect.WrapT(t)

	// Fixed-length AIs never require FNC1, including ones whose registry
	// key is longer than the 2-character prefix that determines their
	// fixed-length status ("3100"-"3695" share the "31"-"36" prefixes,
	// "410"-"417" share the "41" prefix).
	for _, ai := range []string{"00", "01", "11", "20", "3695", "414", "3100", "3293", "410", "417"} {
		entry, ok := Lookup(ai, len(ai))
		w.As(ai).StopOnMismatch().ShouldBeTrue(ok)
		w.As(ai).ShouldBeFalse(entry.FNC1)
	}

	for _, ai := range []string{"10", "21", "37", "8010", "253"} {
		entry, ok := Lookup(ai, len(ai))
		w.As(ai).StopOnMismatch().ShouldBeTrue(ok)
		w.As(ai).ShouldBeTrue(entry.FNC1)
	}
}

func TestIsDLPrimaryKey(t *testing.T) {
	w := expect.WrapT(t)
	for _, ai := range []string{"00", "01", "253", "8003", "8018"} {
		w.As(ai).ShouldBeTrue(IsDLPrimaryKey(ai))
	}
	for _, ai := range []string{"10", "21", "3100", "8200"} {
		w.As(ai).ShouldBeFalse(IsDLPrimaryKey(ai))
	}
}

func TestRegistryCompleteAndWellFormed(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(len(registry), 512)

	seen := make(map[string]bool, len(registry))
	for _, e := range registry {
		w.As(e.AI).ShouldBeFalse(seen[e.AI])
		seen[e.AI] = true
		w.As(e.AI).ShouldBeTrue(len(e.Components) > 0)
	}
}
