/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

// CSet identifies which character-set rule a Component's value must satisfy.
type CSet int

const (
	// CSetNone marks the end of a Definition's component list.
	CSetNone CSet = iota
	// CSetNumeric requires every byte to be an ASCII digit.
	CSetNumeric
	// CSet82 requires every byte to be in the 82-character GS1 alphabet.
	CSet82
	// CSetC is the CPID character set. It is treated identically to
	// CSet82; no registry entry currently needs a narrower rule.
	CSetC
)

// Linter is a pure predicate over a single component value. It reports a
// descriptive error when the value is invalid and never modifies value.
type Linter func(value []byte) error

// Component describes one ordered part of an AI's value, for example the
// 13-digit GDTI prefix of AI 253 or its trailing CSET82 serial. Min and Max
// are byte lengths, inclusive. Linter is an additional predicate applied
// after the implicit CSet check; it is nil for components that need no
// linting beyond their character set.
type Component struct {
	CSet   CSet
	Min    int
	Max    int
	Linter Linter
}

// Definition is one entry of the AI registry.
type Definition struct {
	// AI is the Application Identifier key, 2 to 4 digits.
	AI string
	// FNC1 reports whether values of this AI require FNC1 (variable
	// length) termination when not the last element of a string. AIs in
	// the fixed-length prefix set always have FNC1 == false.
	FNC1 bool
	// Components lists this AI's value structure, in order. Every AI has
	// at least one component.
	Components []Component
	// Title is the human-readable AI name from the GS1 General
	// Specifications, used for HRI text and diagnostics.
	Title string
}

// ExtractedAI is one successfully parsed and validated AI/value pair,
// produced by the element-string processor and the bracketed-AI and
// Digital Link parsers.
type ExtractedAI struct {
	AI    string
	Value string
	// Length is len(Value), provided so callers don't need to recompute it.
	Length int
	// Title is the registry entry's human-readable AI name, copied here so
	// callers such as an HRI-text renderer don't need a second Lookup.
	Title string
	// FNC1Required reports whether this AI's value needed FNC1 termination
	// when it was not the last element of the source string, i.e. the
	// registry entry's FNC1 flag.
	FNC1Required bool
}
