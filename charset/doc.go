/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package charset implements the low-level, pure character-set and
// check-digit predicates used to validate individual GS1 Application
// Identifier component values.
//
// These are intentionally free of any knowledge of the AI Registry: they
// operate on a single byte slice and either accept it or return a
// descriptive error. Higher-level packages compose them per AI component.
package charset
