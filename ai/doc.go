/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package ai holds the GS1 Application Identifier registry and the
// operations that key off it: lookup by AI, per-component validation, the
// per-AI FNC1 flag, the Digital Link primary-key set, and the element-string
// processor that turns a run of AI/value pairs into an ordered, validated
// list.
//
// Everything here is derived from a single static table; nothing in this
// package inspects bracketed-AI or Digital Link syntax, that belongs to the
// bracketed and dl packages.
package ai
