/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1encode is the top-level context/API layer over the ai,
// bracketed, and dl packages. It mirrors the C gs1encoders library's
// gs1_encoder context: a single mutable struct that owns the last-ingested
// data, the extracted AI list, a sticky error, and the configuration
// surface (symbology, dimensions, output format) that a full port of that
// library's public API carries even though this package never renders a
// barcode image.
//
// Three ingestion paths converge on the same extracted-AI representation:
//
//	SetDataStr     a raw data string: if it begins with "#" it is treated
//	               as a canonical element string and fully validated,
//	               otherwise it is stored verbatim as a non-AI payload
//	SetGS1dataStr  "(AI)value(AI)value..." bracketed AI data
//	ParseDLURI     a GS1 Digital Link URI
//
// Every method that can fail returns a Go error and also latches it as the
// context's sticky last error, retrievable with GetErrMsg, matching the
// underlying library's single-error-message design.
package gs1encode
