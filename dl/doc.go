/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package dl parses GS1 Digital Link URIs into the canonical "#"-delimited
// element string that the ai package's element-string processor consumes.
//
// This is a lightweight extraction sufficient for validating and listing
// the AIs present in a Digital Link; it does not validate the URI's
// structure against a resolver's link-type registrations, nor the data
// relationships between the extracted AIs.
package dl
