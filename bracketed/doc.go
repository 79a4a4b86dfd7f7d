/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bracketed parses the human-friendly "(AI)value(AI)value..."
// Application Identifier syntax into the canonical "#"-delimited element
// string that the ai package's element-string processor consumes.
package bracketed
