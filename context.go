/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1encode

import (
	"strings"

	"github.com/pkg/errors"

	"gs1encode/ai"
	"gs1encode/bracketed"
	"gs1encode/charset"
	"gs1encode/dl"
)

// Context is an instance of the library. It holds the state produced by
// the most recent ingestion call: the canonical element string, the
// extracted AI list, and the sticky last error, alongside the
// configuration surface. Any number of Contexts may be created and used
// independently of one another; a Context is not safe for concurrent use
// by multiple goroutines without external synchronisation.
type Context struct {
	dataStr string

	extracted []ai.ExtractedAI
	lastErr   error

	cfg config
}

// Init returns a new Context with default configuration, mirroring
// gs1_encoder_init.
func Init() *Context {
	return &Context{cfg: defaultConfig()}
}

// Free releases ctx's state. Go's garbage collector reclaims a Context's
// memory on its own; Free exists so callers written against the C
// library's init/free pairing have a direct, harmless analogue.
func (ctx *Context) Free() {
	ctx.dataStr = ""
	ctx.extracted = nil
	ctx.lastErr = nil
}

// SetDataStr stores raw data on ctx. A leading "#" marks it as a canonical
// FNC1-delimited element string, which is fully parsed and validated via
// the ai package; anything else is stored verbatim as a non-AI payload
// with no extracted AIs.
func (ctx *Context) SetDataStr(data string) error {
	if len(data) == 0 {
		return ctx.fail(errors.New("The data is empty"))
	}

	if strings.HasPrefix(data, "#") {
		if len(data) > ai.MaxData {
			return ctx.fail(errors.New("Failed to parse AI data"))
		}
		extracted, err := ai.ProcessElementString(data)
		if err != nil {
			return ctx.fail(err)
		}
		ctx.dataStr = data
		ctx.extracted = extracted
		ctx.lastErr = nil
		return nil
	}

	if ctx.cfg.addCheckDigit {
		if err := charset.NumericOnly([]byte(data)); err != nil {
			return ctx.fail(errors.Wrap(err, "AddCheckDigit requires all-numeric data"))
		}
		data = string(charset.RecomputeMod10CheckDigit([]byte(data)))
	}

	ctx.dataStr = data
	ctx.extracted = nil
	ctx.lastErr = nil
	return nil
}

// SetGS1dataStr runs the bracketed-AI parser over bracketedData and, on
// success, stores the resulting canonical element string and extracted AI
// list on ctx.
func (ctx *Context) SetGS1dataStr(bracketedData string) error {
	extracted, err := bracketed.Parse(bracketedData)
	if err != nil {
		return ctx.fail(err)
	}

	dataStr, err := elementStringOf(extracted)
	if err != nil {
		return ctx.fail(err)
	}

	ctx.dataStr = dataStr
	ctx.extracted = extracted
	ctx.lastErr = nil
	return nil
}

// ParseDLURI runs the Digital Link parser over dlURI and, on success,
// stores the resulting canonical element string and extracted AI list on
// ctx.
func (ctx *Context) ParseDLURI(dlURI string) error {
	extracted, err := dl.Parse(dlURI)
	if err != nil {
		return ctx.fail(err)
	}

	dataStr, err := elementStringOf(extracted)
	if err != nil {
		return ctx.fail(err)
	}

	ctx.dataStr = dataStr
	ctx.extracted = extracted
	ctx.lastErr = nil
	return nil
}

// GetDataStr returns the canonical element string produced by the most
// recent successful ingestion call, or the verbatim non-AI payload if
// SetDataStr was used with data that did not begin with "#".
func (ctx *Context) GetDataStr() string {
	return ctx.dataStr
}

// GetExtractedAIs returns the ordered list of AIs extracted by the most
// recent successful ingestion call. It is nil if the last successful call
// was a non-AI SetDataStr, or if no ingestion call has yet succeeded.
func (ctx *Context) GetExtractedAIs() []ai.ExtractedAI {
	return ctx.extracted
}

// GetErrMsg returns the message of the most recent failed call on ctx
// (ingestion or configuration setter), or the empty string if none has
// failed since the last successful ingestion call.
func (ctx *Context) GetErrMsg() string {
	if ctx.lastErr == nil {
		return ""
	}
	return ctx.lastErr.Error()
}

func (ctx *Context) fail(err error) error {
	ctx.lastErr = err
	return err
}

// elementStringOf re-derives the canonical "#ai1val1[#]ai2val2..." element
// string from an already-extracted AI list, so that GetDataStr returns the
// same representation regardless of which ingestion path produced it. A "#"
// separator follows a value only when its AI requires FNC1 and another AI
// follows.
func elementStringOf(extracted []ai.ExtractedAI) (string, error) {
	var out strings.Builder
	fnc1req := true
	for _, e := range extracted {
		entry, ok := ai.Lookup(e.AI, len(e.AI))
		if !ok {
			return "", errors.Errorf("Unrecognised AI: %s", e.AI)
		}
		if fnc1req {
			out.WriteByte('#')
		}
		out.WriteString(entry.AI)
		out.WriteString(e.Value)
		fnc1req = entry.FNC1
	}
	if out.Len() > ai.MaxData {
		return "", errors.New("Failed to parse AI data")
	}
	return out.String(), nil
}
