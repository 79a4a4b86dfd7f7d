/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1encode

import "github.com/pkg/errors"

// Symbology identifies a barcode symbology, mirroring the C library's
// symbologies enum. This package never renders a symbol; the type exists
// so a Context can carry the same configuration surface the underlying
// library exposes.
type Symbology int

const (
	SymNone Symbology = iota - 1
	SymRSS14
	SymRSS14T
	SymRSS14S
	SymRSS14SO
	SymRSSLim
	SymRSSExp
	SymUPCA
	SymUPCE
	SymEAN13
	SymEAN8
	SymUCC128CCA
	SymUCC128CCC
	SymQR
	SymDM
	symNumSymbologies
)

// Format identifies an output image format, mirroring the C library's
// formats enum. Never consulted for actual rendering: this package does
// not render.
type Format int

const (
	FormatBMP Format = iota
	FormatTIF
	FormatRAW
)

// QREClevel identifies a QR Code error-correction level.
type QREClevel int

const (
	QRECLevelL QREClevel = iota + 1
	QRECLevelM
	QRECLevelQ
	QRECLevelH
)

// Implementation limits, mirroring gs1_encoder_getMax*.
const (
	MaxPixMult        = 30
	MaxUCC128LinHeight = 500
	MaxFilenameLength = 120
)

// config holds the pure configuration state of a Context: everything
// gs1encoders.h exposes via gs1_encoder_set*/get* that isn't part of the
// AI-parsing data path. Rendering never occurs, so these fields are held
// and validated but otherwise inert.
type config struct {
	symbology       Symbology
	pixMult         int
	xUndercut       int
	yUndercut       int
	sepHeight       int
	rssExpSegWidth  int
	ucc128LinHeight int
	dmRows          int
	dmColumns       int
	qrVersion       int
	qrECLevel       QREClevel
	addCheckDigit   bool
	format          Format
	outFile         string
	dataFile        string
	fileInput       bool
}

func defaultConfig() config {
	return config{
		symbology:       SymNone,
		pixMult:         1,
		sepHeight:       1,
		rssExpSegWidth:  22,
		ucc128LinHeight: 25,
		qrECLevel:       QRECLevelM,
		format:          FormatBMP,
	}
}

// Symbology returns the configured symbology.
func (ctx *Context) Symbology() Symbology { return ctx.cfg.symbology }

// SetSymbology sets the symbology. Only gs1_encoder_sNONE through
// gs1_encoder_sDM are valid; the sentinel symNumSymbologies is not a
// selectable value.
func (ctx *Context) SetSymbology(sym Symbology) error {
	if sym < SymNone || sym >= symNumSymbologies {
		return ctx.fail(errors.New("Invalid symbology"))
	}
	ctx.cfg.symbology = sym
	return nil
}

// PixMult returns the configured pixels-per-module ("X-dimension").
func (ctx *Context) PixMult() int { return ctx.cfg.pixMult }

// SetPixMult sets the pixels-per-module. Valid range is 1..MaxPixMult.
func (ctx *Context) SetPixMult(pixMult int) error {
	if pixMult < 1 || pixMult > MaxPixMult {
		return ctx.fail(errors.Errorf("Invalid pixel multiplier: %d", pixMult))
	}
	ctx.cfg.pixMult = pixMult
	return nil
}

// XUndercut returns the configured X undercut, in pixels.
func (ctx *Context) XUndercut() int { return ctx.cfg.xUndercut }

// SetXUndercut sets the X undercut. Must be less than half the current
// pixel multiplier.
func (ctx *Context) SetXUndercut(xUndercut int) error {
	if xUndercut < 0 || xUndercut*2 >= ctx.cfg.pixMult {
		return ctx.fail(errors.Errorf("Invalid X undercut: %d", xUndercut))
	}
	ctx.cfg.xUndercut = xUndercut
	return nil
}

// YUndercut returns the configured Y undercut, in pixels.
func (ctx *Context) YUndercut() int { return ctx.cfg.yUndercut }

// SetYUndercut sets the Y undercut. Must be less than half the current
// pixel multiplier.
func (ctx *Context) SetYUndercut(yUndercut int) error {
	if yUndercut < 0 || yUndercut*2 >= ctx.cfg.pixMult {
		return ctx.fail(errors.Errorf("Invalid Y undercut: %d", yUndercut))
	}
	ctx.cfg.yUndercut = yUndercut
	return nil
}

// SepHeight returns the configured separator height between linear and 2D
// components.
func (ctx *Context) SepHeight() int { return ctx.cfg.sepHeight }

// SetSepHeight sets the separator height. Valid values are 1 to 2 times
// the current pixel multiplier.
func (ctx *Context) SetSepHeight(sepHeight int) error {
	if sepHeight < 1 || sepHeight > 2*ctx.cfg.pixMult {
		return ctx.fail(errors.Errorf("Invalid separator height: %d", sepHeight))
	}
	ctx.cfg.sepHeight = sepHeight
	return nil
}

// RSSExpSegWidth returns the configured segments-per-row for GS1 DataBar
// Expanded Stacked symbols.
func (ctx *Context) RSSExpSegWidth() int { return ctx.cfg.rssExpSegWidth }

// SetRSSExpSegWidth sets the segments-per-row. Valid values are even
// numbers from 2 to 22.
func (ctx *Context) SetRSSExpSegWidth(width int) error {
	if width < 2 || width > 22 || width%2 != 0 {
		return ctx.fail(errors.Errorf("Invalid RSS Expanded segment width: %d", width))
	}
	ctx.cfg.rssExpSegWidth = width
	return nil
}

// UCC128LinHeight returns the configured GS1-128 linear symbol height, in
// modules.
func (ctx *Context) UCC128LinHeight() int { return ctx.cfg.ucc128LinHeight }

// SetUCC128LinHeight sets the GS1-128 linear symbol height. Valid range is
// 1..MaxUCC128LinHeight.
func (ctx *Context) SetUCC128LinHeight(height int) error {
	if height < 1 || height > MaxUCC128LinHeight {
		return ctx.fail(errors.Errorf("Invalid UCC128 linear height: %d", height))
	}
	ctx.cfg.ucc128LinHeight = height
	return nil
}

// DMRows returns the configured fixed row count for Data Matrix symbols,
// or 0 for automatic.
func (ctx *Context) DMRows() int { return ctx.cfg.dmRows }

// SetDMRows sets a fixed Data Matrix row count. Valid values are 8 to 144,
// or 0 for automatic.
func (ctx *Context) SetDMRows(rows int) error {
	if rows != 0 && (rows < 8 || rows > 144) {
		return ctx.fail(errors.Errorf("Invalid Data Matrix rows: %d", rows))
	}
	ctx.cfg.dmRows = rows
	return nil
}

// DMColumns returns the configured fixed column count for Data Matrix
// symbols, or 0 for automatic.
func (ctx *Context) DMColumns() int { return ctx.cfg.dmColumns }

// SetDMColumns sets a fixed Data Matrix column count. Valid values are 10
// to 144, or 0 for automatic.
func (ctx *Context) SetDMColumns(columns int) error {
	if columns != 0 && (columns < 10 || columns > 144) {
		return ctx.fail(errors.Errorf("Invalid Data Matrix columns: %d", columns))
	}
	ctx.cfg.dmColumns = columns
	return nil
}

// QRVersion returns the configured fixed QR Code version, or 0 for
// automatic.
func (ctx *Context) QRVersion() int { return ctx.cfg.qrVersion }

// SetQRVersion sets a fixed QR Code version. Valid values are 1 to 40, or
// 0 for automatic.
func (ctx *Context) SetQRVersion(version int) error {
	if version != 0 && (version < 1 || version > 40) {
		return ctx.fail(errors.Errorf("Invalid QR Code version: %d", version))
	}
	ctx.cfg.qrVersion = version
	return nil
}

// QRECLevel returns the configured QR Code error-correction level.
func (ctx *Context) QRECLevel() QREClevel { return ctx.cfg.qrECLevel }

// SetQRECLevel sets the QR Code error-correction level.
func (ctx *Context) SetQRECLevel(level QREClevel) error {
	if level < QRECLevelL || level > QRECLevelH {
		return ctx.fail(errors.Errorf("Invalid QR Code EC level: %d", level))
	}
	ctx.cfg.qrECLevel = level
	return nil
}

// AddCheckDigit reports whether the check-digit convenience mode is
// enabled.
func (ctx *Context) AddCheckDigit() bool { return ctx.cfg.addCheckDigit }

// SetAddCheckDigit enables or disables the check-digit convenience mode,
// under which a raw non-AI data string supplied to SetDataStr has its
// trailing digit recomputed by charset.RecomputeMod10CheckDigit rather
// than being stored verbatim.
func (ctx *Context) SetAddCheckDigit(enabled bool) { ctx.cfg.addCheckDigit = enabled }

// Format returns the configured output image format.
func (ctx *Context) Format() Format { return ctx.cfg.format }

// SetFormat sets the output image format.
func (ctx *Context) SetFormat(format Format) error {
	if format < FormatBMP || format > FormatRAW {
		return ctx.fail(errors.Errorf("Invalid format: %d", format))
	}
	ctx.cfg.format = format
	return nil
}

// OutFile returns the configured output filename.
func (ctx *Context) OutFile() string { return ctx.cfg.outFile }

// SetOutFile sets the output filename. Valid names are shorter than
// MaxFilenameLength.
func (ctx *Context) SetOutFile(name string) error {
	if len(name) >= MaxFilenameLength {
		return ctx.fail(errors.New("Output filename too long"))
	}
	ctx.cfg.outFile = name
	return nil
}

// DataFile returns the configured input data filename.
func (ctx *Context) DataFile() string { return ctx.cfg.dataFile }

// SetDataFile sets the input data filename. Valid names are shorter than
// MaxFilenameLength.
func (ctx *Context) SetDataFile(name string) error {
	if len(name) >= MaxFilenameLength {
		return ctx.fail(errors.New("Data filename too long"))
	}
	ctx.cfg.dataFile = name
	return nil
}

// FileInput reports whether ingestion should read from DataFile rather
// than from a string passed directly to SetDataStr.
func (ctx *Context) FileInput() bool { return ctx.cfg.fileInput }

// SetFileInput enables or disables file-based input.
func (ctx *Context) SetFileInput(enabled bool) { ctx.cfg.fileInput = enabled }
