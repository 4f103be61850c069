// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package term renders grayscale QR rasters as character cell art.
*/
package term

// A Symbol is one character cell of rendered raster.
type Symbol uint8

const (
	Blank  Symbol = iota // ' '
	Light                // ▒
	Medium               // ▓
	Full                 // █

	// Thin is produced only by inversion.
	Thin // ░

	// Half blocks are produced only by mini size reduction.
	UpperHalf // ▀
	LowerHalf // ▄
)

var glyphs = [...]rune{
	Blank:     ' ',
	Light:     '▒',
	Medium:    '▓',
	Full:      '█',
	Thin:      '░',
	UpperHalf: '▀',
	LowerHalf: '▄',
}

// Rune returns the glyph for s.
func (s Symbol) Rune() rune { return glyphs[s] }

// dark reports whether s is a shaded full-height glyph.
func (s Symbol) dark() bool { return s == Light || s == Medium || s == Full }

// A Grid is a rectangular raster of Symbols, row-major, top to
// bottom.  All rows have equal length.
type Grid [][]Symbol

// A ColorMode selects the polarity of rendered output.
type ColorMode uint8

const (
	Direct   ColorMode = iota // dark pixels render as filled glyphs
	Inverted                  // dark pixels render blank on a filled field
)

// A SizeMode selects the output height.
type SizeMode uint8

const (
	FullSize SizeMode = iota // one terminal row per grid row
	Mini                     // row pairs merged into half block rows
)
