// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import "strings"

// A Line is one line of output: either a row of raster cells or a
// caption.  Keeping the two as distinct variants means transforms
// over raster content can never touch caption text.
type Line struct {
	cells   []Symbol
	caption string
}

// RasterLine returns a Line holding a row of raster cells.
func RasterLine(cells []Symbol) Line { return Line{cells: cells} }

// CaptionLine returns a Line holding caption text.
func CaptionLine(text string) Line { return Line{caption: text} }

// IsCaption reports whether l holds caption text.
func (l Line) IsCaption() bool { return l.cells == nil }

// String renders l as printable text.
func (l Line) String() string {
	if l.IsCaption() {
		return l.caption
	}
	var b strings.Builder
	b.Grow(len(l.cells) * 3) // block glyphs are 3 bytes in UTF-8
	for _, s := range l.cells {
		b.WriteRune(s.Rune())
	}
	return b.String()
}

// InvertLines flips the polarity of every raster line in lines.
// Caption lines pass through unchanged.
func InvertLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		if l.IsCaption() {
			out[i] = l
			continue
		}
		r := make([]Symbol, len(l.cells))
		for x, s := range l.cells {
			r[x] = inverse[s]
		}
		out[i] = RasterLine(r)
	}
	return out
}
