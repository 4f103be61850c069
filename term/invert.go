// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

// inverse flips the visual polarity of each glyph.  The table is not
// involutive: Medium inverts to Thin, which inverts to itself, so
// the shade glyphs do not round trip.  Half blocks never reach
// inversion, which runs before size reduction.
var inverse = [...]Symbol{
	Blank:     Full,
	Light:     Medium,
	Medium:    Thin,
	Full:      Blank,
	Thin:      Thin,
	UpperHalf: UpperHalf,
	LowerHalf: LowerHalf,
}

// Invert returns a copy of g with the polarity of every cell
// flipped.
func (g Grid) Invert() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		r := make([]Symbol, len(row))
		for x, s := range row {
			r[x] = inverse[s]
		}
		out[y] = r
	}
	return out
}
