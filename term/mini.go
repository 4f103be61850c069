// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

// Reduce merges vertically adjacent row pairs into single rows of
// half block glyphs, halving output height to ceil(n/2) rows.  An
// odd final row is paired with an implicit blank row.  A dark glyph
// over a blank becomes an upper half block, a blank over a dark
// glyph a lower half block, an equal dark pair keeps its glyph, and
// any other pair merges to Blank.
func (g Grid) Reduce() Grid {
	out := make(Grid, 0, (len(g)+1)/2)
	for y := 0; y < len(g); y += 2 {
		top := g[y]
		var bot []Symbol
		if y+1 < len(g) {
			bot = g[y+1]
		}
		row := make([]Symbol, len(top))
		for x, t := range top {
			b := Blank
			if bot != nil {
				b = bot[x]
			}
			switch {
			case t == b && t.dark():
				row[x] = t
			case t.dark() && b == Blank:
				row[x] = UpperHalf
			case t == Blank && b.dark():
				row[x] = LowerHalf
			}
		}
		out = append(out, row)
	}
	return out
}
