// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"reflect"
	"testing"
)

func TestInvertTable(t *testing.T) {
	g := Grid{{Blank, Light, Medium, Full, Thin}}
	want := Grid{{Full, Medium, Thin, Blank, Thin}}
	if got := g.Invert(); !reflect.DeepEqual(got, want) {
		t.Errorf("Invert() = %v, want %v", got, want)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	// Full and Blank round trip under double inversion; the shade
	// glyphs collapse into Thin and do not.
	g := Grid{{Full, Blank, Medium, Light}}
	twice := g.Invert().Invert()
	if twice[0][0] != Full || twice[0][1] != Blank {
		t.Errorf("Full/Blank do not round trip: %v", twice[0][:2])
	}
	if twice[0][2] != Thin {
		t.Errorf("Medium twice inverted = %d, want Thin", twice[0][2])
	}
	if twice[0][3] != Thin {
		t.Errorf("Light twice inverted = %d, want Thin", twice[0][3])
	}
}

func TestInvertCopies(t *testing.T) {
	g := Grid{{Full, Blank}}
	g.Invert()
	if g[0][0] != Full || g[0][1] != Blank {
		t.Error("Invert modified its receiver")
	}
}

func TestInvertLinesSkipsCaptions(t *testing.T) {
	const caption = "Scan it: user@example.com, and keep it secret!"
	lines := []Line{
		RasterLine([]Symbol{Full, Blank}),
		CaptionLine(caption),
	}
	out := InvertLines(lines)
	if got := out[0].String(); got != " █" {
		t.Errorf("raster line = %q, want %q", got, " █")
	}
	if got := out[1].String(); got != caption {
		t.Errorf("caption altered: %q", got)
	}
	if !out[1].IsCaption() {
		t.Error("caption lost its tag")
	}
}
