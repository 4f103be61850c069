// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"reflect"
	"testing"
)

func TestReducePairs(t *testing.T) {
	g := Grid{
		{Full, Blank, Full, Medium, Light, Medium, Blank},
		{Full, Full, Blank, Medium, Light, Light, Blank},
	}
	want := Grid{
		{Full, LowerHalf, UpperHalf, Medium, Light, Blank, Blank},
	}
	if got := g.Reduce(); !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestReduceOddRows(t *testing.T) {
	// An odd final row pairs with an implicit blank row.
	g := Grid{{Full}, {Full}, {Medium}}
	r := g.Reduce()
	if len(r) != 2 {
		t.Fatalf("rows = %d, want 2", len(r))
	}
	if r[0][0] != Full {
		t.Errorf("row 0 = %d, want Full", r[0][0])
	}
	if r[1][0] != UpperHalf {
		t.Errorf("row 1 = %d, want UpperHalf", r[1][0])
	}
}

func TestReduceRowCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		g := make(Grid, n)
		for i := range g {
			g[i] = []Symbol{Blank}
		}
		if got, want := len(g.Reduce()), (n+1)/2; got != want {
			t.Errorf("%d rows reduce to %d, want %d", n, got, want)
		}
	}
}

func TestReduceThin(t *testing.T) {
	// Thin comes from inversion and is not a dark glyph, so thin
	// pairs merge to Blank.
	g := Grid{{Thin, Thin, Blank}, {Thin, Blank, Thin}}
	want := Grid{{Blank, Blank, Blank}}
	if got := g.Reduce(); !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}
