// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"errors"
	"image"
)

// DefaultWidth is the default terminal width in columns.
const DefaultWidth = 100

var (
	ErrImage = errors.New("term: image has zero width or height")
	ErrWidth = errors.New("term: terminal width must be positive")
)

// darkThreshold is the exclusive intensity below which a pixel
// counts as dark.
const darkThreshold = 128

// Downsample converts img into a Grid at most width columns wide.
//
// The image is partitioned into blocks of scaleX×scaleY pixels,
// where scaleX = max(1, w/width) and scaleY = 2*scaleX, terminal
// cells being roughly twice as tall as wide.  Each block becomes one
// Symbol according to the fraction of its pixels darker than 128:
// above 0.7 Full, above 0.4 Medium, above 0.2 Light, otherwise
// Blank.  Sample coordinates past the image edge are clamped to the
// last row or column, so edge blocks average over a full block of
// samples.  The output is ceil(h/scaleY) rows of ceil(w/scaleX)
// cells.
func Downsample(img *image.Gray, width int) (Grid, error) {
	if width < 1 {
		return nil, ErrWidth
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, ErrImage
	}
	sx := w / width
	if sx < 1 {
		sx = 1
	}
	sy := 2 * sx
	grid := make(Grid, 0, (h+sy-1)/sy)
	for y := 0; y < h; y += sy {
		row := make([]Symbol, 0, (w+sx-1)/sx)
		for x := 0; x < w; x += sx {
			row = append(row, sample(img, x, y, sx, sy))
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// sample classifies the sx×sy block whose top left corner is (x, y),
// in coordinates relative to the image bounds.
func sample(img *image.Gray, x, y, sx, sy int) Symbol {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dark := 0
	for dy := 0; dy < sy; dy++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+min(y+dy, h-1))
		for dx := 0; dx < sx; dx++ {
			if img.Pix[i+min(x+dx, w-1)] < darkThreshold {
				dark++
			}
		}
	}
	// Cross multiplied thresholds.  Darkness is exclusive: a block
	// exactly 0.7 dark is Medium, not Full.
	switch total, d := sx*sy, dark*10; {
	case d > total*7:
		return Full
	case d > total*4:
		return Medium
	case d > total*2:
		return Light
	}
	return Blank
}
