// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"bufio"
	"image"
	"io"
)

// captions are the instructional lines appended after the raster.
var captions = []string{
	"Scan the code with your authenticator app.",
	"Keep it secret!  Anyone who scans it can generate your codes.",
	"If the code looks mangled, enlarge the terminal window or use mini size.",
}

// Options configures rendering.  The zero value renders at
// DefaultWidth, Direct, FullSize, with captions.
type Options struct {
	Width      int // target width in columns; DefaultWidth if zero
	Color      ColorMode
	Size       SizeMode
	NoCaptions bool // omit the instructional captions
}

// Lines converts img into lines of terminal output: the rendered
// raster followed by the captions, unless disabled.  The pipeline is
// a single pass: downsampling, then inversion for Inverted color
// mode, then row merging for Mini size.
func Lines(img *image.Gray, o Options) ([]Line, error) {
	width := o.Width
	if width == 0 {
		width = DefaultWidth
	}
	grid, err := Downsample(img, width)
	if err != nil {
		return nil, err
	}
	if o.Color == Inverted {
		grid = grid.Invert()
	}
	if o.Size == Mini {
		grid = grid.Reduce()
	}
	lines := make([]Line, 0, len(grid)+len(captions))
	for _, row := range grid {
		lines = append(lines, RasterLine(row))
	}
	if !o.NoCaptions {
		for _, c := range captions {
			lines = append(lines, CaptionLine(c))
		}
	}
	return lines, nil
}

// Write writes lines to w, each followed by a newline, flushing once
// after the last line.  A write or flush failure is returned as is;
// output already written is not rolled back.
func Write(w io.Writer, lines []Line) error {
	b := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := b.WriteString(l.String()); err != nil {
			return err
		}
		if err := b.WriteByte('\n'); err != nil {
			return err
		}
	}
	return b.Flush()
}

// Render converts img according to o and writes it to w.
func Render(w io.Writer, img *image.Gray, o Options) error {
	lines, err := Lines(img, o)
	if err != nil {
		return err
	}
	return Write(w, lines)
}
