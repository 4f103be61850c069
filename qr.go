// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package easytotp

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"

	"github.com/easytotp/easytotp/term"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% recoverable
	M              // 15% recoverable
	Q              // 25% recoverable
	H              // 30% recoverable
)

var ErrLevel = errors.New("easytotp: invalid error correction level")

var recovery = [...]qrcode.RecoveryLevel{
	qrcode.Low, qrcode.Medium, qrcode.High, qrcode.Highest,
}

// qr encodes the otpauth URL at the key's correction level.
func (k *Key) qr() (*qrcode.QRCode, error) {
	if k.Level < L || k.Level > H {
		return nil, ErrLevel
	}
	q, err := qrcode.New(k.key.URL(), recovery[k.Level])
	if err != nil {
		return nil, fmt.Errorf("easytotp: encoding QR: %w", err)
	}
	return q, nil
}

// QR returns the setup code as a size×size grayscale raster.
func (k *Key) QR(size int) (*image.Gray, error) {
	q, err := k.qr()
	if err != nil {
		return nil, err
	}
	return grayView(q.Image(size)), nil
}

// PNG returns the setup code as a size×size PNG image, white on
// black if inverted.
//
// BEWARE: the image contains the secret.
func (k *Key) PNG(size int, inverted bool) ([]byte, error) {
	q, err := k.qr()
	if err != nil {
		return nil, err
	}
	if inverted {
		q.ForegroundColor, q.BackgroundColor =
			q.BackgroundColor, q.ForegroundColor
	}
	b, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("easytotp: encoding PNG: %w", err)
	}
	return b, nil
}

// DecodePNG decodes a PNG image into the grayscale raster form
// consumed by package term.
func DecodePNG(data []byte) (*image.Gray, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("easytotp: decoding raster: %w", err)
	}
	return grayView(img), nil
}

// Render writes the setup code to w as terminal art, followed by
// instructional captions unless disabled in o.
func (k *Key) Render(w io.Writer, o term.Options) error {
	width := o.Width
	if width == 0 {
		width = term.DefaultWidth
	}
	// Two raster pixels per column keeps sampling blocks at 2×4.
	img, err := k.QR(2 * width)
	if err != nil {
		return err
	}
	return term.Render(w, img, o)
}

// grayView copies src into a grayscale raster indexed from the
// origin.
func grayView(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	return dst
}
