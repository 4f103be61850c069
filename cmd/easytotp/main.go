// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/easytotp/easytotp"
	"github.com/easytotp/easytotp/term"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	issuer  string         // issuing service
	account string         // account name
	secret  string         // raw secret
	fn      string         // output filename
	width   int            // terminal columns
	pixels  int            // PNG side length
	lev     easytotp.Level // QR correction level
	format  int            // output format
	rev     bool           // inverted colours
	code    bool           // print secret and current code
	noCap   bool           // suppress captions
}{}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprintln(w, "TOTP setup code generator")
	fmt.Fprintln(w, "Usage:", cl.UsageLine())
	cl.PrintOptions(w)
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println("easytotp version 1.0.0")
	os.Exit(0)
}

var formats = []string{"utf8", "utf8i", "mini", "minii", "png", "pngi"}

var encoders = [...]func(*easytotp.Key, io.Writer) error{
	text, // utf8
	text, // mini
	pngEnc,
}

func text(k *easytotp.Key, w io.Writer) error {
	o := term.Options{
		Width:      g.width,
		NoCaptions: g.noCap,
	}
	if g.rev {
		o.Color = term.Inverted
	}
	if g.format == 1 {
		o.Size = term.Mini
	}
	return k.Render(w, o)
}

func pngEnc(k *easytotp.Key, w io.Writer) error {
	b, err := k.PNG(g.pixels, g.rev)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version").SetFlag()
	getopt.FlagLong(&g.issuer, "issuer", 'i',
		"issuing service name (required)", "name")
	getopt.FlagLong(&g.account, "account", 'a',
		"account name, usually an email address (required)", "name")
	getopt.FlagLong(&g.secret, "secret", 's', "raw shared secret; "+
		"a random secret is generated if not given", "key")
	getopt.FlagLong(&g.code, "code", 'c',
		"print secret, otpauth URL and current code to standard error")
	getopt.FlagLong(&g.noCap, "no-captions", 'q',
		"omit instructional captions")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	width := getopt.Unsigned('w', term.DefaultWidth,
		&getopt.UnsignedLimit{Base: 0, Bits: 13, Min: 1, Max: 1 << 12},
		"terminal width in columns for types utf8[i] and mini[i]",
		"cols")
	pixels := getopt.Unsigned('p', 256,
		&getopt.UnsignedLimit{Base: 0, Bits: 15, Min: 16, Max: 1 << 14},
		"image size in pixels for types png[i]", "size")
	fno := getopt.Flag(&g.fn, 'o',
		`output file, or "-" for standard output`, "file")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.issuer == "" || g.account == "" {
		fmt.Fprintln(os.Stderr, "-i and -a are required")
		usage()
	}
	g.width = int(*width)
	g.pixels = int(*pixels)
	g.lev = easytotp.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	k, err := easytotp.New(g.secret, g.issuer, g.account)
	if err != nil {
		log.Fatalln(err)
	}
	k.Level = g.lev

	w := os.Stdout
	if g.fn != "" {
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	err = encoders[g.format](k, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}

	if g.code {
		code, err := k.Code()
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Fprintln(os.Stderr, "secret:", k.Secret())
		fmt.Fprintln(os.Stderr, "url:   ", k.URL())
		fmt.Fprintln(os.Stderr, "code:  ", code)
	}
}
