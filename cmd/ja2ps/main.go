// seehuhn.de/go/ja2ps - convert Japanese plain text to PostScript
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Ja2ps converts Japanese plain text into a PostScript document.
//
// Usage:
//
//	ja2ps [-cid2code file] [input.txt [output.ps]]
//
// If no input file is given, the text is read from standard input.  If no
// output file is given, PostScript is written to standard output.  The
// input must be UTF-8 encoded.  The text is set on A4 pages using the
// printer font GothicBBB-Medium-Identity-H.
//
// The -cid2code option selects a CID table in the format of Adobe's
// cid2code.txt (optionally gzip-compressed) in place of the built-in one.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/ja2ps"
	"seehuhn.de/go/ja2ps/cidtable"
)

func main() {
	tablePath := flag.String("cid2code", "", "read the CID table from `file`")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: ja2ps [-cid2code file] [input.txt [output.ps]]")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	var inPath, outPath string
	if len(args) > 0 {
		inPath = args[0]
	}
	if len(args) > 1 {
		outPath = args[1]
	}

	err := run(*tablePath, inPath, outPath, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ja2ps:", err)
		os.Exit(1)
	}
}

// run converts the text in inPath to PostScript in outPath.  Empty paths
// select the built-in CID table, stdin and stdout, respectively.
func run(tablePath, inPath, outPath string, stdin io.Reader, stdout io.Writer) (err error) {
	tab, err := loadTable(tablePath)
	if err != nil {
		return fmt.Errorf("loading CID table: %w", err)
	}

	in := stdin
	if inPath != "" {
		fd, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	}

	out := stdout
	if outPath != "" {
		fd, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer func() {
			closeErr := fd.Close()
			if err == nil {
				err = closeErr
			}
		}()
		out = fd
	}

	w := bufio.NewWriter(out)
	err = ja2ps.Convert(w, in, tab, nil)
	if err != nil {
		return err
	}
	return w.Flush()
}

func loadTable(fname string) (*cidtable.Table, error) {
	if fname == "" {
		return cidtable.Default()
	}
	return cidtable.ReadFile(fname)
}
