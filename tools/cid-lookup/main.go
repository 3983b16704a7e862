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

// Cid-lookup shows how ja2ps maps characters to Adobe-Japan1 CIDs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/ja2ps/cidtable"
	"seehuhn.de/go/ja2ps/cmap"
	"seehuhn.de/go/ja2ps/ps"
	"seehuhn.de/go/ja2ps/tools/internal/cli"
)

var (
	useCMap    = flag.Bool("cmap", false, "use the UniJIS-UTF32-H CMap instead of the cid2code table")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cid-lookup: show the CIDs used for Japanese text\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", cli.Version("cid-lookup"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  cid-lookup [options] [text...]\n\n")
		fmt.Fprintf(os.Stderr, "Without text arguments, lines are read from standard input.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cid-lookup 日本語\n")
		fmt.Fprintf(os.Stderr, "  cid-lookup -cmap < input.txt\n")
	}
	flag.Parse()

	if flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(os.Stdout, os.Stdin, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, in io.Reader, args []string) (err error) {
	stop, err := cli.Profile(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		stopErr := stop()
		if err == nil {
			err = stopErr
		}
	}()

	res, err := getResolver(*useCMap)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	if len(args) > 0 {
		for _, text := range args {
			describe(w, res, text)
		}
	} else {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			describe(w, res, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}
	return w.Flush()
}

func getResolver(useCMap bool) (ps.Resolver, error) {
	if useCMap {
		return cmap.UniJIS()
	}
	return cidtable.Default()
}

func describe(w io.Writer, res ps.Resolver, text string) {
	for _, r := range text {
		fmt.Fprintln(w, describeRune(res, r))
	}
}

// describeRune returns one line of output for r: the code point, the
// character itself, the CID and the PostScript string ja2ps writes for it,
// and the Unicode name.
func describeRune(res ps.Resolver, r rune) string {
	glyph := string(r)
	if !unicode.IsPrint(r) {
		glyph = "-"
	}
	code := ps.EncodeCIDs(res, string(r))

	var mapping string
	if val, ok := res.Lookup(r); ok {
		mapping = fmt.Sprintf("CID %d", val)
	} else {
		mapping = "unmapped"
	}

	line := fmt.Sprintf("U+%04X %s %s (%s)", r, glyph, mapping, code)
	if name := runenames.Name(r); name != "" {
		line += " " + name
	}
	return line
}
