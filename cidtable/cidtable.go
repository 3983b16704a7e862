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

// Package cidtable maps Unicode characters to Adobe-Japan1 CIDs.
//
// The mapping is read from a table in the format of Adobe's "cid2code.txt"
// files: one tab-separated record per CID, with 32 columns per record.
// Column 0 holds the CID (decimal) and column 20 holds the UniJIS-UTF32-H
// code points (hexadecimal, comma-separated), or "*" if the CID has no
// Unicode mapping.
package cidtable

import (
	"bufio"
	"compress/gzip"
	"embed"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"seehuhn.de/go/postscript/cid"
)

const (
	numColumns    = 32
	cidColumn     = 0
	unicodeColumn = 20
)

// Entry describes one glyph of the character collection.
//
// Unicodes lists the code points which are rendered using this glyph.
// The list can be empty, in which case the entry never matches.
type Entry struct {
	CID      cid.CID
	Unicodes []rune
}

// Table is an ordered list of CID entries.
//
// A Table is immutable after construction and can be used concurrently
// from several goroutines.
type Table struct {
	entries []Entry
	index   map[rune]cid.CID
}

// New creates a table from the given entries.  The order of the entries is
// significant: if a code point is listed in more than one entry, the first
// entry wins.  The slice is owned by the table after the call.
func New(entries []Entry) *Table {
	index := make(map[rune]cid.CID)
	for _, e := range entries {
		for _, r := range e.Unicodes {
			if _, seen := index[r]; !seen {
				index[r] = e.CID
			}
		}
	}
	return &Table{
		entries: entries,
		index:   index,
	}
}

// Read parses a cid2code table.
//
// Malformed records are skipped silently: lines without exactly 32 columns,
// records where column 20 is empty or "*", and code points which are not
// valid hexadecimal numbers.  A CID which cannot be parsed is taken to be 0.
// Only errors from r are reported.
func Read(r io.Reader) (*Table, error) {
	var entries []Entry

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if e, ok := parseRecord(line); ok {
				entries = append(entries, e)
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
	}

	return New(entries), nil
}

func parseRecord(line string) (Entry, bool) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	cols := strings.Split(line, "\t")
	if len(cols) != numColumns {
		return Entry{}, false
	}
	uni := cols[unicodeColumn]
	if uni == "" || uni == "*" {
		return Entry{}, false
	}

	var e Entry
	if val, err := strconv.ParseUint(cols[cidColumn], 10, 32); err == nil {
		e.CID = cid.CID(val)
	}
	for _, tok := range strings.Split(uni, ",") {
		val, err := strconv.ParseUint(tok, 16, 32)
		if err != nil {
			continue
		}
		e.Unicodes = append(e.Unicodes, rune(val))
	}
	return e, true
}

// Lookup returns the CID of the first entry which lists r.
// The second return value is false if no entry lists r.
func (t *Table) Lookup(r rune) (cid.CID, bool) {
	val, ok := t.index[r]
	return val, ok
}

// Entries returns the entries of the table, in file order.
// The returned slice must not be modified.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

//go:embed resources
var resources embed.FS

const defaultTable = "resources/Adobe-Japan1-cid2code.txt.gz"

// Default returns the built-in Adobe-Japan1 table.
//
// The built-in table covers JIS X 0208 together with the ASCII and
// half-width katakana ranges, and the circled digits and Roman numerals of
// the NEC extension row.  Use [ReadFile] to load Adobe's complete
// cid2code.txt instead.
//
// The table is parsed on the first call; all callers share the same
// read-only value.
var Default = sync.OnceValues(func() (*Table, error) {
	return load(defaultTable)
})

// ReadFile reads a table from the named file.  Files with a ".gz" suffix
// are decompressed.
func ReadFile(fname string) (*Table, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	var r io.Reader = fd
	if strings.HasSuffix(fname, ".gz") {
		zr, err := gzip.NewReader(fd)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	return Read(r)
}

func load(name string) (*Table, error) {
	fd, err := resources.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	r, err := gzip.NewReader(fd)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Read(r)
}
