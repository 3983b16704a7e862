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

package cidtable

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/cid"
)

// record returns a 32-column table line with the given CID and
// UniJIS-UTF32-H columns.
func record(cidCol, uniCol string) string {
	cols := make([]string, numColumns)
	for i := range cols {
		cols[i] = "*"
	}
	cols[cidColumn] = cidCol
	cols[unicodeColumn] = uniCol
	return strings.Join(cols, "\t") + "\n"
}

func TestRead(t *testing.T) {
	in := "# comment line\n" +
		record("CID", "UniJIS-UTF32-H") +
		record("1", "0020") +
		record("2", "*") +
		record("3", "") +
		"4\t3042\n" +
		record("x", "3044") +
		record("665", "301c,ff5e") +
		record("7", "zz,3046,") +
		record("8", "zz") +
		strings.TrimSuffix(record("843", "3042"), "\n") + "\r\n"

	tab, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	want := []Entry{
		{CID: 0, Unicodes: nil},
		{CID: 1, Unicodes: []rune{0x20}},
		{CID: 0, Unicodes: []rune{0x3044}},
		{CID: 665, Unicodes: []rune{0x301C, 0xFF5E}},
		{CID: 7, Unicodes: []rune{0x3046}},
		{CID: 8, Unicodes: nil},
		{CID: 843, Unicodes: []rune{0x3042}},
	}
	if d := cmp.Diff(want, tab.Entries()); d != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", d)
	}
	if tab.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", tab.Len(), len(want))
	}
}

func TestReadNoTrailingNewline(t *testing.T) {
	in := strings.TrimSuffix(record("843", "3042"), "\n")
	tab, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if val, ok := tab.Lookup('あ'); !ok || val != 843 {
		t.Errorf("Lookup('あ') = %d, %t, want 843, true", val, ok)
	}
}

func TestReadError(t *testing.T) {
	_, err := Read(iotest.ErrReader(iotest.ErrTimeout))
	if err != iotest.ErrTimeout {
		t.Errorf("expected %v, got %v", iotest.ErrTimeout, err)
	}
}

func TestFirstMatchWins(t *testing.T) {
	tab := New([]Entry{
		{CID: 10, Unicodes: []rune{'a'}},
		{CID: 20, Unicodes: []rune{'b', 'a'}},
		{CID: 30, Unicodes: []rune{'b'}},
	})

	cases := []struct {
		r    rune
		want cid.CID
		ok   bool
	}{
		{'a', 10, true},
		{'b', 20, true},
		{'c', 0, false},
	}
	for _, c := range cases {
		got, ok := tab.Lookup(c.r)
		if got != c.want || ok != c.ok {
			t.Errorf("Lookup(%q) = %d, %t, want %d, %t", c.r, got, ok, c.want, c.ok)
		}
	}
}

// scan is the reference implementation of Lookup: a linear search over the
// entries in file order.
func scan(t *Table, r rune) (cid.CID, bool) {
	for _, e := range t.entries {
		for _, u := range e.Unicodes {
			if u == r {
				return e.CID, true
			}
		}
	}
	return 0, false
}

func TestLookupMatchesScan(t *testing.T) {
	tab, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	var probes []rune
	for _, e := range tab.Entries() {
		probes = append(probes, e.Unicodes...)
	}
	probes = append(probes, 0, '\n', 0xD800, 0x1F600, 0x10FFFF)

	for _, r := range probes {
		got, gotOK := tab.Lookup(r)
		want, wantOK := scan(tab, r)
		if got != want || gotOK != wantOK {
			t.Errorf("U+%04X: Lookup = %d, %t, scan = %d, %t", r, got, gotOK, want, wantOK)
		}
	}
}

func TestDefault(t *testing.T) {
	tab, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		r    rune
		want cid.CID
	}{
		{' ', 1},
		{'A', 34},
		{'~', 95},
		{'ｱ', 343}, // HALFWIDTH KATAKANA LETTER A
		{'　', 633}, // IDEOGRAPHIC SPACE
		{'〜', 665}, // WAVE DASH
		{'～', 665}, // FULLWIDTH TILDE
		{'０', 780}, // FULLWIDTH DIGIT ZERO
		{'あ', 843},
		{'ア', 926},
		{'亜', 1125},
		{'熙', 7479},
		{'①', 7555}, // CIRCLED DIGIT ONE
		{'⑳', 7574}, // CIRCLED NUMBER TWENTY
		{'Ⅰ', 7575}, // ROMAN NUMERAL ONE
		{'Ⅹ', 7584}, // ROMAN NUMERAL TEN
	}
	for _, c := range cases {
		got, ok := tab.Lookup(c.r)
		if !ok || got != c.want {
			t.Errorf("Lookup(%q) = %d, %t, want %d", c.r, got, ok, c.want)
		}
	}

	if _, ok := tab.Lookup('\U0001F600'); ok {
		t.Error("unexpected mapping for U+1F600")
	}

	again, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if again != tab {
		t.Error("Default returned a different table on the second call")
	}
}

func TestReadFile(t *testing.T) {
	in := record("CID", "UniJIS-UTF32-H") + record("843", "3042") + record("1125", "4e9c")

	buf := &bytes.Buffer{}
	zw := gzip.NewWriter(buf)
	if _, err := zw.Write([]byte(in)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	files := map[string][]byte{
		"cid2code.txt":    []byte(in),
		"cid2code.txt.gz": buf.Bytes(),
	}
	for name, data := range files {
		fname := filepath.Join(dir, name)
		if err := os.WriteFile(fname, data, 0o644); err != nil {
			t.Fatal(err)
		}

		tab, err := ReadFile(fname)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got, ok := tab.Lookup('亜'); !ok || got != 1125 {
			t.Errorf("%s: Lookup('亜') = %d, %t", name, got, ok)
		}
	}

	_, err := ReadFile(filepath.Join(dir, "missing.txt"))
	if !os.IsNotExist(err) {
		t.Errorf("missing file: got %v", err)
	}
}
