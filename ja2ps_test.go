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

package ja2ps

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/ja2ps/cidtable"
	"seehuhn.de/go/ja2ps/internal/ghostscript"
	"seehuhn.de/go/ja2ps/ps"
)

func defaultTable(t *testing.T) *cidtable.Table {
	t.Helper()
	tab, err := cidtable.Default()
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func convertString(t *testing.T, in string, opt *Options) string {
	t.Helper()
	buf := &bytes.Buffer{}
	err := Convert(buf, strings.NewReader(in), defaultTable(t), opt)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEmptyDocument(t *testing.T) {
	got := convertString(t, "", nil)
	want := "%!PS\ngsave\nshowpage\ngrestore\n"
	if got != want {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestBlankLines(t *testing.T) {
	got := convertString(t, "\n\r\n\n", nil)
	want := "%!PS\ngsave\nshowpage\ngrestore\n"
	if got != want {
		t.Errorf("blank lines produced output:\n%s", got)
	}
}

func TestSingleLine(t *testing.T) {
	got := convertString(t, "あA(\n", nil)
	want := strings.Join([]string{
		"%!PS",
		"gsave",
		"0.75 setlinewidth",
		"40 782 moveto",
		"555 782 lineto",
		"555 40 lineto",
		"40 40 lineto",
		"closepath stroke",
		"/Times-Bold findfont 10 scalefont setfont",
		"500 800 moveto",
		"(Page: 1) show",
		"/GothicBBB-Medium-Identity-H findfont 12 scalefont setfont",
		"60 752 moveto",
		`(\003\113\000\042\() show`,
		"showpage",
		"grestore",
	}, "\n") + "\n"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}
}

func TestLineEndings(t *testing.T) {
	unix := convertString(t, "一行目\n二行目\n", nil)
	dos := convertString(t, "一行目\r\n二行目\r\n", nil)
	noEOL := convertString(t, "一行目\n二行目", nil)
	if dos != unix {
		t.Errorf("CRLF input differs from LF input:\n%s", dos)
	}
	if noEOL != unix {
		t.Errorf("missing final newline changes the output:\n%s", noEOL)
	}
}

func TestUnmappedCharacters(t *testing.T) {
	got := convertString(t, "😀\tx\n", nil)
	if !strings.Contains(got, "(????"+`\000\131`+") show\n") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

var (
	rowRe   = regexp.MustCompile(`(?m)^60 (\d+) moveto$`)
	labelRe = regexp.MustCompile(`(?m)^\(Page: (\d+)\) show$`)
)

func TestPagination(t *testing.T) {
	const rowsPerPage = 43
	for _, n := range []int{0, 1, 42, 43, 44, 86, 87, 200} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			in := strings.Repeat("x\n", n)
			got := convertString(t, in, nil)

			wantPages := (n + rowsPerPage - 1) / rowsPerPage
			if k := strings.Count(got, "setlinewidth\n"); k != wantPages {
				t.Errorf("%d page headers, want %d", k, wantPages)
			}
			wantShowPage := max(wantPages, 1)
			if k := strings.Count(got, "showpage\n"); k != wantShowPage {
				t.Errorf("%d showpage operators, want %d", k, wantShowPage)
			}

			var labels []int
			for _, m := range labelRe.FindAllStringSubmatch(got, -1) {
				k, _ := strconv.Atoi(m[1])
				labels = append(labels, k)
			}
			var wantLabels []int
			for i := 1; i <= wantPages; i++ {
				wantLabels = append(wantLabels, i)
			}
			if d := cmp.Diff(wantLabels, labels); d != "" {
				t.Errorf("page labels (-want +got):\n%s", d)
			}

			var ys []int
			for _, m := range rowRe.FindAllStringSubmatch(got, -1) {
				y, _ := strconv.Atoi(m[1])
				ys = append(ys, y)
			}
			var wantYs []int
			for i := range n {
				wantYs = append(wantYs, 752-16*(i%rowsPerPage))
			}
			if d := cmp.Diff(wantYs, ys); d != "" {
				t.Errorf("baselines (-want +got):\n%s", d)
			}
		})
	}
}

func TestNoDoubleShowPage(t *testing.T) {
	// exactly one full page: the final showpage must not be preceded by a
	// second one.
	got := convertString(t, strings.Repeat("x\n", 43), nil)
	if strings.Contains(got, "showpage\nshowpage\n") {
		t.Error("duplicate showpage")
	}
	// 'x' is CID 89
	if !strings.HasSuffix(got, "(\\000\\131) show\nshowpage\ngrestore\n") {
		t.Errorf("unexpected end of document:\n%s", got[len(got)-60:])
	}
}

func TestWrapLongLine(t *testing.T) {
	line := strings.Repeat("a", 100) + "\n" + strings.Repeat("あ", 40) + "\n"
	got := convertString(t, line, nil)
	if k := len(rowRe.FindAllString(got, -1)); k != 4 {
		t.Errorf("%d rows, want 4", k)
	}
}

func TestPaginatorAPI(t *testing.T) {
	buf := &bytes.Buffer{}
	p, err := NewPaginator(buf, defaultTable(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 50 {
		err := p.WriteRow(fmt.Sprintf("row %d", i))
		if err != nil {
			t.Fatal(err)
		}
	}
	if p.Pages() != 2 {
		t.Errorf("Pages() = %d, want 2", p.Pages())
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err == nil {
		t.Error("second Close succeeded")
	}
	if err := p.WriteRow("late"); err == nil {
		t.Error("WriteRow after Close succeeded")
	}
}

func TestInvalidUTF8(t *testing.T) {
	buf := &bytes.Buffer{}
	in := "ok\n\xff\xfe\n"
	err := Convert(buf, strings.NewReader(in), defaultTable(t), nil)

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %v", err)
	}
	if inputErr.Line != 2 {
		t.Errorf("error reported for line %d, want 2", inputErr.Line)
	}
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestInvalidOptions(t *testing.T) {
	cases := []func(opt *Options){
		func(opt *Options) { opt.Font.Size = 1 },
		func(opt *Options) { opt.Page.Width = 100 },
		func(opt *Options) { opt.Page.Height = 140 },
		func(opt *Options) { opt.BodyFont = "" },
	}
	for i, modify := range cases {
		opt := DefaultOptions()
		modify(opt)
		buf := &bytes.Buffer{}
		err := Convert(buf, strings.NewReader("x\n"), defaultTable(t), opt)
		if !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%d: expected ErrInvalidOptions, got %v", i, err)
		}
		if buf.Len() > 0 {
			t.Errorf("%d: output written for invalid options", i)
		}
	}
}

func TestReadError(t *testing.T) {
	r := iotest.TimeoutReader(strings.NewReader("first line\nsecond line\n"))
	err := Convert(&bytes.Buffer{}, r, defaultTable(t), nil)
	if !errors.Is(err, iotest.ErrTimeout) {
		t.Errorf("expected %v, got %v", iotest.ErrTimeout, err)
	}
}

type limitedWriter struct {
	n int
}

var errDiskFull = errors.New("disk full")

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		return 0, errDiskFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteError(t *testing.T) {
	for _, limit := range []int{0, 10, 100, 1000} {
		w := &limitedWriter{n: limit}
		in := strings.Repeat("日本語のテキスト\n", 100)
		err := Convert(w, strings.NewReader(in), defaultTable(t), nil)
		if !errors.Is(err, errDiskFull) {
			t.Errorf("limit %d: expected %v, got %v", limit, errDiskFull, err)
		}
	}
}

func TestResolverIsUsed(t *testing.T) {
	res := resolverFunc(func(r rune) (cid.CID, bool) {
		return cid.CID(r), true
	})
	buf := &bytes.Buffer{}
	err := Convert(buf, strings.NewReader("A\n"), res, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `(\000\101) show`) {
		t.Errorf("resolver not used:\n%s", buf.String())
	}
}

func TestGhostscript(t *testing.T) {
	opt := DefaultOptions()
	opt.BodyFont = "Courier" // a font which every Ghostscript installation has

	for _, n := range []int{0, 1, 43, 100} {
		buf := &bytes.Buffer{}
		in := strings.Repeat("日本語 text (with parentheses) \\ and more\n", n)
		err := Convert(buf, strings.NewReader(in), defaultTable(t), opt)
		if err != nil {
			t.Fatal(err)
		}

		want := max((n+42)/43, 1)
		if got := ghostscript.PageCount(t, buf.Bytes()); got != want {
			t.Errorf("%d lines: Ghostscript rendered %d pages, want %d", n, got, want)
		}
	}
}

type resolverFunc func(r rune) (cid.CID, bool)

func (f resolverFunc) Lookup(r rune) (cid.CID, bool) {
	return f(r)
}

var _ ps.Resolver = (*cidtable.Table)(nil)
