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
	"errors"
	"io"
	"strconv"
	"unicode/utf8"

	"seehuhn.de/go/ja2ps/layout"
	"seehuhn.de/go/ja2ps/ps"
)

// Paginator distributes rows of text over pages.
//
// Pages are started lazily: the border and page number of a new page are
// only written once the first row for that page arrives.  A document
// without rows therefore consists of a single blank page.
type Paginator struct {
	w   *ps.Writer
	res ps.Resolver
	opt *Options

	maxChars int
	maxRows  int
	x        int
	top      int

	page       int // 0-based index of the current page
	rows       int // rows written on the current page
	y          int // baseline of the next row
	needHeader bool
	headers    int

	lineNo int
	buf    []byte
	closed bool
}

// NewPaginator checks the options and writes the start of a PostScript
// document to out.  Characters are mapped to CIDs using res.
// If opt is nil, [DefaultOptions] are used.
func NewPaginator(out io.Writer, res ps.Resolver, opt *Options) (*Paginator, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	if err := opt.check(); err != nil {
		return nil, err
	}

	x, y := opt.Page.TextOrigin(opt.Font)
	p := &Paginator{
		w:          ps.NewWriter(out),
		res:        res,
		opt:        opt,
		maxChars:   opt.Page.MaxCharsPerRow(opt.Font),
		maxRows:    opt.Page.MaxRowsPerPage(opt.Font),
		x:          x,
		top:        y,
		y:          y,
		needHeader: true,
	}

	p.w.Header()
	p.w.GSave()
	if p.w.Err != nil {
		return nil, p.w.Err
	}
	return p, nil
}

// WriteLine wraps one line of input text and writes the resulting rows.
// The line must not include the line terminator.  An empty line produces no
// output.
func (p *Paginator) WriteLine(line string) error {
	p.lineNo++
	if !utf8.ValidString(line) {
		return &InputError{Line: p.lineNo, Err: ErrInvalidUTF8}
	}
	for _, seg := range layout.Wrap(line, p.maxChars) {
		if err := p.WriteRow(seg); err != nil {
			return err
		}
	}
	return nil
}

// WriteRow writes one row of text, starting a new page if needed.
// The caller is responsible for making sure that the text fits into the
// width of the text area.
func (p *Paginator) WriteRow(text string) error {
	if p.closed {
		return errClosed
	}

	if p.needHeader {
		if p.rows > 0 {
			p.w.ShowPage()
			p.page++
			p.rows = 0
			p.y = p.top
		}
		p.writeHeader()
		p.needHeader = false
	}

	p.w.MoveTo(float64(p.x), float64(p.y))
	p.buf = ps.AppendCIDs(p.buf[:0], p.res, text)
	p.w.ShowLiteral(string(p.buf))

	p.rows++
	if p.rows >= p.maxRows {
		p.needHeader = true
	} else {
		p.y -= p.opt.Font.RowHeight()
	}
	return p.w.Err
}

func (p *Paginator) writeHeader() {
	opt := p.opt
	p.w.SetLineWidth(opt.BorderWidth)
	p.w.StrokeRect(opt.Page.Border())
	p.w.SelectFont(opt.LabelFont, opt.LabelSize)
	p.w.MoveTo(opt.LabelX, opt.LabelY)
	p.w.Show("Page: " + strconv.Itoa(p.page+1))
	p.w.SelectFont(opt.BodyFont, float64(opt.Font.Size))
	p.headers++
}

// Pages returns the number of pages started so far.
func (p *Paginator) Pages() int {
	return p.headers
}

// Close ends the last page and the document.
// Close does not close the underlying writer.
func (p *Paginator) Close() error {
	if p.closed {
		return errClosed
	}
	p.closed = true

	p.w.ShowPage()
	p.w.GRestore()
	return p.w.Err
}

var errClosed = errors.New("paginator already closed")
