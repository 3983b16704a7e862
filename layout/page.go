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

package layout

import "seehuhn.de/go/geom/rect"

// Edges holds one length for each side of a rectangle.
type Edges struct {
	Top, Right, Bottom, Left int
}

// Page describes the paper size, the page margins and the padding between
// the page border and the text.  The border is drawn at the inner edge of
// the margins; text is placed inside the padding.
type Page struct {
	Width, Height int
	Margin        Edges
	Padding       Edges
}

// A4 is the page geometry used by ja2ps.
var A4 = Page{
	Width:   595,
	Height:  842,
	Margin:  Edges{Top: 60, Right: 40, Bottom: 40, Left: 40},
	Padding: Edges{Top: 20, Right: 20, Bottom: 20, Left: 20},
}

// ContentWidth returns the width of the text area.
func (p Page) ContentWidth() int {
	return p.Width - p.Margin.Left - p.Margin.Right - p.Padding.Left - p.Padding.Right
}

// ContentHeight returns the height of the text area.
func (p Page) ContentHeight() int {
	return p.Height - p.Margin.Top - p.Margin.Bottom - p.Padding.Top - p.Padding.Bottom
}

// ContentTop returns the y coordinate of the top edge of the text area.
func (p Page) ContentTop() int {
	return p.Margin.Bottom + p.Padding.Bottom + p.ContentHeight()
}

// MaxCharsPerRow returns the number of cells which fit into one row.
func (p Page) MaxCharsPerRow(f FontMetrics) int {
	return p.ContentWidth() / f.Width()
}

// MaxRowsPerPage returns the number of rows which fit onto one page.
func (p Page) MaxRowsPerPage(f FontMetrics) int {
	return p.ContentHeight() / f.RowHeight()
}

// TextOrigin returns the start of the baseline of the first row on a page.
func (p Page) TextOrigin(f FontMetrics) (x, y int) {
	x = p.Margin.Left + p.Padding.Left
	y = p.ContentTop() - f.InternalLeading - f.Ascent
	return x, y
}

// Border returns the rectangle enclosing the text area and its padding.
func (p Page) Border() rect.Rect {
	return rect.Rect{
		LLx: float64(p.Margin.Left),
		LLy: float64(p.Margin.Bottom),
		URx: float64(p.Margin.Left + p.Padding.Left + p.ContentWidth() + p.Padding.Right),
		URy: float64(p.Margin.Bottom + p.Padding.Bottom + p.ContentHeight() + p.Padding.Top),
	}
}
