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

// Package layout computes the geometry of text pages.
//
// All glyphs are treated as fixed width: ASCII characters occupy one cell,
// all other characters occupy two cells.  A cell is half as wide as the
// font size.
package layout

// FontMetrics describes the vertical metrics of the body font, in
// PostScript points.
type FontMetrics struct {
	Size            int
	InternalLeading int
	Ascent          int
	Descent         int
	ExternalLeading int
}

// Gothic12 are the metrics used for 12pt Japanese gothic text.
var Gothic12 = FontMetrics{
	Size:            12,
	InternalLeading: 2,
	Ascent:          8,
	Descent:         4,
	ExternalLeading: 2,
}

// Width returns the width of one cell.
func (f FontMetrics) Width() int {
	return f.Size / 2
}

// Height returns the height of a line of text, without the external leading.
func (f FontMetrics) Height() int {
	return f.InternalLeading + f.Ascent + f.Descent
}

// RowHeight returns the distance between consecutive baselines.
func (f FontMetrics) RowHeight() int {
	return f.Height() + f.ExternalLeading
}
