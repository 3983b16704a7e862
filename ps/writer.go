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

// Package ps writes PostScript page descriptions.
package ps

import (
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/geom/rect"
)

// Writer writes PostScript operators to an output stream.
//
// The first write error is stored in Err.  Once Err is set, all further
// operations are ignored.
type Writer struct {
	Content io.Writer
	Err     error
}

// NewWriter allocates a new Writer.
func NewWriter(out io.Writer) *Writer {
	return &Writer{Content: out}
}

// Header writes the "%!PS" magic line which starts every PostScript file.
func (w *Writer) Header() {
	w.emit("%!PS")
}

// GSave saves the graphics state.
//
// This implements the PostScript operator "gsave".
func (w *Writer) GSave() {
	w.emit("gsave")
}

// GRestore restores the graphics state saved by the matching GSave.
//
// This implements the PostScript operator "grestore".
func (w *Writer) GRestore() {
	w.emit("grestore")
}

// ShowPage ends the current page.
//
// This implements the PostScript operator "showpage".
func (w *Writer) ShowPage() {
	w.emit("showpage")
}

// SetLineWidth sets the line width for stroking.
//
// This implements the PostScript operator "setlinewidth".
func (w *Writer) SetLineWidth(width float64) {
	w.emit(format(width), "setlinewidth")
}

// MoveTo starts a new subpath at the given coordinates.
//
// This implements the PostScript operator "moveto".
func (w *Writer) MoveTo(x, y float64) {
	w.emit(format(x), format(y), "moveto")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PostScript operator "lineto".
func (w *Writer) LineTo(x, y float64) {
	w.emit(format(x), format(y), "lineto")
}

// ClosePathStroke closes the current subpath and strokes the path.
//
// This implements the PostScript operators "closepath" and "stroke".
func (w *Writer) ClosePathStroke() {
	w.emit("closepath", "stroke")
}

// StrokeRect strokes the outline of r, starting at the top left corner and
// proceeding clockwise.
func (w *Writer) StrokeRect(r rect.Rect) {
	w.MoveTo(r.LLx, r.URy)
	w.LineTo(r.URx, r.URy)
	w.LineTo(r.URx, r.LLy)
	w.LineTo(r.LLx, r.LLy)
	w.ClosePathStroke()
}

// SelectFont makes the named font, scaled to the given size, the current
// font.
//
// This implements the PostScript operators "findfont", "scalefont" and
// "setfont".
func (w *Writer) SelectFont(name string, size float64) {
	w.emit("/"+name, "findfont", format(size), "scalefont", "setfont")
}

// Show paints the string s, starting at the current point.
// The string is escaped as needed.
//
// This implements the PostScript operator "show".
func (w *Writer) Show(s string) {
	w.ShowLiteral(string(AppendString(nil, s)))
}

// ShowLiteral paints a string, starting at the current point.
// The argument is the body of a PostScript string literal, without the
// enclosing parentheses, and must already be escaped.
//
// This implements the PostScript operator "show".
func (w *Writer) ShowLiteral(body string) {
	w.emit("("+body+")", "show")
}

func (w *Writer) emit(args ...any) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, args...)
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
