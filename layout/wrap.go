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

import "strings"

// RuneWidth returns the number of cells occupied by r.
func RuneWidth(r rune) int {
	if r < 0x80 {
		return 1
	}
	return 2
}

// Wrap splits a line of text into segments of at most maxChars cells.
//
// Segments are filled greedily and characters are never split.  The first
// character of a segment is always accepted, so a segment can exceed
// maxChars if a single character is wider than the limit.  Empty segments
// are never returned: an empty line gives no segments, and a line which
// starts with an over-wide character begins with that character's segment
// rather than with an empty one.
func Wrap(line string, maxChars int) []string {
	var segments []string
	var buf strings.Builder
	width := 0
	for _, r := range line {
		w := RuneWidth(r)
		if width+w > maxChars && buf.Len() > 0 {
			segments = append(segments, buf.String())
			buf.Reset()
			width = 0
		}
		buf.WriteRune(r)
		width += w
	}
	if buf.Len() > 0 {
		segments = append(segments, buf.String())
	}
	return segments
}
