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

package ps

import (
	"fmt"
	"unicode"

	"seehuhn.de/go/postscript/cid"
)

// Resolver maps characters to CIDs.
type Resolver interface {
	// Lookup returns the CID used to render r.  The second return value is
	// false if r cannot be rendered.
	Lookup(r rune) (cid.CID, bool)
}

// Placeholder replaces characters which cannot be shown.
const Placeholder = "??"

// maxCID is the largest CID which fits into a two-byte character code.
const maxCID = 0xFFFF

// AppendCIDs appends the body of a PostScript string literal to buf, which
// shows text using a font with two-byte CID codes (for example an
// Identity-H font).
//
// Control characters, characters not known to res, and characters with a
// CID outside the two-byte range are replaced by [Placeholder].
func AppendCIDs(buf []byte, res Resolver, text string) []byte {
	for _, r := range text {
		switch {
		case unicode.IsControl(r):
			buf = append(buf, Placeholder...)
		case r == '\\' || r == '(' || r == ')':
			buf = append(buf, '\\', byte(r))
		default:
			val, ok := res.Lookup(r)
			if !ok || val > maxCID {
				buf = append(buf, Placeholder...)
				continue
			}
			buf = fmt.Appendf(buf, `\%03o\%03o`, (val>>8)&0xFF, val&0xFF)
		}
	}
	return buf
}

// EncodeCIDs returns the body of a PostScript string literal which shows
// text using a font with two-byte CID codes.  See [AppendCIDs].
func EncodeCIDs(res Resolver, text string) string {
	return string(AppendCIDs(nil, res, text))
}

// AppendString appends s to buf as the body of a PostScript string literal.
// Backslashes and parentheses are escaped, control characters and
// non-ASCII bytes are written as octal escapes.
func AppendString(buf []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == '(' || c == ')':
			buf = append(buf, '\\', c)
		case c < 32 || c >= 127:
			buf = fmt.Appendf(buf, `\%03o`, c)
		default:
			buf = append(buf, c)
		}
	}
	return buf
}
