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

// Package ja2ps converts plain Japanese text into PostScript.
//
// The text is set in a composite font with the Identity-H encoding, so every
// character is written as its two-byte Adobe-Japan1 CID.  Lines are wrapped
// at the right margin and distributed over A4 pages.  Each page gets a
// border and a page number.
//
// A minimal conversion looks like this:
//
//	tab, err := cidtable.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = ja2ps.Convert(os.Stdout, os.Stdin, tab, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The [Paginator] type gives finer control, for example to write text which
// does not come from an [io.Reader].
package ja2ps
