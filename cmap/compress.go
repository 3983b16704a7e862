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

package cmap

import (
	"maps"
	"slices"
	"unicode"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/ja2ps/cidtable"
)

// Compress converts a CID table into a CMap.
//
// Runs of consecutive code points which map to consecutive CIDs are
// combined into a [Range], as long as they share all but the last byte of
// the character code.  The remaining code points become [Single] entries.
// All Single entries come before all Range entries.  The resulting map
// agrees with tab.Lookup for every valid code point.
func Compress(tab *cidtable.Table, name string, ros *cid.SystemInfo) *Map {
	m := make(map[rune]cid.CID)
	for _, e := range tab.Entries() {
		for _, r := range e.Unicodes {
			if r < 0 || r > unicode.MaxRune {
				continue
			}
			if _, seen := m[r]; !seen {
				m[r] = e.CID
			}
		}
	}
	codes := slices.Sorted(maps.Keys(m))

	var singles, ranges []Mapping
	for i := 0; i < len(codes); {
		first := codes[i]
		j := i
		for j+1 < len(codes) &&
			codes[j+1] == codes[j]+1 &&
			m[codes[j+1]] == m[codes[j]]+1 &&
			codes[j+1]>>8 == first>>8 {
			j++
		}
		if j > i {
			ranges = append(ranges, Range{First: first, Last: codes[j], CID: m[first]})
		} else {
			singles = append(singles, Single{Code: first, CID: m[first]})
		}
		i = j + 1
	}

	return &Map{
		Name:     name,
		ROS:      ros,
		Mappings: append(singles, ranges...),
	}
}
