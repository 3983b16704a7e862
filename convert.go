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
	"bufio"
	"io"
	"strings"

	"seehuhn.de/go/ja2ps/ps"
)

// Convert reads plain text from r and writes a PostScript document to w.
//
// Lines may be terminated by "\n" or "\r\n".  Characters are mapped to CIDs
// using res; characters which cannot be mapped are shown as "??".
// If opt is nil, [DefaultOptions] are used.
func Convert(w io.Writer, r io.Reader, res ps.Resolver, opt *Options) error {
	p, err := NewPaginator(w, res, opt)
	if err != nil {
		return err
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if err := p.WriteLine(line); err != nil {
				return err
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
	}

	return p.Close()
}
