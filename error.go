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
	"strconv"
)

var (
	// ErrInvalidOptions is returned if the page geometry leaves no room for
	// text, or if the options are otherwise unusable.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrInvalidUTF8 indicates that an input line is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// InputError reports a problem with one line of the input text.
type InputError struct {
	Line int // 1-based
	Err  error
}

func (err *InputError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *InputError) Unwrap() error {
	return err.Err
}
