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

// Package ghostscript runs the Ghostscript interpreter from unit tests.
package ghostscript

import (
	"bytes"
	"errors"
	"os/exec"
	"regexp"
	"sync"
	"testing"
)

// PageCount can be used in unit tests to check that a PostScript document is
// accepted by Ghostscript.  The function returns the number of pages which
// Ghostscript rendered.
//
// The calling test is skipped if Ghostscript is not installed.
func PageCount(t *testing.T, doc []byte) int {
	t.Helper()

	if !isAvailable() {
		t.Skip("ghostscript not found")
	}

	n, err := countPages(doc)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func countPages(doc []byte) (int, error) {
	cmd := exec.Command(
		"gs", "-q", "-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE=bbox",
		"-")
	cmd.Stdin = bytes.NewReader(doc)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, &RunError{Err: err, Output: string(out)}
	}
	if errorRe.Match(out) {
		return 0, &RunError{Err: ErrPostScript, Output: string(out)}
	}
	return len(bboxRe.FindAll(out, -1)), nil
}

// ErrPostScript indicates that Ghostscript reported an error while running a
// PostScript program.
var ErrPostScript = errors.New("PostScript error")

// RunError is returned when Ghostscript fails.  Output holds everything
// Ghostscript printed.
type RunError struct {
	Err    error
	Output string
}

func (err *RunError) Error() string {
	return "ghostscript: " + err.Err.Error() + "\n" + err.Output
}

func (err *RunError) Unwrap() error {
	return err.Err
}

var (
	gsScriptOnce  sync.Once
	gsScriptBBox  = regexp.MustCompile(`\bbbox\b`)
	gsScriptFound bool

	bboxRe  = regexp.MustCompile(`(?m)^%%BoundingBox:`)
	errorRe = regexp.MustCompile(`(?m)^Error: /`)
)

// isAvailable returns true if the ghostscript command-line tool is available
// and supports the bbox device.
func isAvailable() bool {
	gsScriptOnce.Do(func() {
		out, err := exec.Command("gs", "-h").Output()
		if err != nil {
			gsScriptFound = false
			return
		}
		gsScriptFound = gsScriptBBox.Match(out)
	})
	return gsScriptFound
}
