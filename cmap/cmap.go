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

// Package cmap maps Unicode code points to CIDs using a CMap resource.
//
// This is an alternative to package cidtable.  Instead of listing the code
// points for every CID, a CMap lists single code points and ranges of
// consecutive code points which map to consecutive CIDs.
package cmap

//go:generate go run ./generate.go

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"seehuhn.de/go/postscript"
	"seehuhn.de/go/postscript/cid"
)

// References:
// - https://adobe-type-tools.github.io/font-tech-notes/pdfs/5014.CIDFont_Spec.pdf
// - https://adobe-type-tools.github.io/font-tech-notes/pdfs/5099.CMapResources.pdf

// Mapping is one entry of a [Map].
// The concrete type is either [Single] or [Range].
type Mapping interface {
	lookup(r rune) (cid.CID, bool)
}

// Single maps the code point Code to the given CID.
type Single struct {
	Code rune
	CID  cid.CID
}

func (s Single) lookup(r rune) (cid.CID, bool) {
	if r != s.Code {
		return 0, false
	}
	return s.CID, true
}

// Range maps the code points First, ..., Last to consecutive CIDs, starting
// with CID.
type Range struct {
	First, Last rune
	CID         cid.CID
}

func (rg Range) lookup(r rune) (cid.CID, bool) {
	if r < rg.First || r > rg.Last {
		return 0, false
	}
	return rg.CID + cid.CID(r-rg.First), true
}

// Map is a Unicode to CID mapping.
//
// If more than one entry of Mappings applies to a code point, the first one
// wins.
type Map struct {
	Name     string
	ROS      *cid.SystemInfo
	Mappings []Mapping
}

// Lookup returns the CID for r.  The second return value is false if r is
// not mapped.
func (m *Map) Lookup(r rune) (cid.CID, bool) {
	for _, entry := range m.Mappings {
		if val, ok := entry.lookup(r); ok {
			return val, true
		}
	}
	return 0, false
}

// CID returns the CID for r, or 0 (the CID of the .notdef glyph) if r is not
// mapped.
func (m *Map) CID(r rune) cid.CID {
	val, _ := m.Lookup(r)
	return val
}

// Read parses a CMap resource which uses UTF-32 character codes.
//
// The mappings keep the order in which they appear in the file, so that
// "cidchar" and "cidrange" blocks may be interleaved.  Malformed entries
// are skipped: character codes must have between one and four bytes, and
// CID values must be non-negative decimal integers.
func Read(r io.Reader) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw, err := postscript.ReadCMap(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	codeMap, ok := raw["CodeMap"].(*postscript.CMapInfo)
	if !ok {
		return nil, fmt.Errorf("unsupported CMap format")
	}
	if codeMap.UseCMap != "" {
		return nil, fmt.Errorf("not implemented: usecmap %q", codeMap.UseCMap)
	}

	res := &Map{}
	if name, _ := raw["CMapName"].(postscript.Name); name != "" {
		res.Name = string(name)
	}
	if rosDict, _ := raw["CIDSystemInfo"].(postscript.Dict); rosDict != nil {
		ros := &cid.SystemInfo{}
		if registry, _ := rosDict["Registry"].(postscript.String); registry != nil {
			ros.Registry = string(registry)
		}
		if ordering, _ := rosDict["Ordering"].(postscript.String); ordering != nil {
			ros.Ordering = string(ordering)
		}
		if supplement, _ := rosDict["Supplement"].(postscript.Integer); supplement > 0 {
			ros.Supplement = int32(supplement)
		}
		res.ROS = ros
	}

	// The CMapInfo lists are sorted by character code, so the mappings
	// are collected from the source text instead.
	res.Mappings, err = readMappings(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// readMappings collects the entries of the "cidchar" and "cidrange" blocks
// in file order.  Every entry must be on a line of its own.
func readMappings(r io.Reader) ([]Mapping, error) {
	var res []Mapping
	var inChar, inRange bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.Contains(line, "begincidchar"):
			inChar = true
			continue
		case strings.Contains(line, "endcidchar"):
			inChar = false
			continue
		case strings.Contains(line, "begincidrange"):
			inRange = true
			continue
		case strings.Contains(line, "endcidrange"):
			inRange = false
			continue
		}

		fields := strings.Fields(line)
		switch {
		case inChar && len(fields) == 2:
			code, ok1 := parseCode(fields[0])
			val, ok2 := parseCID(fields[1])
			if ok1 && ok2 {
				res = append(res, Single{Code: code, CID: val})
			}
		case inRange && len(fields) == 3:
			first, ok1 := parseCode(fields[0])
			last, ok2 := parseCode(fields[1])
			val, ok3 := parseCID(fields[2])
			if ok1 && ok2 && ok3 && first <= last {
				res = append(res, Range{First: first, Last: last, CID: val})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// parseCode converts a hex string like "<00003042>" into a rune.
func parseCode(s string) (rune, bool) {
	s, ok := strings.CutPrefix(s, "<")
	if !ok {
		return 0, false
	}
	s, ok = strings.CutSuffix(s, ">")
	if !ok || len(s) == 0 || len(s) > 8 || len(s)%2 != 0 {
		return 0, false
	}
	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil || val > 0x7FFF_FFFF {
		return 0, false
	}
	return rune(val), true
}

func parseCID(s string) (cid.CID, bool) {
	val, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return cid.CID(val), true
}

//go:embed resources
var resources embed.FS

// UniJIS returns the built-in "UniJIS-UTF32-H" CMap, which maps Unicode
// to Adobe-Japan1 CIDs.
//
// The CMap is parsed on the first call; all callers share the same
// read-only value.
var UniJIS = sync.OnceValues(func() (*Map, error) {
	return load("resources/UniJIS-UTF32-H.gz")
})

func load(name string) (*Map, error) {
	fd, err := resources.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	r, err := gzip.NewReader(fd)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Read(r)
}
