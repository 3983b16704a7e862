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

//go:build ignore
// +build ignore

// This program regenerates the file "resources/UniJIS-UTF32-H.gz" from the
// built-in cid2code table of package cidtable.

package main

import (
	"compress/gzip"
	"log"
	"os"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/ja2ps/cidtable"
	"seehuhn.de/go/ja2ps/cmap"
)

func main() {
	err := run("resources/UniJIS-UTF32-H.gz")
	if err != nil {
		log.Fatal(err)
	}
}

func run(fname string) error {
	tab, err := cidtable.Default()
	if err != nil {
		return err
	}

	ros := &cid.SystemInfo{
		Registry:   "Adobe",
		Ordering:   "Japan1",
		Supplement: 6,
	}
	m := cmap.Compress(tab, "UniJIS-UTF32-H", ros)

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(fd)
	_, err = m.WriteTo(zw)
	if err != nil {
		fd.Close()
		return err
	}
	err = zw.Close()
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
