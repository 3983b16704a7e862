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
	"bytes"
	"fmt"
	"io"
	"text/template"

	"seehuhn.de/go/postscript"
)

// WriteTo writes the map as a CMap resource with four-byte character codes.
// The order of the mappings is preserved.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	err := cmapTmpl.Execute(buf, map[string]any{
		"Name":   m.Name,
		"ROS":    m.ROS,
		"Blocks": blocks(m.Mappings),
	})
	if err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// block is a "cidchar" block (if Singles is non-empty) or a "cidrange"
// block.
type block struct {
	Singles []Single
	Ranges  []Range
}

const maxBlockSize = 100

// blocks splits the mappings into runs of at most maxBlockSize entries of
// the same type.
func blocks(mappings []Mapping) []*block {
	var res []*block
	var cur *block
	for _, entry := range mappings {
		switch entry := entry.(type) {
		case Single:
			if cur == nil || len(cur.Ranges) > 0 || len(cur.Singles) >= maxBlockSize {
				cur = &block{}
				res = append(res, cur)
			}
			cur.Singles = append(cur.Singles, entry)
		case Range:
			if cur == nil || len(cur.Singles) > 0 || len(cur.Ranges) >= maxBlockSize {
				cur = &block{}
				res = append(res, cur)
			}
			cur.Ranges = append(cur.Ranges, entry)
		}
	}
	return res
}

var cmapTmpl = template.Must(template.New("cmap").Funcs(template.FuncMap{
	"PS": func(s string) string {
		x := postscript.String(s)
		return x.PS()
	},
	"PN": func(s string) string {
		x := postscript.Name(s)
		return x.PS()
	},
	"Single": func(s Single) string {
		return fmt.Sprintf("<%08x> %d", uint32(s.Code), s.CID)
	},
	"Range": func(r Range) string {
		return fmt.Sprintf("<%08x> <%08x> %d", uint32(r.First), uint32(r.Last), r.CID)
	},
}).Parse(`%!PS-Adobe-3.0 Resource-CMap
%%DocumentNeededResources: ProcSet (CIDInit)
%%IncludeResource: ProcSet (CIDInit)
%%BeginResource: CMap {{PS .Name}}
{{if .ROS -}}
%%Title: {{printf "%s %s %s %d" .Name .ROS.Registry .ROS.Ordering .ROS.Supplement | PS}}
{{end -}}
%%EndComments

/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
{{if .ROS -}}
/CIDSystemInfo 3 dict dup begin
  /Registry {{PS .ROS.Registry}} def
  /Ordering {{PS .ROS.Ordering}} def
  /Supplement {{.ROS.Supplement}} def
end def
{{end -}}
/CMapName {{PN .Name}} def
/CMapType 1 def
/WMode 0 def
1 begincodespacerange
  <00000000> <0010ffff>
endcodespacerange

{{range .Blocks -}}
{{if .Singles -}}
{{len .Singles}} begincidchar
{{range .Singles -}}
{{Single .}}
{{end -}}
endcidchar
{{- else -}}
{{len .Ranges}} begincidrange
{{range .Ranges -}}
{{Range .}}
{{end -}}
endcidrange
{{- end}}

{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
%%EndResource
%%EOF
`))
