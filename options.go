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
	"fmt"

	"seehuhn.de/go/ja2ps/layout"
)

// Options control the appearance of the generated pages.
// Use [DefaultOptions] to get the settings used by the ja2ps command.
type Options struct {
	// Page is the paper size together with margins and padding.
	Page layout.Page

	// Font gives the metrics of the body font.
	Font layout.FontMetrics

	// BodyFont is the PostScript name of the composite font used for the
	// text.  The font must use two-byte CID codes (Identity-H).
	BodyFont string

	// LabelFont and LabelSize select the font for the page numbers.
	LabelFont string
	LabelSize float64

	// LabelX and LabelY give the start of the page number label.
	LabelX, LabelY float64

	// BorderWidth is the line width of the page border.
	BorderWidth float64
}

// DefaultOptions returns the options used by the ja2ps command:
// A4 paper with 12pt gothic text and a bold page number at the top right.
func DefaultOptions() *Options {
	return &Options{
		Page:        layout.A4,
		Font:        layout.Gothic12,
		BodyFont:    "GothicBBB-Medium-Identity-H",
		LabelFont:   "Times-Bold",
		LabelSize:   10,
		LabelX:      500,
		LabelY:      800,
		BorderWidth: 0.75,
	}
}

func (opt *Options) check() error {
	if opt.Font.Width() <= 0 || opt.Font.RowHeight() <= 0 {
		return fmt.Errorf("%w: font size %d is too small", ErrInvalidOptions, opt.Font.Size)
	}
	if w, h := opt.Page.ContentWidth(), opt.Page.ContentHeight(); w <= 0 || h <= 0 {
		return fmt.Errorf("%w: empty text area (%dx%d)", ErrInvalidOptions, w, h)
	}
	if opt.BodyFont == "" || opt.LabelFont == "" {
		return fmt.Errorf("%w: missing font name", ErrInvalidOptions)
	}
	return nil
}
