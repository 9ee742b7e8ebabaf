// seehuhn.de/go/kneeboard - kneeboard notes for VFR flight planning
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

package content

import "seehuhn.de/go/kneeboard/pdf"

// Font selects one of the four standard Helvetica fonts available on every
// page.
type Font int

// The available fonts.
const (
	Normal Font = iota
	Bold
	Italic
	BoldItalic
)

// Fonts lists all fonts, in the order they are allocated in the output file.
var Fonts = []Font{Normal, Bold, Italic, BoldItalic}

var baseFont = [...]pdf.Name{
	Normal:     "Helvetica",
	Bold:       "Helvetica-Bold",
	Italic:     "Helvetica-Oblique",
	BoldItalic: "Helvetica-BoldOblique",
}

// BaseFont returns the PostScript name of the font.  The same name is used
// as the key in the page resource dictionary.
func (f Font) BaseFont() pdf.Name {
	if f < 0 || int(f) >= len(baseFont) {
		return baseFont[Normal]
	}
	return baseFont[f]
}

// Dict returns the font dictionary for one of the standard 14 fonts.
func (f Font) Dict() pdf.Dict {
	return pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": f.BaseFont(),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
}

func (f Font) String() string {
	return string(f.BaseFont())
}
