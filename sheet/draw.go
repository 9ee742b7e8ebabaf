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

// Package sheet draws the pages of the kneeboard notes: the leg log for a
// route, the diversion wind table and the holding pattern diagram.
//
// All positions are in millimetres from the top-left corner of an A5 page.
package sheet

import (
	"math"
	"strconv"

	"seehuhn.de/go/kneeboard/internal/float"
	"seehuhn.de/go/kneeboard/pdf/content"
)

// Placeholder is printed instead of values which cannot be computed,
// for example when the wind is stronger than the aircraft is fast.
const Placeholder = "---"

const lineWidth = 0.25

// initPage sets up the graphics state shared by all pages and prints the
// disclaimer.
func initPage(page *content.Builder) {
	page.Init()
	page.PushState()
	disclaimer(page)
}

var disclaimerLines = []string{
	"Do not use! For illustrative purposes only.",
	"Any reliance you place on this document",
	"is strictly at your own risk.",
	"License: GPL-3.0-or-later",
}

func disclaimer(page *content.Builder) {
	x := page.PageSize().Width/2 - 20

	page.BeginText()
	page.SetLeading(2)
	page.SetFont(content.Italic, 6)
	page.ShowLines(x, 3, disclaimerLines...)
	page.EndText()
}

// write shows a single string at (x, y) in its own text object.
func write(page *content.Builder, text string, x, y float64, f content.Font, size float64) {
	page.BeginText()
	page.SetFont(f, size)
	page.TextAt(x, y)
	page.Show(text)
	page.EndText()
}

func hLine(page *content.Builder, x, y, length float64) {
	page.Line(x, y, x+length, y)
}

func vLine(page *content.Builder, x, y, length float64) {
	page.Line(x, y, x, y+length)
}

// whole formats x rounded to the nearest integer.  Non-finite values give
// the placeholder.
func whole(x float64) string {
	n, ok := float.RoundInt(x)
	if !ok {
		return Placeholder
	}
	return strconv.Itoa(n)
}

// minSec formats a duration in seconds as m:ss.
func minSec(secs float64) string {
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return Placeholder
	}
	s := int64(math.Abs(secs))
	m := s / 60
	s %= 60
	res := strconv.FormatInt(m, 10) + ":"
	if s < 10 {
		res += "0"
	}
	return res + strconv.FormatInt(s, 10)
}
