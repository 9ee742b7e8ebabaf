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

package sheet

import (
	"math"

	"seehuhn.de/go/kneeboard/nav"
	"seehuhn.de/go/kneeboard/pdf/content"
	"seehuhn.de/go/kneeboard/plan"
)

// Leg is one leg of a route, with all quantities converted for the
// calculations.
type Leg struct {
	From, To      string
	Safe, Planned string

	Speed     float64 // true air speed
	Course    nav.Angle
	Distance  float64
	Variation nav.Angle
	Wind      nav.Velocity
}

// NewLeg converts a leg of a plan.
func NewLeg(l plan.Leg) Leg {
	return Leg{
		From:      l.From,
		To:        l.To,
		Safe:      l.Safe,
		Planned:   l.Planned,
		Speed:     float64(l.Speed),
		Course:    nav.NewAngle(float64(l.Course)),
		Distance:  float64(l.Distance),
		Variation: nav.NewAngle(float64(l.Variation)),
		Wind:      nav.WindFrom(float64(l.WindDirection), float64(l.WindSpeed)),
	}
}

// Reverse returns the legs for flying the route in the opposite direction.
// The order of the legs is reversed, start and end of every leg are
// swapped and the courses are reciprocated.  The argument is not modified.
func Reverse(legs []Leg) []Leg {
	res := make([]Leg, len(legs))
	for i, leg := range legs {
		leg.From, leg.To = leg.To, leg.From
		leg.Course = leg.Course.Reciprocal()
		res[len(legs)-1-i] = leg
	}
	return res
}

// LegCalc holds the values computed for one leg.
type LegCalc struct {
	GroundSpeed float64
	True        nav.Angle
	Magnetic    nav.Angle
	Time        float64 // minutes for this leg
	Total       float64 // minutes since the start of the route
	Valid       bool
}

// CalcLegs solves the wind triangle for every leg.  Once a leg has no
// solution, the running total is NaN for this and all following legs.
func CalcLegs(legs []Leg) []LegCalc {
	res := make([]LegCalc, 0, len(legs))
	total := 0.0
	for _, leg := range legs {
		h := nav.Solve(leg.Speed, leg.Course, leg.Variation, leg.Wind)
		c := LegCalc{
			GroundSpeed: h.GroundSpeed,
			True:        h.True,
			Magnetic:    h.Magnetic,
			Valid:       h.Valid(),
		}
		if c.Valid {
			c.Time = nav.LegTime(leg.Distance, h.GroundSpeed)
		} else {
			c.GroundSpeed = math.NaN()
			c.Time = math.NaN()
		}
		total += c.Time
		c.Total = total
		res = append(res, c)
	}
	return res
}

const (
	logMargin     = 2.5
	logTop        = 20.0
	logNameHeight = 4.0

	logFontSize   = 10.0
	logHeaderSize = 7.0
	logNotesSize  = 9.0
)

type logColumn struct {
	width  float64
	header string
}

var logColumns = []logColumn{
	{25, "Safe"},
	{7, "Plan"},
	{7, "Spd"},
	{7, "Track"},
	{7, "Dist"},
	{7, "Wind"},
	{15, "G/S"},
	{7, "HD(T)"},
	{8, "HD(M)"},
	{0.5, ""},
	{9, "Time"},
	{7, "S/C"},
	{14, "ETA"},
	{14, "ATA"},
}

type logValue struct {
	text   string
	adjust float64
	font   content.Font
}

// logRow returns the values printed in the columns of the leg log, up to
// the time column.
func logRow(leg Leg, calc LegCalc) []logValue {
	wind := leg.Wind.From().Heading() + "@" + whole(leg.Wind.Speed)

	hdgTrue, hdgMag := Placeholder, Placeholder
	if calc.Valid {
		hdgTrue = calc.True.Heading()
		hdgMag = calc.Magnetic.Heading()
	}
	return []logValue{
		{leg.Safe, 0, content.Normal},
		{leg.Planned, 0, content.Normal},
		{whole(leg.Speed), 0, content.Normal},
		{leg.Course.Heading(), 0, content.Normal},
		{whole(leg.Distance), 0, content.Normal},
		{wind, 0, content.Normal},
		{whole(calc.GroundSpeed), 0, content.Normal},
		{hdgTrue, 0.5, content.Normal},
		{hdgMag, 1, content.Bold},
		{"", 0, content.Normal},
		{whole(calc.Time), 0.5, content.Bold},
	}
}

// LegLog draws the navigation log for a route onto page and returns the
// values computed for the legs.
func LegLog(page *content.Builder, legs []Leg, notes []plan.Note, detail plan.Detail) []LegCalc {
	initPage(page)

	page.PushState()
	page.LineWidth(lineWidth)

	pageWidth := page.PageSize().Width
	rowWidth := pageWidth - 2*logMargin
	x := logMargin
	y := logTop
	nextRow := func(y float64) float64 {
		return y + 2 + 2*logNameHeight
	}

	calcs := CalcLegs(legs)
	for i, calc := range calcs {
		leg := legs[i]
		hLine(page, x, y, rowWidth)

		yTop := y + logNameHeight
		yBottom := 1 + y + 2*logNameHeight
		yMiddle := (yTop + yBottom) / 2

		page.BeginText()
		page.SetFont(content.Normal, logFontSize)
		page.SetLeading(4.5)
		page.ShowLines(x, yTop, leg.From, leg.To)
		page.EndText()

		colX := 0.0
		for j, val := range logRow(leg, calc) {
			col := logColumns[j]
			colX += col.width
			if col.header != "" {
				write(page, val.text, colX+val.adjust, yMiddle, val.font, logFontSize)
			}
		}

		y = nextRow(y)
	}

	page.BeginText()
	page.SetFont(content.Normal, logFontSize)
	page.SetLeading(4)
	page.ShowLines(x, 6, "LOST", "121.5", "0030")
	page.EndText()

	if ids := detail.Lines(); len(ids) > 0 {
		page.BeginText()
		page.SetFont(content.Normal, logFontSize)
		page.SetLeading(4)
		page.ShowLines(pageWidth-25, 6, ids...)
		page.EndText()
	}

	dividerX := 0.0
	for _, col := range logColumns {
		dividerX += col.width
		if col.header != "" {
			write(page, col.header, dividerX, logTop-1, content.Bold, logHeaderSize)
		}
		vLine(page, dividerX-0.5, logTop, y-logTop)
	}
	hLine(page, x, y, rowWidth)

	y = nextRow(y)
	hLine(page, x, y, rowWidth)
	textX := x
	for i, label := range []string{"Oil:", "Fuel:", "B/Off:", "T/Off:", "Lnd:", "B/On:"} {
		if i == 1 {
			textX += 15
		} else if i > 1 {
			textX += 25
		}
		write(page, label, textX, y-4, content.Normal, logFontSize)
	}

	fuelX := pageWidth - 52.5
	fuelY := fuelGrid(page, fuelX, y)
	writeNotes(page, fuelX, fuelY+5, notes)

	page.PopState()

	return calcs
}

// fuelGrid draws the table for recording the fuel in the left and right
// tanks and returns the y coordinate of its bottom edge.
func fuelGrid(page *content.Builder, x, top float64) float64 {
	const width = 50.0

	y := top
	for range 4 {
		hLine(page, x, y, width)
		write(page, "L    R", x+3, y+logNameHeight+2, content.Bold, logFontSize)
		y += logNameHeight + 5
	}
	hLine(page, x, y, width)

	gap := (width - 15) / 3
	for _, dx := range []float64{0, 15, 15 + gap, 15 + 2*gap, width} {
		vLine(page, x+dx, top, y-top)
	}
	return y
}

func writeNotes(page *content.Builder, x, y float64, notes []plan.Note) {
	if len(notes) == 0 {
		return
	}

	page.BeginText()
	page.SetLeading(3.5)
	for i, note := range notes {
		f, text := noteFont(note)
		page.SetFont(f, logNotesSize)
		if i == 0 {
			page.TextAt(x, y)
		} else {
			page.NextLine()
		}
		page.Show(text)
	}
	page.EndText()
}

func noteFont(note plan.Note) (content.Font, string) {
	switch note.Style {
	case plan.Bold:
		return content.Bold, note.Text
	case plan.Italic:
		return content.Italic, note.Text
	case plan.Blank:
		return content.Normal, ""
	default:
		return content.Normal, note.Text
	}
}

// TotalTime returns the planned time for the whole route, in minutes.
// The result is NaN if any leg has no solution.
func TotalTime(calcs []LegCalc) float64 {
	if len(calcs) == 0 {
		return 0
	}
	return calcs[len(calcs)-1].Total
}
