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
	"strconv"

	"seehuhn.de/go/kneeboard/nav"
	"seehuhn.de/go/kneeboard/pdf/content"
)

// Cell is one entry of the diversion wind table.
type Cell struct {
	Course      string // the desired track
	Heading     string // magnetic heading to fly
	GroundSpeed string // including the unit, e.g. "96kt"
}

// WindTable computes headings and ground speeds for all tracks in steps of
// 5°.  Row n holds the tracks 5n, 5n+90, 5n+180 and 5n+270.
func WindTable(tas float64, variation nav.Angle, wind nav.Velocity) [18][4]Cell {
	var res [18][4]Cell
	for row := range res {
		for col := range res[row] {
			track := nav.NewAngle(float64(5*row + 90*col))
			res[row][col] = windCell(nav.Solve(tas, track, variation, wind))
		}
	}
	return res
}

func windCell(h nav.Heading) Cell {
	c := Cell{
		Course:      h.Track.Heading(),
		Heading:     Placeholder,
		GroundSpeed: Placeholder,
	}
	if h.Valid() {
		c.Heading = h.Magnetic.Heading()
		c.GroundSpeed = whole(h.GroundSpeed) + "kt"
	}
	return c
}

// Speeds and distances for the distance/time table on the diversion page.
var (
	TableSpeeds    = []int{60, 70, 80, 90, 100, 110, 120, 130, 140}
	TableDistances = []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70}
)

// DistanceTime returns the whole minutes needed to cover each distance at
// each speed.  Row i corresponds to speeds[i], column j to distances[j].
// Entries for speeds which are not positive are zero.
func DistanceTime(speeds, distances []int) [][]int {
	res := make([][]int, len(speeds))
	for i, speed := range speeds {
		row := make([]int, len(distances))
		if speed > 0 {
			for j, dist := range distances {
				row[j] = 60 * dist / speed
			}
		}
		res[i] = row
	}
	return res
}

const (
	divMargin   = 5.0
	divTop      = 30.0
	divFontSize = 11.0
	divShift    = 36.1
	divRowStep  = 7.0

	timeTableTop      = 171.0
	timeTableFontSize = 9.0
)

// Diversion draws the wind table for the given air speed, variation and
// wind onto page, followed by the distance/time table.  The return value
// is the number of tracks for which the wind triangle has no solution.
func Diversion(page *content.Builder, tas float64, variation nav.Angle, wind nav.Velocity) int {
	initPage(page)

	pageWidth := page.PageSize().Width

	title := "Speed:" + whole(tas) + ", Wind:" + wind.From().Heading() + "° / " + whole(wind.Speed)
	write(page, title, divMargin, 20, content.Bold, divFontSize)

	unsolved := 0
	for row, cells := range WindTable(tas, variation, wind) {
		y := divTop + float64(row)*divRowStep

		if row%2 == 0 {
			shade(page, divMargin, y-1, pageWidth-2*divMargin, 4)
		}

		for col, cell := range cells {
			x := divMargin + float64(col)*divShift
			write(page, cell.Course, x, y+2.5, content.Bold, divFontSize)
			write(page, cell.Heading, x+10, y+2.5, content.Normal, divFontSize)
			write(page, cell.GroundSpeed, x+20, y+2.5, content.Normal, divFontSize)
			if cell.Heading == Placeholder {
				unsolved++
			}
		}
	}

	timeTable(page, TableSpeeds, TableDistances)

	return unsolved
}

func shade(page *content.Builder, x, y, width, height float64) {
	page.PushState()
	page.FillRGB(0.9, 0.9, 0.9)
	page.StrokeRGB(0, 0, 0)
	page.LineWidth(lineWidth)
	page.Rectangle(x, y, width, height)
	page.Fill()
	page.PopState()
}

func timeTable(page *content.Builder, speeds, distances []int) {
	pageWidth := page.PageSize().Width
	x := divMargin
	y := timeTableTop
	colWidth := (pageWidth - 2*divMargin) / float64(len(distances)+1)

	page.PushState()
	page.StrokeRGB(0, 0, 0)
	page.LineWidth(lineWidth)
	page.Rectangle(x-1, y-4, pageWidth-2*divMargin, float64(len(speeds))*4.6)
	page.Stroke()
	page.PopState()

	for j, dist := range distances {
		colX := x + float64(j+1)*colWidth
		write(page, strconv.Itoa(dist), colX, y, content.Bold, divFontSize)
	}

	for i, row := range DistanceTime(speeds, distances) {
		rowY := y + float64(i)*4 + 3.8
		if i%2 == 0 {
			page.PushState()
			page.FillRGB(0.9, 0.9, 0.9)
			page.Rectangle(x, rowY-3, pageWidth-2*divMargin-2, 4)
			page.Fill()
			page.PopState()
		}

		write(page, strconv.Itoa(speeds[i]), x, rowY, content.Bold, timeTableFontSize)
		for j, minutes := range row {
			colX := x + float64(j+1)*colWidth
			write(page, strconv.Itoa(minutes), colX, rowY, content.Bold, timeTableFontSize)
		}
	}
}
