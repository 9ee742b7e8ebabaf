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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/kneeboard/nav"
	"seehuhn.de/go/kneeboard/pdf/content"
	"seehuhn.de/go/kneeboard/plan"
)

// Geometry of the holding pattern, in millimetres before display scaling.
// The beacon is at the origin, the inbound track points along the positive
// x-axis and y points up.
const (
	holdScale = 10.0
	legLength = 3.4 * holdScale

	// Bézier control point offsets for a quarter circle of radius holdScale
	bezA = 1.00005519 * holdScale
	bezB = 0.55342686 * holdScale
	bezC = 0.99873585 * holdScale

	beaconSize = 0.25 * holdScale

	holdLineWidth = 0.5 * 25.4 / 72
	holdFontSize  = 7.0
	holdTitleSize = 12.0
)

// holdDisplay maps the local geometry onto the page: scaled by 2 and with
// the beacon at (40mm, 110mm) from the top-left corner.
var holdDisplay = matrix.Scale(2, -2).Mul(matrix.Translate(40, 110))

// Label is the text describing one track of the holding pattern.
type Label struct {
	Track       string
	Heading     string // magnetic heading
	GroundSpeed string // including the unit
	Time        string // time for one minute of air distance, as m:ss
}

func (l Label) String() string {
	return l.Track + " (" + l.Heading + ") " + l.GroundSpeed + " [" + l.Time + "]"
}

// HoldLabel computes the label for flying the given track.  If triple is
// set, the wind-correction angle is tripled, as is usual on the outbound
// leg of a hold.
func HoldLabel(tas float64, track, variation nav.Angle, wind nav.Velocity, triple bool) Label {
	h := nav.Solve(tas, track, variation, wind)
	l := Label{
		Track:       track.Heading(),
		Heading:     Placeholder,
		GroundSpeed: Placeholder,
		Time:        Placeholder,
	}
	if !h.Valid() {
		return l
	}

	mag := h.Magnetic
	if triple {
		mag = track.Add(h.Correction.Scale(3)).Add(variation)
	}
	l.Heading = mag.Heading()
	l.GroundSpeed = whole(h.GroundSpeed) + "kt"
	l.Time = minSec(tas / 60 / h.GroundSpeed * 3600)
	return l
}

type holdDiagram struct {
	page *content.Builder
	flip float64 // +1 for right-hand patterns, -1 for left-hand ones
}

// pt converts local coordinates to page coordinates.
func pt(p vec.Vec2) (float64, float64) {
	m := holdDisplay
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

func (d *holdDiagram) moveTo(x, y float64) {
	d.page.MoveTo(pt(vec.Vec2{X: x, Y: y}))
}

func (d *holdDiagram) lineTo(x, y float64) {
	d.page.LineTo(pt(vec.Vec2{X: x, Y: y}))
}

func (d *holdDiagram) curveTo(x1, y1, x2, y2, x3, y3 float64) {
	p1x, p1y := pt(vec.Vec2{X: x1, Y: y1})
	p2x, p2y := pt(vec.Vec2{X: x2, Y: y2})
	p3x, p3y := pt(vec.Vec2{X: x3, Y: y3})
	d.page.CurveTo(p1x, p1y, p2x, p2y, p3x, p3y)
}

func (d *holdDiagram) text(s string, x, y float64) {
	px, py := pt(vec.Vec2{X: x, Y: y})
	write(d.page, s, px, py, content.Normal, holdFontSize)
}

// racetrack draws the oval of the pattern, offset to the side of the
// turns.
func (d *holdDiagram) racetrack() {
	oy := d.flip * holdScale
	ox := legLength

	d.moveTo(ox, bezA+oy)
	d.curveTo(bezB+ox, bezC+oy, bezC+ox, bezB+oy, bezA+ox, oy)
	d.curveTo(bezC+ox, -bezB+oy, bezB+ox, -bezC+oy, ox, -bezA+oy)
	d.lineTo(0, -bezA+oy)
	d.curveTo(-bezB, -bezA+oy, -bezC, -bezB+oy, -bezA, oy)
	d.curveTo(-bezA, bezB+oy, -bezB, bezC+oy, 0, bezA+oy)
	d.lineTo(ox, bezA+oy)
	d.page.ClosePath()
	d.page.Stroke()
}

func (d *holdDiagram) beacon() {
	s := beaconSize / 2
	d.moveTo(s, s)
	d.lineTo(s, -s)
	d.lineTo(-s, -s)
	d.lineTo(-s, s)
	d.page.ClosePath()
	d.page.Stroke()
}

func (d *holdDiagram) segment(x0, y0, x1, y1 float64) {
	d.moveTo(x0, y0)
	d.lineTo(x1, y1)
	d.page.Stroke()
}

// sectorDivider separates the offset entry sector from the parallel entry
// sector.
func (d *holdDiagram) sectorDivider() {
	top, bottom := 3.0, 5.0
	if d.flip < 0 {
		top, bottom = bottom, top
	}
	x0 := -d.flip * legLength / bottom
	y0 := -legLength / bottom * 2.75
	x1 := d.flip * legLength / top
	y1 := legLength / top * 2.75
	d.segment(x0, y0, x1, y1)
}

// Hold draws the diagram for a holding pattern, labelled with headings,
// ground speeds and timings for the given wind.  The return value is the
// number of labels for which the wind triangle has no solution.
func Hold(page *content.Builder, h plan.Hold) int {
	initPage(page)

	d := &holdDiagram{page: page, flip: 1}
	if !h.RightHand {
		d.flip = -1
	}

	page.PushState()
	page.LineWidth(holdLineWidth)
	d.racetrack()
	d.beacon()
	d.segment(-15, 0, legLength*1.5, 0)
	d.sectorDivider()
	d.segment(0, 0, legLength*1.2, d.flip*legLength*1.2*math.Tan(30*math.Pi/180))
	d.segment(legLength*1.25, d.flip*legLength*1.25*math.Tan(10*math.Pi/180),
		legLength*1.32, d.flip*legLength*1.32*math.Tan(10*math.Pi/180))
	page.PopState()

	return holdLabels(d, h)
}

func holdLabels(d *holdDiagram, h plan.Hold) int {
	inbound := nav.NewAngle(float64(h.InboundTrack))
	variation := nav.NewAngle(float64(h.Variation))
	wind := nav.WindFrom(float64(h.Wind.Angle), float64(h.Wind.Speed))
	tas := float64(h.AircraftSpeed)
	right := h.RightHand

	title := "Wind: " + wind.From().Heading() + "@" + whole(wind.Speed) +
		"kt  Speed: " + whole(tas) + "kt"
	write(d.page, title, 5, 25, content.Normal, holdTitleSize)
	write(d.page, h.Description, 5, 35, content.Normal, holdTitleSize)

	// pick returns a for right-hand patterns and b for left-hand ones
	pick := func(a, b float64) float64 {
		if right {
			return a
		}
		return b
	}

	unsolved := 0
	label := func(track nav.Angle, triple bool, x, y float64) {
		l := HoldLabel(tas, track, variation, wind, triple)
		if l.Heading == Placeholder {
			unsolved++
		}
		d.text(l.String(), x, y)
	}

	label(inbound, false, legLength/3.8, 1)

	outbound := inbound.Reciprocal()
	label(outbound, true, legLength/3.8, pick(21, -22.5))

	gate := inbound.Offset(-d.flip * 30).Reciprocal()
	label(gate, false, legLength*0.8, pick(26, -26.5))

	d.text(inbound.Offset(-d.flip*60).Heading(), legLength*1.35, pick(7, -8.5))
	d.text(outbound.Heading(), -15, 1)

	divider := inbound.Offset(-d.flip * 70)
	d.text(divider.Reciprocal().Heading(), -10, pick(-21, 20))
	d.text(divider.Heading(), 10, pick(32, -35))

	d.text("OE", -15, pick(-10, 10))
	d.text("PE", -15, pick(20, -20))
	d.text("DE", legLength, pick(30, -30))
	d.text("DE", legLength*0.5, pick(-15, 15))

	return unsolved
}
