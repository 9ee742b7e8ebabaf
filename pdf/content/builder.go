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

import (
	"seehuhn.de/go/kneeboard/internal/float"
	"seehuhn.de/go/kneeboard/pdf"
)

// Size is the size of a page in millimetres.
type Size struct {
	Width, Height float64
}

// A5 is the paper size of a kneeboard page.
var A5 = Size{Width: 148.5, Height: 210}

// Points returns the page size in PDF units.
func (s Size) Points() (w, h float64) {
	return toPoints(s.Width), toPoints(s.Height)
}

// Builder appends operators to the content stream of one page.
//
// All coordinates are given in millimetres, measured from the top-left
// corner of the page with y increasing downwards.  Font sizes are given in
// points.
type Builder struct {
	size Size
	ops  Stream

	// leading of each saved graphics state, restored by PopState
	saved []float64

	// start of the current text line, in PDF units
	lineX, lineY float64
	leading      float64
}

// NewBuilder starts an empty content stream for a page of the given size.
func NewBuilder(size Size) *Builder {
	return &Builder{size: size}
}

// PageSize returns the size of the page in millimetres.
func (b *Builder) PageSize() Size {
	return b.size
}

// Content returns the operators added so far.  Graphics states which are
// still open are closed at the end of the returned stream.
func (b *Builder) Content() Stream {
	res := make(Stream, len(b.ops), len(b.ops)+len(b.saved))
	copy(res, b.ops)
	for range b.saved {
		res = append(res, Operator{Name: OpPopGraphicsState})
	}
	return res
}

// Init sets the stroke and fill colours to black inside a new graphics
// state.
func (b *Builder) Init() {
	b.PushState()
	b.StrokeRGB(0, 0, 0)
	b.FillRGB(0, 0, 0)
}

// PushState saves the current graphics state.
func (b *Builder) PushState() {
	b.saved = append(b.saved, b.leading)
	b.emit(OpPushGraphicsState)
}

// PopState restores the most recently saved graphics state.
// Unbalanced calls are ignored.
func (b *Builder) PopState() {
	n := len(b.saved)
	if n == 0 {
		return
	}
	b.leading = b.saved[n-1]
	b.saved = b.saved[:n-1]
	b.emit(OpPopGraphicsState)
}

// BeginText starts a text object.  The text position is reset to the
// bottom-left corner of the page.
func (b *Builder) BeginText() {
	b.lineX, b.lineY = 0, 0
	b.emit(OpTextBegin)
}

// EndText ends the current text object.
func (b *Builder) EndText() {
	b.emit(OpTextEnd)
}

// SetFont selects the font and font size (in points) for showing text.
func (b *Builder) SetFont(f Font, size float64) {
	b.emit(OpTextSetFont, f.BaseFont(), num(size))
}

// SetLeading sets the distance between text lines, in millimetres.
func (b *Builder) SetLeading(mm float64) {
	b.leading = round(toPoints(mm))
	b.emit(OpTextSetLeading, pdf.Real(b.leading))
}

// TextAt moves the start of the text line to (x, y).
func (b *Builder) TextAt(x, y float64) {
	px, py := b.point(x, y)
	dx := round(px - b.lineX)
	dy := round(py - b.lineY)
	b.lineX, b.lineY = px, py
	b.emit(OpTextMoveOffset, pdf.Real(dx), pdf.Real(dy))
}

// Show shows a string at the current text position.
func (b *Builder) Show(s string) {
	b.emit(OpTextShow, pdf.TextString(s))
}

// NextLine moves to the start of the next text line, using the leading set
// by SetLeading.
func (b *Builder) NextLine() {
	b.lineY = round(b.lineY - b.leading)
	b.emit(OpTextNextLine)
}

// ShowLines shows each of the strings on its own line, starting at (x, y).
func (b *Builder) ShowLines(x, y float64, lines ...string) {
	b.TextAt(x, y)
	for i, line := range lines {
		if i > 0 {
			b.NextLine()
		}
		b.Show(line)
	}
}

// MoveTo starts a new subpath at (x, y).
func (b *Builder) MoveTo(x, y float64) {
	px, py := b.point(x, y)
	b.emit(OpMoveTo, pdf.Real(px), pdf.Real(py))
}

// LineTo appends a straight line segment to the current subpath.
func (b *Builder) LineTo(x, y float64) {
	px, py := b.point(x, y)
	b.emit(OpLineTo, pdf.Real(px), pdf.Real(py))
}

// CurveTo appends a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p1x, p1y := b.point(x1, y1)
	p2x, p2y := b.point(x2, y2)
	p3x, p3y := b.point(x3, y3)
	b.emit(OpCurveTo,
		pdf.Real(p1x), pdf.Real(p1y),
		pdf.Real(p2x), pdf.Real(p2y),
		pdf.Real(p3x), pdf.Real(p3y))
}

// Rectangle appends a rectangle with top-left corner (x, y), extending
// width to the right and height downwards.
func (b *Builder) Rectangle(x, y, width, height float64) {
	px, py := b.point(x, y+height)
	b.emit(OpRectangle,
		pdf.Real(px), pdf.Real(py),
		num(toPoints(width)), num(toPoints(height)))
}

// ClosePath closes the current subpath.
func (b *Builder) ClosePath() {
	b.emit(OpClosePath)
}

// Stroke strokes the current path.
func (b *Builder) Stroke() {
	b.emit(OpStroke)
}

// Fill fills the current path using the nonzero winding rule.
func (b *Builder) Fill() {
	b.emit(OpFill)
}

// LineWidth sets the line width, in millimetres.
func (b *Builder) LineWidth(mm float64) {
	b.emit(OpSetLineWidth, num(toPoints(mm)))
}

// StrokeRGB sets the stroke colour.  The components are in the range [0, 1].
func (b *Builder) StrokeRGB(r, g, bl float64) {
	b.emit(OpSetStrokeRGB, num(r), num(g), num(bl))
}

// FillRGB sets the fill colour.  The components are in the range [0, 1].
func (b *Builder) FillRGB(r, g, bl float64) {
	b.emit(OpSetFillRGB, num(r), num(g), num(bl))
}

// Line strokes a straight line from (x0, y0) to (x1, y1).
func (b *Builder) Line(x0, y0, x1, y1 float64) {
	b.MoveTo(x0, y0)
	b.LineTo(x1, y1)
	b.Stroke()
}

func (b *Builder) emit(name OpName, args ...pdf.Object) {
	b.ops = append(b.ops, Operator{Name: name, Args: args})
}

// point converts page coordinates in millimetres into PDF user space.
func (b *Builder) point(x, y float64) (float64, float64) {
	return round(toPoints(x)), round(toPoints(b.size.Height - y))
}

func toPoints(mm float64) float64 {
	return mm * 72 / 25.4
}

func round(x float64) float64 {
	return float.Round(x, 4)
}

func num(x float64) pdf.Real {
	return pdf.Real(round(x))
}
