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
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/kneeboard/pdf"
)

func render(t *testing.T, s Stream) string {
	t.Helper()
	buf := &bytes.Buffer{}
	err := s.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestPath(t *testing.T) {
	b := NewBuilder(A5)
	b.Init()
	b.LineWidth(25.4 / 72)
	b.MoveTo(0, 0)
	b.LineTo(25.4, 210)
	b.Stroke()
	b.Rectangle(5, 10, 10, 4)
	b.Fill()

	want := "q\n" +
		"0 0 0 RG\n" +
		"0 0 0 rg\n" +
		"1 w\n" +
		"0 595.2756 m\n" +
		"72 0 l\n" +
		"S\n" +
		"14.1732 555.5906 28.3465 11.3386 re\n" +
		"f\n" +
		"Q\n"
	got := render(t, b.Content())
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestText(t *testing.T) {
	b := NewBuilder(A5)
	b.BeginText()
	b.SetFont(Bold, 10)
	b.TextAt(25.4, 200)
	b.SetLeading(25.4)
	b.Show("a")
	b.NextLine()
	b.Show("b")
	b.TextAt(50.8, 190)
	b.Show("°")
	b.EndText()

	want := "BT\n" +
		"/Helvetica-Bold 10 Tf\n" +
		"72 28.3465 Td\n" +
		"72 TL\n" +
		"(a) Tj\n" +
		"T*\n" +
		"(b) Tj\n" +
		"72 100.3464 Td\n" +
		"(\\260) Tj\n" +
		"ET\n"
	got := render(t, b.Content())
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestShowLines(t *testing.T) {
	b := NewBuilder(Size{Width: 100, Height: 100})
	b.BeginText()
	b.SetLeading(2)
	b.ShowLines(0, 100, "x", "y")
	b.EndText()

	var names []OpName
	for _, op := range b.Content() {
		names = append(names, op.Name)
	}
	want := []OpName{
		OpTextBegin, OpTextSetLeading, OpTextMoveOffset, OpTextShow,
		OpTextNextLine, OpTextShow, OpTextEnd,
	}
	if d := cmp.Diff(want, names); d != "" {
		t.Error(d)
	}
}

func TestUnbalancedState(t *testing.T) {
	b := NewBuilder(A5)
	b.PopState()
	b.PushState()
	b.PushState()
	b.PopState()

	got := render(t, b.Content())
	if got != "q\nq\nQ\nQ\n" {
		t.Errorf("got %q", got)
	}

	// Content must not modify the builder
	got = render(t, b.Content())
	if got != "q\nq\nQ\nQ\n" {
		t.Errorf("second call: got %q", got)
	}
}

func TestLeadingRestored(t *testing.T) {
	b := NewBuilder(Size{Width: 25.4, Height: 254})
	b.SetLeading(25.4)
	b.PushState()
	b.BeginText()
	b.SetLeading(12.7)
	b.EndText()
	b.PopState()

	// Q has reset TL to 72, so the next line is one inch down.
	b.BeginText()
	b.TextAt(0, 0)
	b.NextLine()
	b.TextAt(0, 25.4)
	b.EndText()

	want := "72 TL\n" +
		"q\n" +
		"BT\n" +
		"36 TL\n" +
		"ET\n" +
		"Q\n" +
		"BT\n" +
		"0 720 Td\n" +
		"T*\n" +
		"0 0 Td\n" +
		"ET\n"
	got := render(t, b.Content())
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestOperatorErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Operator{Name: "BI"}.PDF(buf)
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("unknown operator: got %v", err)
	}
	err = Operator{Name: OpMoveTo, Args: []pdf.Object{pdf.Integer(1)}}.PDF(buf)
	if err == nil {
		t.Error("missing argument not detected")
	}
}

func TestStreamObject(t *testing.T) {
	s := Stream{{Name: OpStroke}}
	obj, err := s.Object()
	if err != nil {
		t.Fatal(err)
	}
	got := pdf.Format(obj)
	want := "<<\n/Length 2\n>>\nstream\nS\n\nendstream"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFonts(t *testing.T) {
	var names []pdf.Name
	for _, f := range Fonts {
		names = append(names, f.BaseFont())
	}
	want := []pdf.Name{
		"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique",
	}
	if d := cmp.Diff(want, names); d != "" {
		t.Error(d)
	}
	if got := Font(17).BaseFont(); got != "Helvetica" {
		t.Errorf("out of range font: got %s", got)
	}
}
