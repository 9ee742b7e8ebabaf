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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/kneeboard/nav"
	"seehuhn.de/go/kneeboard/pdf/content"
)

func TestWindTable(t *testing.T) {
	want := [18][4]Cell{
		{{"000", "352", "86kt"}, {"090", "084", "114kt"}, {"180", "190", "112kt"}, {"270", "278", "84kt"}},
		{{"005", "357", "87kt"}, {"095", "089", "116kt"}, {"185", "195", "110kt"}, {"275", "283", "83kt"}},
		{{"010", "001", "88kt"}, {"100", "095", "117kt"}, {"190", "201", "108kt"}, {"280", "287", "82kt"}},
		{{"015", "006", "90kt"}, {"105", "101", "118kt"}, {"195", "206", "107kt"}, {"285", "291", "82kt"}},
		{{"020", "010", "91kt"}, {"110", "107", "119kt"}, {"200", "212", "105kt"}, {"290", "295", "81kt"}},
		{{"025", "015", "93kt"}, {"115", "113", "119kt"}, {"205", "217", "103kt"}, {"295", "299", "81kt"}},
		{{"030", "020", "95kt"}, {"120", "119", "120kt"}, {"210", "222", "102kt"}, {"300", "303", "80kt"}},
		{{"035", "025", "96kt"}, {"125", "125", "120kt"}, {"215", "227", "100kt"}, {"305", "307", "80kt"}},
		{{"040", "029", "98kt"}, {"130", "131", "120kt"}, {"220", "233", "98kt"}, {"310", "311", "80kt"}},
		{{"045", "035", "100kt"}, {"135", "137", "120kt"}, {"225", "237", "96kt"}, {"315", "315", "80kt"}},
		{{"050", "040", "102kt"}, {"140", "143", "120kt"}, {"230", "242", "95kt"}, {"320", "319", "80kt"}},
		{{"055", "045", "103kt"}, {"145", "149", "119kt"}, {"235", "247", "93kt"}, {"325", "323", "81kt"}},
		{{"060", "050", "105kt"}, {"150", "155", "119kt"}, {"240", "252", "91kt"}, {"330", "327", "81kt"}},
		{{"065", "056", "107kt"}, {"155", "161", "118kt"}, {"245", "256", "90kt"}, {"335", "331", "82kt"}},
		{{"070", "061", "108kt"}, {"160", "167", "117kt"}, {"250", "261", "88kt"}, {"340", "335", "82kt"}},
		{{"075", "067", "110kt"}, {"165", "173", "116kt"}, {"255", "265", "87kt"}, {"345", "339", "83kt"}},
		{{"080", "072", "112kt"}, {"170", "178", "114kt"}, {"260", "270", "86kt"}, {"350", "344", "84kt"}},
		{{"085", "078", "113kt"}, {"175", "184", "113kt"}, {"265", "274", "85kt"}, {"355", "348", "85kt"}},
	}

	got := WindTable(100, nav.NewAngle(1), nav.WindFrom(310, 20))
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestWindTableUnsolvable(t *testing.T) {
	// wind from the east, faster than the aircraft
	table := WindTable(100, nav.NewAngle(0), nav.WindFrom(90, 120))

	want := Cell{Course: "000", Heading: Placeholder, GroundSpeed: Placeholder}
	if d := cmp.Diff(want, table[0][0]); d != "" {
		t.Error(d)
	}

	// Flying straight downwind is always possible.
	downwind := table[0][3]
	if downwind.Course != "270" || downwind.Heading != "270" || downwind.GroundSpeed != "220kt" {
		t.Errorf("downwind: got %v", downwind)
	}
}

func TestDiversion(t *testing.T) {
	page := content.NewBuilder(content.A5)
	n := Diversion(page, 100, nav.NewAngle(1), nav.WindFrom(190, 20))
	if n != 0 {
		t.Errorf("got %d tracks without solution, want 0", n)
	}
	if out := pageText(t, page); !strings.Contains(out, "(Speed:100, Wind:190") {
		t.Error("title missing")
	}

	wind := nav.WindFrom(90, 120)
	want := 0
	for _, row := range WindTable(100, nav.NewAngle(0), wind) {
		for _, cell := range row {
			if cell.Heading == Placeholder {
				want++
			}
		}
	}
	page = content.NewBuilder(content.A5)
	n = Diversion(page, 100, nav.NewAngle(0), wind)
	if n != want || n == 0 {
		t.Errorf("got %d tracks without solution, want %d", n, want)
	}
}

func TestDistanceTime(t *testing.T) {
	got := DistanceTime([]int{60, 90, 0}, []int{5, 10, 70})
	want := [][]int{
		{5, 10, 70},
		{3, 6, 46},
		{0, 0, 0},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	full := DistanceTime(TableSpeeds, TableDistances)
	if len(full) != 9 || len(full[0]) != 14 {
		t.Fatalf("wrong table size %dx%d", len(full), len(full[0]))
	}
	if full[8][13] != 30 { // 70nm at 140kt
		t.Errorf("got %d, want 30", full[8][13])
	}
}
