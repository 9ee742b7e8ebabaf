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

package kneeboard

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"seehuhn.de/go/kneeboard/pdf/document"
	"seehuhn.de/go/kneeboard/plan"
)

func TestCreate(t *testing.T) {
	p := plan.Template()
	doc, err := Create(p, &Options{
		Language: language.BritishEnglish,
		Info: &document.Info{
			Title:        "Kneeboard Notes",
			CreationDate: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	// two leg logs, two diversions, one hold
	if n := doc.NumPages(); n != 5 {
		t.Errorf("got %d pages, want 5", n)
	}
	if d := cmp.Diff(plan.Template(), p); d != "" {
		t.Errorf("plan was modified: %s", d)
	}

	buf1 := &bytes.Buffer{}
	if _, err := doc.Write(buf1); err != nil {
		t.Fatal(err)
	}
	out := buf1.String()
	for _, want := range []string{
		"%PDF-1.5\n",
		"/Count 5",
		"/Lang (en-GB)",
		"/Title (Kneeboard Notes)",
		"%%EOF\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}

	// The same plan always gives the same file.
	doc2, err := Create(plan.Template(), &Options{
		Language: language.BritishEnglish,
		Info: &document.Info{
			Title:        "Kneeboard Notes",
			CreationDate: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	buf2 := &bytes.Buffer{}
	if _, err := doc2.Write(buf2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("output is not deterministic")
	}
}

func TestCreatePageOrder(t *testing.T) {
	p := &plan.Plan{
		Routes: []plan.Route{
			{Legs: []plan.Leg{{From: "First", To: "Second", Speed: 90, Distance: 5}}},
		},
		Holds: []plan.Hold{{Description: "Hold here", AircraftSpeed: 90}},
	}
	doc, err := Create(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumPages() != 3 {
		t.Fatalf("got %d pages, want 3", doc.NumPages())
	}

	buf := &bytes.Buffer{}
	if _, err := doc.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// forward log, then the reversed log, then the hold
	forward := strings.Index(out, "(First) Tj\nT*\n(Second) Tj")
	reverse := strings.Index(out, "(Second) Tj\nT*\n(First) Tj")
	hold := strings.Index(out, "(Hold here) Tj")
	if forward < 0 || reverse < 0 || hold < 0 {
		t.Fatalf("pages missing: %d %d %d", forward, reverse, hold)
	}
	if !(forward < reverse && reverse < hold) {
		t.Errorf("wrong page order: %d %d %d", forward, reverse, hold)
	}
}

func TestCreateEmpty(t *testing.T) {
	doc, err := Create(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumPages() != 0 {
		t.Errorf("got %d pages, want 0", doc.NumPages())
	}
}

func TestCreateLogsInvalid(t *testing.T) {
	p := plan.Template()
	// a strong wind at right angles to the track
	p.Routes[0].Legs[0].WindDirection = 150
	p.Routes[0].Legs[0].WindSpeed = 150

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := Create(p, &Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}

	log := buf.String()
	if !strings.Contains(log, "plan has invalid entries") {
		t.Error("invalid plan not reported")
	}
	if n := strings.Count(log, "route has legs without solution"); n != 2 {
		t.Errorf("got %d warnings for legs without solution, want 2", n)
	}
	if n := strings.Count(log, "msg=hold"); n != 1 {
		t.Errorf("got %d hold pages logged, want 1", n)
	}
	if strings.Contains(log, "diversion has tracks without solution") ||
		strings.Contains(log, "hold has tracks without solution") {
		t.Error("solvable diversion or hold reported")
	}
}

func TestCreateLogsUnsolvedPages(t *testing.T) {
	p := plan.Template()
	p.Diversions[1].Wind.Speed = 200 // twice the air speed
	p.Holds[0].AircraftSpeed = 0

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	_, err := Create(p, &Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}

	log := buf.String()
	if n := strings.Count(log, "diversion has tracks without solution"); n != 1 {
		t.Errorf("got %d diversion warnings, want 1", n)
	}
	if !strings.Contains(log, "diversion=2 ") {
		t.Errorf("warning for the wrong diversion: %s", log)
	}
	want := `msg="hold has tracks without solution" hold=1 description="Hold at the beacon" tracks=3`
	if !strings.Contains(log, want) {
		t.Errorf("hold not reported: %s", log)
	}
}

// FuzzCreate checks that no plan values can break page generation.
func FuzzCreate(f *testing.F) {
	f.Add(100, 60, 15, 1, 270, 20, true)
	f.Add(0, 0, 0, 0, 0, 0, false)
	f.Add(90, 359, 1, -30, 150, 150, true)
	f.Add(-100, -45, -10, 720, -90, 200, false)
	f.Add(1<<40, 1<<40, 1<<40, 1<<40, 1<<40, 1<<40, true)

	f.Fuzz(func(t *testing.T, speed, course, distance, variation, windDir, windSpeed int, right bool) {
		p := plan.Template()
		for i := range p.Routes[0].Legs {
			leg := &p.Routes[0].Legs[i]
			leg.Speed = speed
			leg.Course = course + 10*i
			leg.Distance = distance
			leg.Variation = variation
			leg.WindDirection = windDir
			leg.WindSpeed = windSpeed
		}
		for i := range p.Diversions {
			d := &p.Diversions[i]
			d.AircraftSpeed = speed
			d.Variation = variation
			d.Wind = plan.Wind{Angle: windDir, Speed: windSpeed}
		}
		h := &p.Holds[0]
		h.RightHand = right
		h.InboundTrack = course
		h.AircraftSpeed = speed
		h.Variation = variation
		h.Wind = plan.Wind{Angle: windDir, Speed: windSpeed}

		doc, err := Create(p, nil)
		if err != nil {
			t.Fatal(err)
		}
		if n := doc.NumPages(); n != 5 {
			t.Errorf("got %d pages, want 5", n)
		}
		buf := &bytes.Buffer{}
		if _, err := doc.Write(buf); err != nil {
			t.Fatal(err)
		}
		if bytes.Contains(buf.Bytes(), []byte("NaN")) {
			t.Error("NaN written to the file")
		}
	})
}
