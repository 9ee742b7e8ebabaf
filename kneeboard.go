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

// Package kneeboard generates kneeboard notes for VFR flights.
//
// The notes are an A5 PDF document with, in order, a navigation log for
// every route and for the same route flown in reverse, a wind table for
// every diversion and a diagram for every holding pattern.
package kneeboard

import (
	"log/slog"
	"math"

	"github.com/mohae/deepcopy"
	"golang.org/x/text/language"

	"seehuhn.de/go/kneeboard/nav"
	"seehuhn.de/go/kneeboard/pdf/content"
	"seehuhn.de/go/kneeboard/pdf/document"
	"seehuhn.de/go/kneeboard/plan"
	"seehuhn.de/go/kneeboard/sheet"
)

// Options control the generation of the notes.
type Options struct {
	// Logger receives debug messages for each page and warnings for plan
	// entries which cannot be computed.  If nil, nothing is logged.
	Logger *slog.Logger

	// Language is the language of the document text.
	Language language.Tag

	// Info, if not nil, is written to the document information
	// dictionary.
	Info *document.Info
}

// Create generates the kneeboard notes for a plan.  The plan is not
// modified.
func Create(p *plan.Plan, opt *Options) (*document.Document, error) {
	if opt == nil {
		opt = &Options{}
	}
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if p == nil {
		p = &plan.Plan{}
	}

	// work on a private copy, so that the plan cannot change underneath us
	p = deepcopy.Copy(p).(*plan.Plan)
	if err := p.Validate(); err != nil {
		log.Warn("plan has invalid entries", "err", err)
	}

	doc := document.New(&document.Options{
		Language: opt.Language,
		Info:     opt.Info,
	})

	for i, route := range p.Routes {
		legs := make([]sheet.Leg, len(route.Legs))
		for j, l := range route.Legs {
			legs[j] = sheet.NewLeg(l)
		}

		for _, dir := range []struct {
			name string
			legs []sheet.Leg
		}{
			{"forward", legs},
			{"reverse", sheet.Reverse(legs)},
		} {
			page := doc.NewPage(content.A5)
			calcs := sheet.LegLog(page, dir.legs, route.Notes, p.Detail)

			total := sheet.TotalTime(calcs)
			if math.IsNaN(total) {
				log.Warn("route has legs without solution",
					"route", i+1, "name", route.Name, "direction", dir.name)
			}
			log.Debug("leg log",
				"page", doc.NumPages(),
				"route", i+1,
				"direction", dir.name,
				"legs", len(dir.legs),
				"minutes", total)
		}
	}

	for i, d := range p.Diversions {
		page := doc.NewPage(content.A5)
		unsolved := sheet.Diversion(page,
			float64(d.AircraftSpeed),
			nav.NewAngle(float64(d.Variation)),
			nav.WindFrom(float64(d.Wind.Angle), float64(d.Wind.Speed)))
		if unsolved > 0 {
			log.Warn("diversion has tracks without solution",
				"diversion", i+1, "tracks", unsolved)
		}
		log.Debug("diversion", "page", doc.NumPages(), "diversion", i+1)
	}

	for i, h := range p.Holds {
		page := doc.NewPage(content.A5)
		if unsolved := sheet.Hold(page, h); unsolved > 0 {
			log.Warn("hold has tracks without solution",
				"hold", i+1, "description", h.Description, "tracks", unsolved)
		}
		log.Debug("hold", "page", doc.NumPages(), "hold", i+1)
	}

	return doc.Finish()
}
