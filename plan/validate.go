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

package plan

import (
	"errors"
	"fmt"
)

// Validate checks the plan for values which cannot give useful notes.
// The returned error joins one error per problem found.  A plan which
// fails validation can still be rendered; affected entries are shown as
// placeholders.
func (p *Plan) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for i, r := range p.Routes {
		for j, leg := range r.Legs {
			where := fmt.Sprintf("route %d, leg %d", i+1, j+1)
			if leg.Speed <= 0 {
				add("%s: speed cannot be zero or less", where)
			} else if leg.Speed <= leg.WindSpeed {
				add("%s: speed must exceed the wind speed", where)
			}
			if leg.Distance <= 0 {
				add("%s: distance cannot be zero or less", where)
			}
			if leg.Course < 0 {
				add("%s: course cannot be negative", where)
			}
			if leg.WindDirection < 0 {
				add("%s: wind direction cannot be negative", where)
			}
			if leg.WindSpeed < 0 {
				add("%s: wind speed cannot be negative", where)
			}
		}
		for j, note := range r.Notes {
			switch note.Style {
			case Normal, Bold, Italic, Blank:
			default:
				add("route %d, note %d: unknown style %q", i+1, j+1, note.Style)
			}
		}
	}
	for i, d := range p.Diversions {
		checkWind(&errs, fmt.Sprintf("diversion %d", i+1), d.AircraftSpeed, d.Wind)
	}
	for i, h := range p.Holds {
		checkWind(&errs, fmt.Sprintf("hold %d", i+1), h.AircraftSpeed, h.Wind)
	}

	return errors.Join(errs...)
}

func checkWind(errs *[]error, where string, speed int, wind Wind) {
	switch {
	case speed <= 0:
		*errs = append(*errs, fmt.Errorf("%s: speed cannot be zero or less", where))
	case wind.Speed < 0:
		*errs = append(*errs, fmt.Errorf("%s: wind speed cannot be negative", where))
	case wind.Speed >= speed:
		*errs = append(*errs, fmt.Errorf("%s: wind speed must be less than the air speed", where))
	}
	if wind.Angle < 0 {
		*errs = append(*errs, fmt.Errorf("%s: wind direction cannot be negative", where))
	}
}
