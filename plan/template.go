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

// Template returns an example plan, which can be used as a starting point
// for writing a new plan file.
func Template() *Plan {
	return &Plan{
		Detail: Detail{
			Tail:     ptr("Registration"),
			PIC:      ptr("PIC name"),
			CallSign: ptr("Call sign"),
		},
		Routes: []Route{
			{
				Name: "Outbound",
				Legs: []Leg{
					{
						From:          "Place 1",
						To:            "Place 2",
						Safe:          "1.8",
						Planned:       "2.2",
						Speed:         100,
						Course:        60,
						Distance:      15,
						Variation:     1,
						WindDirection: 270,
						WindSpeed:     20,
					},
					{
						From:          "Place 2",
						To:            "Place 3",
						Safe:          "1.8",
						Planned:       "2.2",
						Speed:         100,
						Course:        70,
						Distance:      10,
						Variation:     -1,
						WindDirection: 265,
						WindSpeed:     25,
					},
				},
				Notes: []Note{
					{Style: Normal, Text: "Normal note"},
					{Style: Bold, Text: "Bold note"},
					{Style: Italic, Text: "Italic note"},
					{Style: Blank},
				},
			},
		},
		Diversions: []Diversion{
			{Wind: Wind{Angle: 190, Speed: 20}, AircraftSpeed: 100, Variation: 1},
			{Wind: Wind{Angle: 260, Speed: 10}, AircraftSpeed: 90, Variation: 1},
		},
		Holds: []Hold{
			{
				Description:   "Hold at the beacon",
				RightHand:     true,
				InboundTrack:  270,
				Wind:          Wind{Angle: 190, Speed: 20},
				AircraftSpeed: 100,
				Variation:     1,
			},
		},
	}
}

func ptr(s string) *string {
	return &s
}
