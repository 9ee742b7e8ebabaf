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

// Package plan defines the flight plan from which kneeboard notes are
// generated.  A plan is read from a YAML or JSON file and is never
// modified while the notes are created.
package plan

// Plan is the complete input for one set of kneeboard notes.
type Plan struct {
	Detail     Detail      `yaml:"detail" json:"detail"`
	Routes     []Route     `yaml:"routes" json:"routes"`
	Diversions []Diversion `yaml:"diversions" json:"diversions"`
	Holds      []Hold      `yaml:"holds,omitempty" json:"holds,omitempty"`

	// The lists below are kept by plan editors to fill in the detail.
	// They are read and written, but not printed.
	AircraftRegistrations []string `yaml:"aircraft_registrations,omitempty" json:"aircraft_registrations,omitempty"`
	PICs                  []string `yaml:"pics,omitempty" json:"pics,omitempty"`
	CallSigns             []string `yaml:"call_signs,omitempty" json:"call_signs,omitempty"`
}

// Detail identifies the aircraft and the crew.  Missing entries are left
// blank on the leg log.
type Detail struct {
	Tail     *string `yaml:"tail" json:"tail"`
	PIC      *string `yaml:"pic" json:"pic"`
	CallSign *string `yaml:"call_sign" json:"call_sign"`
	Field1   *string `yaml:"field1,omitempty" json:"field1,omitempty"`
	Field2   *string `yaml:"field2,omitempty" json:"field2,omitempty"`
	Field3   *string `yaml:"field3,omitempty" json:"field3,omitempty"`
}

// Lines returns the non-empty entries in the order they are printed.
func (d Detail) Lines() []string {
	var res []string
	for _, p := range []*string{d.Tail, d.CallSign, d.PIC, d.Field1, d.Field2, d.Field3} {
		if p != nil && *p != "" {
			res = append(res, *p)
		}
	}
	return res
}

// Route is a sequence of legs together with free-text notes.
type Route struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Legs  []Leg  `yaml:"legs" json:"legs"`
	Notes []Note `yaml:"notes" json:"notes"`
}

// Leg is one straight segment of a route.  Angles are in whole degrees,
// speeds in knots and distances in nautical miles.  The wind direction is
// the direction the wind blows from.
type Leg struct {
	From          string `yaml:"from" json:"from"`
	To            string `yaml:"to" json:"to"`
	Safe          string `yaml:"safe" json:"safe"`
	Planned       string `yaml:"planned" json:"planned"`
	Speed         int    `yaml:"speed" json:"speed"`
	Course        int    `yaml:"course" json:"course"`
	Distance      int    `yaml:"distance" json:"distance"`
	Variation     int    `yaml:"variation" json:"variation"`
	WindDirection int    `yaml:"wind_direction" json:"wind_direction"`
	WindSpeed     int    `yaml:"wind_speed" json:"wind_speed"`
}

// NoteStyle selects the font used for a note.  The values double as
// the keys used in plan files.
type NoteStyle string

// These are the valid note styles.
const (
	Normal NoteStyle = "Normal"
	Bold   NoteStyle = "Bold"
	Italic NoteStyle = "Italics"
	Blank  NoteStyle = "Blank"
)

// Note is one line of text printed below the leg log.
// A blank note leaves an empty line.
//
// In plan files a note is written as a map with the style as its only
// key, for example {"Bold": "Check fuel"}.  A blank note is the plain
// string "Blank".  See note.go.
type Note struct {
	Style NoteStyle
	Text  string
}

// Wind is a wind velocity.  Angle is the direction the wind blows from.
type Wind struct {
	Angle int `yaml:"angle" json:"angle"`
	Speed int `yaml:"speed" json:"speed"`
}

// Diversion asks for a table of headings and ground speeds, for all
// tracks in 5° steps.
type Diversion struct {
	Wind          Wind `yaml:"wind" json:"wind"`
	AircraftSpeed int  `yaml:"aircraft_speed" json:"aircraft_speed"`
	Variation     int  `yaml:"variation" json:"variation"`
}

// Hold describes a holding pattern at a beacon.
type Hold struct {
	Description   string `yaml:"description" json:"description"`
	RightHand     bool   `yaml:"right_hand" json:"right_hand"`
	InboundTrack  int    `yaml:"in_bound_track" json:"in_bound_track"`
	Wind          Wind   `yaml:"wind" json:"wind"`
	AircraftSpeed int    `yaml:"aircraft_speed" json:"aircraft_speed"`
	Variation     int    `yaml:"variation" json:"variation"`
}
