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

package nav

import (
	"math"
)

// Velocity is a speed together with the direction of motion.
//
// For wind, Bearing is the direction the air mass moves towards.  This is
// the reciprocal of the direction the wind is reported from.
type Velocity struct {
	Speed   float64
	Bearing Angle
}

// WindFrom returns the wind velocity for a wind reported as blowing from
// the given compass direction (in degrees) with the given speed.
func WindFrom(direction, speed float64) Velocity {
	return Velocity{
		Speed:   speed,
		Bearing: NewAngle(direction).Reciprocal(),
	}
}

// From returns the direction the wind is blowing from.
func (v Velocity) From() Angle {
	return v.Bearing.Reciprocal()
}

// Heading is the solution of the wind triangle for one leg.
//
// If the wind component across the track exceeds the air speed, there is no
// solution.  In this case Valid returns false, GroundSpeed is not a usable
// number, Correction is zero and True and Magnetic repeat the track (plus
// variation).
type Heading struct {
	Track       Angle   // desired track over the ground
	GroundSpeed float64 // speed over the ground, in the unit of the inputs
	Correction  Angle   // wind-correction angle
	True        Angle   // heading relative to true north
	Magnetic    Angle   // heading relative to magnetic north

	solved bool
}

// Valid reports whether the wind triangle has a physically meaningful
// solution.
func (h Heading) Valid() bool {
	return h.solved &&
		!math.IsNaN(h.GroundSpeed) && !math.IsInf(h.GroundSpeed, 0) &&
		h.GroundSpeed >= 0
}

// Solve computes heading and ground speed for flying the given track with
// true air speed tas, in the presence of the given wind.  Variation is added
// to the true heading to obtain the magnetic heading.
func Solve(tas float64, track, variation Angle, wind Velocity) Heading {
	gs := groundSpeed(tas, track, wind)

	wca, ok := correction(tas, track, wind)
	h := Heading{
		Track:       track,
		GroundSpeed: gs,
		Correction:  wca,
		solved:      ok,
	}
	h.True = track.Add(wca)
	h.Magnetic = h.True.Add(variation)
	return h
}

// correction returns the wind-correction angle, using the law of sines.
// The second return value is false if the crosswind component exceeds
// the air speed.
func correction(tas float64, track Angle, wind Velocity) (Angle, bool) {
	sigma := track.Sub(wind.Bearing)
	x := wind.Speed / tas * sigma.Sin()
	wca := math.Asin(x) * 180 / math.Pi
	if math.IsNaN(wca) || math.IsInf(wca, 0) {
		return Angle{}, false
	}
	return NewAngle(wca), true
}

// groundSpeed applies the law of cosines to the wind triangle.  This gives
// a quadratic equation for the ground speed, of which the larger root is
// the forward speed along the track.  The result is NaN if the equation has
// no real solutions.
func groundSpeed(tas float64, track Angle, wind Velocity) float64 {
	angle := wind.Bearing.Sub(track)
	b := -2 * wind.Speed * angle.Cos()
	c := wind.Speed*wind.Speed - tas*tas

	x1, x2 := quadratic(1, b, c)
	return math.Max(x1, x2)
}

func quadratic(a, b, c float64) (float64, float64) {
	root := math.Sqrt(b*b - 4*a*c)
	x1 := (-b + root) / (2 * a)
	x2 := (-b - root) / (2 * a)
	return x1, x2
}

// LegTime returns the time in minutes needed to cover distance at the given
// ground speed.
func LegTime(distance, groundSpeed float64) float64 {
	return 60 * distance / groundSpeed
}
