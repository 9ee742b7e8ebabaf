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

// Package nav implements the dead-reckoning calculations used on the
// kneeboard sheets: bearings, wind vectors and the wind triangle.
package nav

import (
	"fmt"
	"math"
	"strconv"
)

// Angle is a bearing in degrees.  The value is always in the range [0, 360).
// The zero value represents north.
type Angle struct {
	deg float64
}

// NewAngle returns the bearing corresponding to x degrees.
// It panics if x is NaN or infinite.
func NewAngle(x float64) Angle {
	return Angle{deg: normalize(x)}
}

// FromRadians returns the bearing corresponding to r radians.
func FromRadians(r float64) Angle {
	return NewAngle(r * 180 / math.Pi)
}

func normalize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("nav: invalid angle %g", x))
	}
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	if x >= 360 {
		// -1e-20 + 360 rounds up to 360
		x = 0
	}
	return x
}

// Degrees returns the bearing in degrees, in the range [0, 360).
func (a Angle) Degrees() float64 {
	return a.deg
}

// Radians returns the bearing in radians.
func (a Angle) Radians() float64 {
	return a.deg / 180 * math.Pi
}

// Add returns the normalized sum a+b.
func (a Angle) Add(b Angle) Angle {
	return NewAngle(a.deg + b.deg)
}

// Sub returns the normalized difference a-b.
func (a Angle) Sub(b Angle) Angle {
	return NewAngle(a.deg - b.deg)
}

// Offset returns a turned by d degrees.  Negative values of d turn to the
// left.
func (a Angle) Offset(d float64) Angle {
	return NewAngle(a.deg + d)
}

// Signed returns the angle as a value in the range (-180, 180].
func (a Angle) Signed() float64 {
	if a.deg > 180 {
		return a.deg - 360
	}
	return a.deg
}

// Scale multiplies the signed angle by k.  This is used to exaggerate a
// wind-correction angle, which is small and may be to either side of the
// track.
func (a Angle) Scale(k float64) Angle {
	return NewAngle(a.Signed() * k)
}

// Reciprocal returns the opposite bearing.
func (a Angle) Reciprocal() Angle {
	return NewAngle(a.deg + 180)
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(a.Radians())
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(a.Radians())
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(a.Radians())
}

// Heading formats the bearing as a three digit compass heading,
// e.g. "009" or "270".  The value is rounded to the nearest whole degree,
// and a bearing which rounds to 360 is shown as "000".
func (a Angle) Heading() string {
	n := int(math.Round(a.deg)) % 360
	s := strconv.Itoa(n)
	switch len(s) {
	case 1:
		return "00" + s
	case 2:
		return "0" + s
	}
	return s
}

func (a Angle) String() string {
	return a.Heading() + "°"
}
