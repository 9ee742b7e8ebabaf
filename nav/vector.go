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

	"seehuhn.de/go/geom/vec"
)

// Vector is a velocity in cartesian coordinates.
type Vector = vec.Vec2

// Polar is a vector given by direction and length.
type Polar struct {
	Angle     Angle
	Magnitude float64
}

// Vector converts p to cartesian coordinates.  The x axis points along
// bearing 0 and the y axis along bearing 90.
func (p Polar) Vector() Vector {
	return Vector{
		X: p.Magnitude * p.Angle.Cos(),
		Y: p.Magnitude * p.Angle.Sin(),
	}
}

// ToPolar converts a cartesian vector to direction and length.
// The direction of the zero vector is reported as 0.
func ToPolar(v Vector) Polar {
	m := v.Length()
	if m == 0 {
		return Polar{}
	}
	return Polar{
		Angle:     FromRadians(math.Atan2(v.Y, v.X)),
		Magnitude: m,
	}
}

// Vector returns the velocity in cartesian coordinates.
func (v Velocity) Vector() Vector {
	return Polar{Angle: v.Bearing, Magnitude: v.Speed}.Vector()
}
