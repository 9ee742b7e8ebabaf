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

// Package float formats and rounds the numbers which end up in the
// generated documents.
package float

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Format converts x to a string with at most the given number of digits
// after the decimal point.  Trailing zeros and a trailing decimal point are
// removed, as is a leading zero before the decimal point.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	switch {
	case out == "-0":
		out = "0"
	case strings.HasPrefix(out, "0."):
		out = out[1:]
	case strings.HasPrefix(out, "-0."):
		out = "-" + out[2:]
	}
	return out
}

// Round rounds x to the given number of decimal digits.
func Round[T constraints.Float](x T, digits int) T {
	p := math.Pow10(digits)
	y := math.Round(float64(x)*p) / p
	if y == 0 {
		// avoid negative zero
		y = 0
	}
	return T(y)
}

// RoundInt rounds x to the nearest integer, with halves rounded away from
// zero.  The second return value is false if x is not finite.
func RoundInt[T constraints.Float](x T) (int, bool) {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Round(f)), true
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
