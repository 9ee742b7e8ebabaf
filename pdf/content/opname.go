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

package content

// OpName is the name of a content stream operator.
type OpName string

// The operators used in kneeboard documents.
const (
	// General Graphics State
	OpPushGraphicsState OpName = "q"
	OpPopGraphicsState  OpName = "Q"
	OpSetLineWidth      OpName = "w"

	// Path Construction
	OpMoveTo    OpName = "m"
	OpLineTo    OpName = "l"
	OpCurveTo   OpName = "c"
	OpClosePath OpName = "h"
	OpRectangle OpName = "re"

	// Path Painting
	OpStroke OpName = "S"
	OpFill   OpName = "f"

	// Text Objects
	OpTextBegin OpName = "BT"
	OpTextEnd   OpName = "ET"

	// Text State
	OpTextSetLeading OpName = "TL"
	OpTextSetFont    OpName = "Tf"

	// Text Positioning
	OpTextMoveOffset OpName = "Td"
	OpTextNextLine   OpName = "T*"

	// Text Showing
	OpTextShow OpName = "Tj"

	// Device Colors
	OpSetStrokeRGB OpName = "RG"
	OpSetFillRGB   OpName = "rg"
)

// numArgs gives the number of operands expected by each operator.
var numArgs = map[OpName]int{
	OpPushGraphicsState: 0,
	OpPopGraphicsState:  0,
	OpSetLineWidth:      1,
	OpMoveTo:            2,
	OpLineTo:            2,
	OpCurveTo:           6,
	OpClosePath:         0,
	OpRectangle:         4,
	OpStroke:            0,
	OpFill:              0,
	OpTextBegin:         0,
	OpTextEnd:           0,
	OpTextSetLeading:    1,
	OpTextSetFont:       2,
	OpTextMoveOffset:    2,
	OpTextNextLine:      0,
	OpTextShow:          1,
	OpSetStrokeRGB:      3,
	OpSetFillRGB:        3,
}
