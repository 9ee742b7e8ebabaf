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

package pdf

import (
	"strconv"
)

// WriteError indicates that a PDF file could not be written to its
// destination.
type WriteError struct {
	Obj int // the object being written, or 0 outside of objects
	Err error
}

func (err *WriteError) Error() string {
	middle := ""
	if err.Obj > 0 {
		middle = " (object " + strconv.Itoa(err.Obj) + ")"
	}
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "cannot write PDF file" + middle + tail
}

func (err *WriteError) Unwrap() error {
	return err.Err
}
