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
	"fmt"
	"io"
)

// Version is the PDF version written in the file header.
const Version = "1.5"

// File is a complete PDF file, ready to be written.
type File struct {
	// Objects lists the indirect objects.  The object with index i has
	// object number i+1.  Nil entries are written as null objects.
	Objects []Object

	Root Reference  // the document catalog
	Info *Reference // the document information dictionary, if any
}

// WriteTo writes the file to w.  The objects are written in order,
// followed by the cross-reference table and the trailer.
//
// This implements the io.WriterTo interface.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	pw := &posWriter{w: w}

	_, err := fmt.Fprintf(pw, "%%PDF-%s\n%%\x80\x80\x80\x80\n", Version)
	if err != nil {
		return pw.pos, &WriteError{Err: err}
	}

	xref := make([]int64, len(f.Objects))
	for i, obj := range f.Objects {
		xref[i] = pw.pos
		err = writeIndirect(pw, i+1, obj)
		if err != nil {
			return pw.pos, &WriteError{Obj: i + 1, Err: err}
		}
	}

	xRefPos := pw.pos
	err = f.writeXRefTable(pw, xref)
	if err != nil {
		return pw.pos, &WriteError{Err: err}
	}

	_, err = fmt.Fprintf(pw, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return pw.pos, &WriteError{Err: err}
	}
	return pw.pos, nil
}

func writeIndirect(w io.Writer, number int, obj Object) error {
	_, err := fmt.Fprintf(w, "%d 0 obj\n", number)
	if err != nil {
		return err
	}
	if obj == nil {
		_, err = w.Write([]byte("null"))
	} else {
		err = obj.PDF(w)
	}
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendobj\n"))
	return err
}

// writeXRefTable writes the cross-reference table and the trailer
// dictionary.  Each entry of the table is exactly 20 bytes long.
func (f *File) writeXRefTable(w io.Writer, xref []int64) error {
	size := len(xref) + 1
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", size)
	if err != nil {
		return err
	}
	// head of the list of free objects
	_, err = w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for _, pos := range xref {
		_, err = fmt.Fprintf(w, "%010d %05d n\r\n", pos, 0)
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(size),
		"Root": f.Root,
	}
	if f.Info != nil {
		trailer["Info"] = *f.Info
	}
	_, err = w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(w)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
