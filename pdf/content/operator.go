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

// Package content implements content streams for kneeboard pages.
//
// A content stream is a list of operators, which is written in the order
// the operators were appended.  The Builder type converts the millimetre
// coordinates used for page layout, with the origin in the top-left corner
// of the page, into PDF user space.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/kneeboard/pdf"
)

// ErrUnknown is returned when an operator is not recognized.
var ErrUnknown = errors.New("unknown operator")

// Operator represents a content stream operator with its arguments.
type Operator struct {
	Name OpName
	Args []pdf.Object
}

// PDF writes the operator in content stream syntax, i.e. the arguments
// followed by the operator name.
func (o Operator) PDF(w io.Writer) error {
	n, ok := numArgs[o.Name]
	if !ok {
		return fmt.Errorf("%q: %w", o.Name, ErrUnknown)
	}
	if n != len(o.Args) {
		return fmt.Errorf("operator %s: expected %d arguments, got %d",
			o.Name, n, len(o.Args))
	}

	for _, arg := range o.Args {
		err := arg.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(o.Name))
	return err
}

// Stream is an append-only sequence of content stream operators.
type Stream []Operator

// PDF writes the operators, one per line.
func (s Stream) PDF(w io.Writer) error {
	for _, op := range s {
		err := op.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
	}
	return nil
}

// Object converts the content stream into a PDF stream object.
func (s Stream) Object() (*pdf.Stream, error) {
	buf := &bytes.Buffer{}
	err := s.PDF(buf)
	if err != nil {
		return nil, err
	}
	return &pdf.Stream{Data: buf.Bytes()}, nil
}
