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
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrAlreadyComplete is used when a reserved object is completed twice.
var ErrAlreadyComplete = errors.New("pdf: reserved object already completed")

// Allocator collects the indirect objects of a PDF file.  The position of
// an object in the allocation order determines its object number.
//
// Objects can be allocated directly using Alloc.  If an object needs to be
// referenced before its value is known, Reserve can be used to obtain the
// reference first and to fill in the value later.
type Allocator struct {
	objs    []Object
	pending map[int]bool
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{
		pending: make(map[int]bool),
	}
}

// Alloc appends obj to the list of indirect objects and returns a reference
// to it.
func (a *Allocator) Alloc(obj Object) Reference {
	a.objs = append(a.objs, obj)
	return Reference{Number: len(a.objs)}
}

// Reserve allocates an object number without a value.  The value must be
// set using Pending.Complete before the file is written.
func (a *Allocator) Reserve() *Pending {
	ref := a.Alloc(nil)
	a.pending[ref.Number] = true
	return &Pending{a: a, ref: ref}
}

// Len returns the number of allocated objects.
func (a *Allocator) Len() int {
	return len(a.objs)
}

// Get returns the value of an allocated object.  For reserved objects which
// have not been completed yet, nil is returned.
func (a *Allocator) Get(ref Reference) Object {
	if ref.Number < 1 || ref.Number > len(a.objs) {
		return nil
	}
	return a.objs[ref.Number-1]
}

// File returns the complete file, with the given document catalog and
// optional information dictionary.  The allocator must not be used after
// this call.
//
// File panics if any reserved object has not been completed.
func (a *Allocator) File(root Reference, info *Reference) *File {
	if len(a.pending) > 0 {
		nums := slices.Sorted(maps.Keys(a.pending))
		panic(fmt.Sprintf("pdf: reserved object %d was never completed", nums[0]))
	}
	f := &File{
		Objects: a.objs,
		Root:    root,
		Info:    info,
	}
	a.objs = nil
	return f
}

// Pending is an object number which has been reserved, but whose value is
// not yet known.
type Pending struct {
	a   *Allocator
	ref Reference
}

// Ref returns the reference to the reserved object.
func (p *Pending) Ref() Reference {
	return p.ref
}

// Complete sets the value of the reserved object.
// Complete panics if it is called more than once.
func (p *Pending) Complete(obj Object) {
	if !p.a.pending[p.ref.Number] {
		panic(fmt.Errorf("object %d: %w", p.ref.Number, ErrAlreadyComplete))
	}
	delete(p.a.pending, p.ref.Number)
	p.a.objs[p.ref.Number-1] = obj
}
