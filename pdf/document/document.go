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

// Package document assembles kneeboard pages into a complete PDF file.
//
// All pages share the four standard fonts and one resource dictionary.
// Object numbers are assigned in a fixed order, so that the same pages
// always produce the same file.
package document

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/kneeboard/pdf"
	"seehuhn.de/go/kneeboard/pdf/content"
)

// Info contains the entries of the document information dictionary.
// Empty fields are omitted.
type Info struct {
	Title        string
	Producer     string
	CreationDate time.Time
}

// Options control the document level metadata.
type Options struct {
	// Language, if set, is recorded as the natural language of the
	// document text.
	Language language.Tag

	// Info, if not nil, is used to write an information dictionary.
	Info *Info
}

// Builder collects the pages of a document.
type Builder struct {
	alloc     *pdf.Allocator
	opt       Options
	resources pdf.Reference
	pages     []*content.Builder
}

// New starts a new document.  The fonts and the shared resource dictionary
// are allocated immediately.
func New(opt *Options) *Builder {
	if opt == nil {
		opt = &Options{}
	}

	a := pdf.NewAllocator()
	fonts := pdf.Dict{}
	for _, f := range content.Fonts {
		fonts[f.BaseFont()] = a.Alloc(f.Dict())
	}
	fontDict := a.Alloc(fonts)
	resources := a.Alloc(pdf.Dict{
		"Font":    fontDict,
		"ProcSet": pdf.Array{pdf.Name("PDF"), pdf.Name("Text")},
	})

	return &Builder{
		alloc:     a,
		opt:       *opt,
		resources: resources,
	}
}

// NewPage appends a new page of the given size to the document.  The
// contents of the page can be drawn using the returned builder until
// Finish is called.
func (b *Builder) NewPage(size content.Size) *content.Builder {
	page := content.NewBuilder(size)
	b.pages = append(b.pages, page)
	return page
}

// NumPages returns the number of pages added so far.
func (b *Builder) NumPages() int {
	return len(b.pages)
}

// Finish writes the page tree and the document catalog.  The builder must
// not be used after Finish has been called.
func (b *Builder) Finish() (*Document, error) {
	a := b.alloc
	pages := a.Reserve()
	catalog := a.Reserve()

	kids := make(pdf.Array, 0, len(b.pages))
	for i, page := range b.pages {
		stm, err := page.Content().Object()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		contents := a.Alloc(stm)

		w, h := page.PageSize().Points()
		kid := a.Alloc(pdf.Dict{
			"Type":      pdf.Name("Page"),
			"Parent":    pages.Ref(),
			"MediaBox":  pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Real(w), pdf.Real(h)},
			"Contents":  contents,
			"Resources": b.resources,
		})
		kids = append(kids, kid)
	}
	pages.Complete(pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
	})

	cat := pdf.Dict{
		"Type":       pdf.Name("Catalog"),
		"Pages":      pages.Ref(),
		"PageLayout": pdf.Name("OneColumn"),
	}
	if b.opt.Language != language.Und {
		cat["Lang"] = pdf.TextString(b.opt.Language.String())
	}
	catalog.Complete(cat)

	var info *pdf.Reference
	if b.opt.Info != nil {
		ref := a.Alloc(b.opt.Info.dict())
		info = &ref
	}

	doc := &Document{
		file:     a.File(catalog.Ref(), info),
		numPages: len(b.pages),
	}
	b.alloc = nil
	b.pages = nil
	return doc, nil
}

func (info *Info) dict() pdf.Dict {
	d := pdf.Dict{}
	if info.Title != "" {
		d["Title"] = pdf.TextString(info.Title)
	}
	if info.Producer != "" {
		d["Producer"] = pdf.TextString(info.Producer)
	}
	if !info.CreationDate.IsZero() {
		d["CreationDate"] = pdf.Date(info.CreationDate)
	}
	return d
}

// Document is a finished PDF document.
type Document struct {
	file     *pdf.File
	numPages int
}

// Write writes the document to w and returns the number of bytes written.
// Write can be called more than once.
func (doc *Document) Write(w io.Writer) (int64, error) {
	return doc.file.WriteTo(w)
}

// NumObjects returns the number of indirect objects in the document.
func (doc *Document) NumObjects() int {
	return len(doc.file.Objects)
}

// NumPages returns the number of pages in the document.
func (doc *Document) NumPages() int {
	return doc.numPages
}
