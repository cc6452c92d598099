// seehuhn.de/go/cv - lay out résumés and export them as paginated PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package document assembles page bitmaps into a PDF document.
//
// Every bitmap becomes one physical page.  A bitmap is scaled to the full
// paper width and aligned with the top edge of the page.  Bitmaps which
// are too tall for this are scaled to the full paper height instead, and
// centred horizontally.
package document

import (
	"fmt"
	"image"
	"time"

	"golang.org/x/text/language"
)

// Placement describes where a bitmap is drawn on its page.  All values are
// in millimetres, with the origin in the top-left corner of the page.
type Placement struct {
	X, Y          float64
	Width, Height float64
}

// Info holds the document metadata.
type Info struct {
	Title   string
	Author  string
	Subject string
	Lang    language.Tag
	Created time.Time
}

// Document is a sequence of pages, each showing one bitmap.
type Document struct {
	Size Size

	// Info, if non-nil, is written to the document information dictionary
	// and to the XMP metadata.
	Info *Info

	// Quality selects the JPEG quality used for the page images.  If this
	// is zero, the images are stored losslessly.
	Quality int

	pages []*page
}

type page struct {
	img   *image.RGBA
	place Placement
}

// AssemblyError is returned by [Assemble] if a bitmap cannot be placed.
type AssemblyError struct {
	// Page is the index of the offending bitmap, or -1 if the
	// error is not related to a specific bitmap.
	Page int

	Reason string
}

func (err *AssemblyError) Error() string {
	if err.Page < 0 {
		return "document: " + err.Reason
	}
	return fmt.Sprintf("document: page %d: %s", err.Page, err.Reason)
}

// Assemble creates a document with one page per bitmap, in the given
// order.  An empty list of bitmaps gives a document without pages.
func Assemble(bitmaps []*image.RGBA, size Size) (*Document, error) {
	if !(size.Width > 0 && size.Height > 0) {
		return nil, &AssemblyError{Page: -1, Reason: "invalid paper size " + size.String()}
	}

	doc := &Document{
		Size:  size,
		pages: make([]*page, 0, len(bitmaps)),
	}
	for i, img := range bitmaps {
		if img == nil {
			return nil, &AssemblyError{Page: i, Reason: "missing bitmap"}
		}
		b := img.Bounds()
		if b.Empty() {
			return nil, &AssemblyError{Page: i, Reason: "empty bitmap"}
		}
		doc.pages = append(doc.pages, &page{
			img:   img,
			place: place(float64(b.Dx()), float64(b.Dy()), size),
		})
	}
	return doc, nil
}

func place(w, h float64, size Size) Placement {
	scaledHeight := h * size.Width / w
	if scaledHeight <= size.Height {
		return Placement{Width: size.Width, Height: scaledHeight}
	}
	scaledWidth := w * size.Height / h
	return Placement{
		X:      (size.Width - scaledWidth) / 2,
		Width:  scaledWidth,
		Height: size.Height,
	}
}

// NumPages returns the number of pages in the document.
func (doc *Document) NumPages() int {
	return len(doc.pages)
}

// Placements returns the position of the bitmap on every page.
func (doc *Document) Placements() []Placement {
	res := make([]Placement, len(doc.pages))
	for i, p := range doc.pages {
		res[i] = p.place
	}
	return res
}

// Bitmap returns the bitmap shown on page i.
func (doc *Document) Bitmap(i int) *image.RGBA {
	return doc.pages[i].img
}
