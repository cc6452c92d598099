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

package document

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"math"

	"golang.org/x/text/language"

	"seehuhn.de/go/cv/internal/pdf"
)

// Producer is recorded as the producing application in the PDF metadata.
const Producer = "seehuhn.de/go/cv"

// WriteTo writes the document as a PDF file to w.
// This implements the [io.WriterTo] interface.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := doc.write(cw)
	return cw.n, err
}

func (doc *Document) write(w io.Writer) error {
	out, err := pdf.NewWriter(w)
	if err != nil {
		return err
	}

	catalogRef := out.Alloc()
	pagesRef := out.Alloc()

	profileRef, cs, err := out.WriteSRGB()
	if err != nil {
		return err
	}

	imgOpt := &pdf.ImageOptions{ColorSpace: cs}
	if doc.Quality > 0 {
		imgOpt.Encoding = pdf.JPEG
		imgOpt.Quality = doc.Quality
	}

	pw, ph := doc.Size.Points()
	var kids pdf.Array
	for _, p := range doc.pages {
		imgRef, err := out.EmbedImage(p.img, imgOpt)
		if err != nil {
			return err
		}
		contentRef, err := out.WriteCompressed(nil, doc.contents(p.place), nil)
		if err != nil {
			return err
		}
		pageRef, err := out.WriteIndirect(pdf.Dict{
			"Type":     pdf.Name("Page"),
			"Parent":   pagesRef,
			"MediaBox": pdf.Rectangle(0, 0, pw, ph),
			"Resources": pdf.Dict{
				"XObject": pdf.Dict{"Im0": imgRef},
			},
			"Contents": contentRef,
		}, nil)
		if err != nil {
			return err
		}
		kids = append(kids, pageRef)
	}

	_, err = out.WriteIndirect(pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
	}, pagesRef)
	if err != nil {
		return err
	}

	catalog := pdf.Dict{
		"Type":          pdf.Name("Catalog"),
		"Pages":         pagesRef,
		"OutputIntents": pdf.Array{pdf.OutputIntent(profileRef)},
	}
	var infoRef *pdf.Reference
	if doc.Info != nil {
		meta := &pdf.Metadata{
			Title:    doc.Info.Title,
			Author:   doc.Info.Author,
			Subject:  doc.Info.Subject,
			Creator:  Producer,
			Producer: Producer,
			Lang:     doc.Info.Lang,
			Created:  doc.Info.Created,
		}
		infoRef, err = out.WriteInfo(meta)
		if err != nil {
			return err
		}
		xmpRef, err := out.WriteXMP(meta)
		if err != nil {
			return err
		}
		catalog["Metadata"] = xmpRef
		if doc.Info.Lang != language.Und {
			catalog["Lang"] = pdf.TextString(doc.Info.Lang.String())
		}
	}
	_, err = out.WriteIndirect(catalog, catalogRef)
	if err != nil {
		return err
	}

	return out.Close(&pdf.Trailer{
		Root: catalogRef,
		Info: infoRef,
		ID:   doc.fileID(),
	})
}

// contents returns the content stream which draws the page image at the
// given position.  PDF coordinates start at the bottom of the page.
func (doc *Document) contents(pl Placement) []byte {
	x := pl.X * ptPerMM
	y := (doc.Size.Height - pl.Y - pl.Height) * ptPerMM
	w := pl.Width * ptPerMM
	h := pl.Height * ptPerMM

	buf := &bytes.Buffer{}
	buf.WriteString("q ")
	for _, v := range []float64{w, 0, 0, h, x, y} {
		buf.WriteString(pdf.Format(v))
		buf.WriteByte(' ')
	}
	buf.WriteString("cm /Im0 Do Q")
	return buf.Bytes()
}

// fileID derives the file identifier from the document contents, so that
// identical documents get identical identifiers.
func (doc *Document) fileID() []byte {
	h := sha256.New()
	if doc.Info != nil {
		io.WriteString(h, doc.Info.Title)
		io.WriteString(h, doc.Info.Author)
		binary.Write(h, binary.BigEndian, doc.Info.Created.UnixNano())
	}
	binary.Write(h, binary.BigEndian, math.Float64bits(doc.Size.Width))
	binary.Write(h, binary.BigEndian, math.Float64bits(doc.Size.Height))
	for _, p := range doc.pages {
		b := p.img.Bounds()
		binary.Write(h, binary.BigEndian, [2]int64{int64(b.Dx()), int64(b.Dy())})
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := p.img.PixOffset(b.Min.X, y)
			h.Write(p.img.Pix[i : i+4*b.Dx()])
		}
	}
	return h.Sum(nil)[:16]
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.n += int64(n)
	return n, err
}
