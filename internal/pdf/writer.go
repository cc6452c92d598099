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

package pdf

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
)

// ErrClosed is returned when a Writer is used after Close.
var ErrClosed = errors.New("pdf: writer is closed")

// Writer represents a PDF file open for writing.
type Writer struct {
	w       *posWriter
	xref    map[int]int64
	nextRef int
}

// NewWriter writes the PDF header to w and returns a Writer for the
// remaining objects.  The output uses PDF version 1.7.
func NewWriter(w io.Writer) (*Writer, error) {
	pdf := &Writer{
		w:       &posWriter{w: w},
		xref:    make(map[int]int64),
		nextRef: 1,
	}

	// The binary comment marks the file as containing binary data.
	_, err := io.WriteString(pdf.w, "%PDF-1.7\n%\x80\x80\x80\x80\n")
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() *Reference {
	res := &Reference{Number: pdf.nextRef}
	pdf.nextRef++
	return res
}

// WriteIndirect writes obj as an indirect object.  If ref is nil, a new
// object number is allocated.  The returned reference can be used to refer
// to the object from other parts of the file.
func (pdf *Writer) WriteIndirect(obj Object, ref *Reference) (*Reference, error) {
	if pdf.w == nil {
		return nil, ErrClosed
	}
	if ref == nil {
		ref = pdf.Alloc()
	} else if _, seen := pdf.xref[ref.Number]; seen {
		return nil, fmt.Errorf("pdf: object %d written twice", ref.Number)
	}

	pos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
	if err != nil {
		return nil, err
	}
	err = writeObject(pdf.w, obj)
	if err != nil {
		return nil, err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	if err != nil {
		return nil, err
	}

	pdf.xref[ref.Number] = pos
	return ref, nil
}

// WriteCompressed writes a stream with the given dictionary, compressing
// data using the FlateDecode filter.
func (pdf *Writer) WriteCompressed(dict Dict, data []byte, ref *Reference) (*Reference, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	d := maps.Clone(dict)
	if d == nil {
		d = Dict{}
	}
	d["Filter"] = Name("FlateDecode")
	return pdf.WriteIndirect(&Stream{Dict: d, Data: buf.Bytes()}, ref)
}

// Trailer contains the document level entries of the file trailer.
type Trailer struct {
	Root *Reference // required
	Info *Reference

	// ID is the file identifier.  If this is set, it is used for both the
	// original and the current identifier.
	ID []byte
}

// Close writes the cross-reference table and the trailer.  All allocated
// objects must have been written before Close is called.  The underlying
// io.Writer is not closed.
func (pdf *Writer) Close(trailer *Trailer) error {
	if pdf.w == nil {
		return ErrClosed
	}
	if trailer == nil || trailer.Root == nil {
		return errors.New("pdf: missing document catalog")
	}
	for i := 1; i < pdf.nextRef; i++ {
		if _, ok := pdf.xref[i]; !ok {
			return fmt.Errorf("pdf: object %d allocated but not written", i)
		}
	}

	dict := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": trailer.Root,
	}
	if trailer.Info != nil {
		dict["Info"] = trailer.Info
	}
	if trailer.ID != nil {
		dict["ID"] = Array{hexString(trailer.ID), hexString(trailer.ID)}
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(dict)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	// make sure we don't accidentally write beyond the end of file
	pdf.w = nil
	return nil
}

func (pdf *Writer) writeXRefTable(dict Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
	if err != nil {
		return err
	}
	for i := 1; i < pdf.nextRef; i++ {
		_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pdf.xref[i])
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	return dict.PDF(pdf.w)
}

// hexString is a string written in hexadecimal form.
type hexString []byte

func (x hexString) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<%x>", []byte(x))
	return err
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
