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

// Package pdf writes the subset of the PDF file format needed for
// documents made of full-page images.
//
// Objects are written sequentially to an io.Writer.  The cross-reference
// table is accumulated while writing and emitted by [Writer.Close].
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"golang.org/x/exp/maps"
)

// Object is a PDF object which can be written to a file.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Integer is an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Number is a real number in a PDF file.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	_, err := io.WriteString(w, Format(float64(x)))
	return err
}

// Format formats a number the way it appears in PDF files, with at most
// four decimal places.
func Format(x float64) string {
	s := strconv.FormatFloat(x, 'f', 4, 64)
	s = trimZeros(s)
	if s == "-0" {
		s = "0"
	}
	return s
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// String is a PDF string.  The bytes are written using the literal
// string syntax, with escapes where needed.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	for _, c := range x {
		switch {
		case c == '(' || c == ')' || c == '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c < 32 || c >= 127:
			fmt.Fprintf(buf, `\%03o`, c)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// TextString encodes s as a PDF text string.  ASCII strings are stored
// as they are, everything else as UTF-16BE with a byte order mark.
func TextString(s string) String {
	ascii := true
	for _, r := range s {
		if r < 32 || r >= 127 {
			ascii = false
			break
		}
	}
	if ascii {
		return String(s)
	}

	enc := utf16.Encode([]rune(s))
	buf := make([]byte, 2, 2*len(enc)+2)
	buf[0], buf[1] = 0xFE, 0xFF
	for _, c := range enc {
		buf = append(buf, byte(c>>8), byte(c))
	}
	return String(buf)
}

// Date encodes a time as a PDF date string.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	return String(s[:k] + "'" + s[k:] + "'")
}

// Name is a PDF name.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range []byte(x) {
		if c < 0x21 || c > 0x7e || isDelimiter(c) || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// Array is a PDF array.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := writeObject(w, val); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// Rectangle returns a PDF array for the rectangle from (llx, lly) to
// (urx, ury).
func Rectangle(llx, lly, urx, ury float64) Array {
	return Array{Number(llx), Number(lly), Number(urx), Number(ury)}
}

// Dict is a PDF dictionary.  Entries with nil values are omitted when the
// dictionary is written.  Keys are written in sorted order, so that the
// output is deterministic.
type Dict map[Name]Object

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	if _, err := io.WriteString(w, "<<"); err != nil {
		return err
	}
	keys := maps.Keys(x)
	slices.Sort(keys)
	for _, key := range keys {
		val := x[key]
		if val == nil {
			continue
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := key.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := val.PDF(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n>>")
	return err
}

// Stream is a PDF stream with already encoded contents.  The /Length
// entry is set automatically.
type Stream struct {
	Dict
	Data []byte
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	dict := maps.Clone(x.Dict)
	if dict == nil {
		dict = Dict{}
	}
	dict["Length"] = Integer(len(x.Data))
	if err := dict.PDF(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\nstream\n"); err != nil {
		return err
	}
	if _, err := w.Write(x.Data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\nendstream")
	return err
}

// Reference refers to an indirect object.
type Reference struct {
	Number     int
	Generation uint16
}

// PDF implements the [Object] interface.
func (x *Reference) PDF(w io.Writer) error {
	var err error
	if x == nil {
		_, err = io.WriteString(w, "null")
	} else {
		_, err = fmt.Fprintf(w, "%d %d R", x.Number, x.Generation)
	}
	return err
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}
