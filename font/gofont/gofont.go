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

// Package gofont provides metrics and glyph outlines for the Go font family.
//
// The same fonts are used to lay out a page and to rasterize it, so that
// the measured text width is exactly the drawn text width.
package gofont

import (
	"bytes"
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the fonts used on résumé pages.
const (
	Regular Font = iota // Go Regular
	Bold                // Go Semi Bold
	Italic              // Go Italic
	Medium              // Go Medium Regular
)

func (f Font) String() string {
	switch f {
	case Regular:
		return "Go Regular"
	case Bold:
		return "Go Bold"
	case Italic:
		return "Go Italic"
	case Medium:
		return "Go Medium"
	default:
		return fmt.Sprintf("gofont.Font(%d)", int(f))
	}
}

var ttf = map[Font][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Italic:  goitalic.TTF,
	Medium:  gomedium.TTF,
}

// Face gives access to the metrics and outlines of a font.
// Faces are safe for concurrent use.
type Face struct {
	// Font is the parsed font file.
	Font *sfnt.Font

	cmap    cmap.Subtable
	ascent  funit.Int16
	descent funit.Int16
}

type loaded struct {
	face *Face
	err  error
}

var (
	cacheMu sync.Mutex
	cache   = map[Font]*loaded{}
)

// Face returns the face for f.  Each font is parsed only once.
func (f Font) Face() (*Face, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if l, ok := cache[f]; ok {
		return l.face, l.err
	}
	face, err := load(f)
	cache[f] = &loaded{face: face, err: err}
	return face, err
}

// MustFace is like [Font.Face], but panics on error.
// The embedded Go fonts are known to be valid, so this is used where
// a failure would indicate a broken build.
func (f Font) MustFace() *Face {
	face, err := f.Face()
	if err != nil {
		panic(err)
	}
	return face
}

func load(f Font) (*Face, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gofont: %w", err)
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("gofont: %s: %w", f, err)
	}

	face := &Face{
		Font:    info,
		cmap:    subtable,
		ascent:  info.Ascent,
		descent: info.Descent,
	}
	return face, nil
}

// q converts font design units to units of the font size.
func (face *Face) q() float64 {
	return 1 / float64(face.Font.UnitsPerEm)
}

// Ascent returns the distance from the baseline to the top of the tallest
// glyphs, for the given font size.
func (face *Face) Ascent(size float64) float64 {
	return face.ascent.AsFloat(face.q() * size)
}

// Descent returns the distance from the baseline to the bottom of the
// lowest glyphs, for the given font size.  The value is positive.
func (face *Face) Descent(size float64) float64 {
	return -face.descent.AsFloat(face.q() * size)
}

// Glyph is a positioned glyph in a line of text.
type Glyph struct {
	GID glyph.ID

	// X is the horizontal offset of the glyph origin from the start of the
	// line, in the units of the font size.
	X float64

	Advance float64
}

// Layout converts a string to a sequence of glyphs at the given size.
// The text is normalised to NFC first.  Runes which are not present in the
// font are mapped to the .notdef glyph.
func (face *Face) Layout(s string, size float64) []Glyph {
	s = norm.NFC.String(s)
	res := make([]Glyph, 0, len(s))
	x := 0.0
	for _, r := range s {
		gid := face.cmap.Lookup(r)
		adv := face.Font.GlyphWidthPDF(gid) * size / 1000
		res = append(res, Glyph{GID: gid, X: x, Advance: adv})
		x += adv
	}
	return res
}

// Width returns the advance width of s at the given font size.
func (face *Face) Width(s string, size float64) float64 {
	gg := face.Layout(s, size)
	if len(gg) == 0 {
		return 0
	}
	last := gg[len(gg)-1]
	return last.X + last.Advance
}

// Scale returns the factor which converts font design units to user space
// units at the given font size.
func (face *Face) Scale(size float64) float64 {
	return size * face.q()
}
