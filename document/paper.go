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
	"errors"
	"fmt"
	"strings"
)

// Size is a paper size in millimetres.
type Size struct {
	Width, Height float64
}

// Default paper sizes, in portrait orientation.
var (
	A4     = Size{Width: 210, Height: 297}
	A5     = Size{Width: 148, Height: 210}
	Letter = Size{Width: 215.9, Height: 279.4}
)

// ptPerMM converts millimetres to PDF points.
const ptPerMM = 72 / 25.4

// Points returns the paper size in PDF points.
func (s Size) Points() (width, height float64) {
	return s.Width * ptPerMM, s.Height * ptPerMM
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%gmm", s.Width, s.Height)
}

// ErrUnknownPaper is returned by [ParseSize] for unsupported paper names.
var ErrUnknownPaper = errors.New("unknown paper size")

// ParseSize returns the paper size with the given name.
// The names "A4", "A5" and "Letter" are recognised, ignoring case.
func ParseSize(name string) (Size, error) {
	switch strings.ToLower(name) {
	case "a4", "":
		return A4, nil
	case "a5":
		return A5, nil
	case "letter":
		return Letter, nil
	}
	return Size{}, fmt.Errorf("%q: %w", name, ErrUnknownPaper)
}
