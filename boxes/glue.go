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

package boxes

import "seehuhn.de/go/cv/visual"

type stretchAmount struct {
	Val   float64
	Level int
}

type stretcher interface {
	Stretch() *stretchAmount
}

type glue struct {
	Length float64
	Plus   stretchAmount
}

// Glue returns a new "glue" box with the given natural length and
// stretchability.  Glue of a higher level takes up all available space
// before glue of a lower level is stretched.
func Glue(length float64, plus float64, plusLevel int) Box {
	return &glue{
		Length: length,
		Plus:   stretchAmount{plus, plusLevel},
	}
}

// Fill returns glue which absorbs all leftover space.
func Fill() Box {
	return Glue(0, 1, 1)
}

func (obj *glue) Extent() *BoxExtent {
	return &BoxExtent{
		Width:          obj.Length,
		Height:         obj.Length,
		WhiteSpaceOnly: true,
	}
}

func (obj *glue) Draw(g *visual.Group, xPos, yPos float64) {}

func (obj *glue) Stretch() *stretchAmount {
	return &obj.Plus
}

// distribute returns the amount of extra space each of the given sizes
// receives, if total space must be filled.  The result is nil if no
// stretching is needed or possible.
func distribute(children []Box, natural, total float64) []float64 {
	if natural >= total-1e-3 {
		return nil
	}

	level := -1
	var ii []int
	stretchTotal := 0.0
	for i, child := range children {
		s, ok := child.(stretcher)
		if !ok {
			continue
		}
		info := s.Stretch()
		if info.Level > level {
			level = info.Level
			ii = nil
			stretchTotal = 0
		}
		if info.Level == level {
			ii = append(ii, i)
			stretchTotal += info.Val
		}
	}
	if stretchTotal <= 0 {
		return nil
	}

	q := (total - natural) / stretchTotal
	if level == 0 && q > 1 {
		q = 1
	}
	extra := make([]float64, len(children))
	for _, i := range ii {
		extra[i] = children[i].(stretcher).Stretch().Val * q
	}
	return extra
}
