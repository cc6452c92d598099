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

import (
	"image/color"

	"seehuhn.de/go/cv/visual"
)

// Flow arranges items in rows of at most width units, starting a new row
// when the next item does not fit.  The gap values give the horizontal
// space between items and the vertical space between rows.  The baseline
// of the result is the baseline of the first row.
func Flow(width, gapX, gapY float64, items ...Box) Box {
	var rows []Box
	var row []Box
	rowWidth := 0.0
	for _, item := range items {
		w := item.Extent().Width
		if len(row) > 0 && rowWidth+gapX+w > width {
			rows = append(rows, HBox(row...))
			row = nil
			rowWidth = 0
		}
		if len(row) > 0 {
			row = append(row, Kern(gapX))
			rowWidth += gapX
		}
		row = append(row, item)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, HBox(row...))
	}
	if len(rows) == 0 {
		return Kern(0)
	}

	stack := make([]Box, 0, 2*len(rows)-1)
	for i, r := range rows {
		if i > 0 {
			stack = append(stack, Kern(gapY))
		}
		stack = append(stack, r)
	}
	p := &Parameters{}
	return p.VTop(stack...)
}

// padBox surrounds a box with a margin and an optional background.
type padBox struct {
	BoxExtent
	inner                    Box
	top, right, bottom, left float64
	bg                       *visual.Rect
}

// Pad adds a margin around b.  The baseline is unchanged.
func Pad(b Box, top, right, bottom, left float64) Box {
	ext := b.Extent()
	return &padBox{
		BoxExtent: BoxExtent{
			Width:  left + ext.Width + right,
			Height: top + ext.Height,
			Depth:  ext.Depth + bottom,
		},
		inner:  b,
		top:    top,
		right:  right,
		bottom: bottom,
		left:   left,
	}
}

// Badge puts a rounded, filled background behind b.  padX and padY give the
// space between the background edge and the contents.
func Badge(b Box, padX, padY float64, fill color.NRGBA) Box {
	p := Pad(b, padY, padX, padY, padX).(*padBox)
	h := p.Height + p.Depth
	p.bg = &visual.Rect{W: p.Width, H: h, Radius: h / 2, Fill: fill}
	return p
}

// Draw implements the Box interface.
func (obj *padBox) Draw(g *visual.Group, xPos, yPos float64) {
	if obj.bg != nil {
		bg := *obj.bg
		bg.X = xPos
		bg.Y = yPos - obj.Height
		g.Add(&bg)
	}
	obj.inner.Draw(g, xPos+obj.left, yPos)
}
