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
	"seehuhn.de/go/cv/visual"
)

// vBox represents a Box which contains a column of sub-objects.
type vBox struct {
	BoxExtent

	Contents []Box
}

// VBox creates a new VBox, where the baseline coincides with the baseline of
// the last child.
func (p *Parameters) VBox(children ...Box) Box {
	return p.vBoxInternal(false, children...)
}

// VTop creates a new VBox, where the baseline coincides with the baseline of
// the first child.
func (p *Parameters) VTop(children ...Box) Box {
	return p.vBoxInternal(true, children...)
}

func (p *Parameters) vBoxInternal(top bool, children ...Box) *vBox {
	vbox := &vBox{}
	totalHeight := 0.0
	firstHeight := 0.0
	lastDepth := 0.0
	first := true
	for i, child := range children {
		ext := child.Extent()

		if i == 0 {
			firstHeight = ext.Height
		}

		if first || ext.WhiteSpaceOnly {
			first = ext.WhiteSpaceOnly
		} else {
			gap := lastDepth + ext.Height
			if gap < p.BaseLineSkip {
				extra := p.BaseLineSkip - gap
				vbox.Contents = append(vbox.Contents, Kern(extra))
				totalHeight += extra
			}
		}
		vbox.Contents = append(vbox.Contents, child)
		totalHeight += ext.Depth + ext.Height

		if ext.Width > vbox.Width && !ext.WhiteSpaceOnly {
			vbox.Width = ext.Width
		}

		lastDepth = ext.Depth
	}
	if top {
		vbox.Height = firstHeight
		vbox.Depth = totalHeight - firstHeight
	} else {
		vbox.Height = totalHeight - lastDepth
		vbox.Depth = lastDepth
	}
	return vbox
}

// Draw implements the Box interface.
func (obj *vBox) Draw(g *visual.Group, xPos, yPos float64) {
	y := yPos - obj.Height
	for _, child := range obj.Contents {
		ext := child.Extent()
		y += ext.Height
		child.Draw(g, xPos, y)
		y += ext.Depth
	}
}

// Total returns the full vertical size of a box.
func Total(b Box) float64 {
	ext := b.Extent()
	return ext.Height + ext.Depth
}
