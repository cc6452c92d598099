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

// hBox represents a Box which contains a row of sub-objects.
type hBox struct {
	BoxExtent

	Contents []Box
	natural  float64
}

// HBox creates a new HBox.  The children share a common baseline.
func HBox(children ...Box) Box {
	hbox := newHBox(children)
	hbox.Width = hbox.natural
	return hbox
}

// HBoxTo creates a new HBox with the given width.  Glue among the children
// is stretched to fill the width.
func HBoxTo(total float64, children ...Box) Box {
	hbox := newHBox(children)
	hbox.Width = total
	return hbox
}

func newHBox(children []Box) *hBox {
	hbox := &hBox{Contents: children}
	for _, box := range children {
		ext := box.Extent()
		hbox.natural += ext.Width
		if ext.WhiteSpaceOnly {
			continue
		}
		hbox.Height = max(hbox.Height, ext.Height)
		hbox.Depth = max(hbox.Depth, ext.Depth)
	}
	return hbox
}

// Draw implements the Box interface.
func (obj *hBox) Draw(g *visual.Group, xPos, yPos float64) {
	extra := distribute(obj.Contents, obj.natural, obj.Width)

	x := xPos
	for i, child := range obj.Contents {
		ext := child.Extent()
		child.Draw(g, x, yPos)
		x += ext.Width
		if extra != nil {
			x += extra[i]
		}
	}
}
