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

// Package boxes implements a simple box-and-glue layout engine.
//
// A page is assembled from boxes of known size.  Text boxes, rules and
// graphics are combined into rows ([HBox]) and columns ([VBox]), and
// finally drawn into a [visual.Group].  Every box has a reference point on
// its baseline; Height is the extent above the baseline, Depth the extent
// below.  The y-axis points down, so a box drawn at (x, y) covers the
// vertical range from y-Height to y+Depth.
package boxes

import (
	"image/color"

	"seehuhn.de/go/cv/font/gofont"
	"seehuhn.de/go/cv/visual"
)

// Parameters contains the parameter values used by the layout engine.
type Parameters struct {
	// BaseLineSkip is the minimal distance between the baselines of
	// consecutive boxes in a VBox.
	BaseLineSkip float64
}

// Box represents marks on a page within a rectangular area of known size.
type Box interface {
	Extent() *BoxExtent
	Draw(g *visual.Group, xPos, yPos float64)
}

// BoxExtent gives the dimensions of a Box.
type BoxExtent struct {
	Width, Height, Depth float64
	WhiteSpaceOnly       bool
}

// Extent implements the Box interface.
func (obj BoxExtent) Extent() *BoxExtent {
	return &obj
}

// A RuleBox is a solidly filled rectangular region on the page.
type RuleBox struct {
	BoxExtent
	Color  color.NRGBA
	Radius float64
}

// Rule returns a new rule box, filled with the given colour.
func Rule(width, height, depth float64, col color.NRGBA) *RuleBox {
	return &RuleBox{
		BoxExtent: BoxExtent{
			Width:  width,
			Height: height,
			Depth:  depth,
		},
		Color: col,
	}
}

// Draw implements the Box interface.
func (obj *RuleBox) Draw(g *visual.Group, xPos, yPos float64) {
	if obj.Width > 0 && obj.Depth+obj.Height > 0 {
		g.Add(&visual.Rect{
			X:      xPos,
			Y:      yPos - obj.Height,
			W:      obj.Width,
			H:      obj.Height + obj.Depth,
			Radius: obj.Radius,
			Fill:   obj.Color,
		})
	}
}

// Kern represents a fixed amount of space.
type Kern float64

// Extent implements the Box interface.
func (obj Kern) Extent() *BoxExtent {
	return &BoxExtent{
		Width:          float64(obj),
		Height:         float64(obj),
		WhiteSpaceOnly: true,
	}
}

// Draw implements the Box interface.
func (obj Kern) Draw(g *visual.Group, xPos, yPos float64) {}

// TextBox represents a single line of text as a Box object.
type TextBox struct {
	BoxExtent
	Text  string
	Font  gofont.Font
	Size  float64
	Color color.NRGBA
}

// Text returns a new TextBox.  The height and depth of the box are the
// ascent and descent of the font, so that lines of text stack evenly.
func Text(F gofont.Font, size float64, col color.NRGBA, text string) *TextBox {
	face := F.MustFace()
	return &TextBox{
		BoxExtent: BoxExtent{
			Width:  face.Width(text, size),
			Height: face.Ascent(size),
			Depth:  face.Descent(size),
		},
		Text:  text,
		Font:  F,
		Size:  size,
		Color: col,
	}
}

// Draw implements the Box interface.
func (obj *TextBox) Draw(g *visual.Group, xPos, yPos float64) {
	if obj.Text == "" {
		return
	}
	g.Add(&visual.Text{
		X:     xPos,
		Y:     yPos,
		Text:  obj.Text,
		Font:  obj.Font,
		Size:  obj.Size,
		Color: obj.Color,
		Width: obj.Width,
	})
}

// GraphicBox is a box of fixed size whose contents are produced by a
// function.
type GraphicBox struct {
	BoxExtent
	draw func(g *visual.Group, xPos, yPos float64)
}

// Graphic returns a box of the given size.  When the box is drawn, fn is
// called with the position of the box's reference point.
func Graphic(width, height, depth float64, fn func(g *visual.Group, xPos, yPos float64)) *GraphicBox {
	return &GraphicBox{
		BoxExtent: BoxExtent{Width: width, Height: height, Depth: depth},
		draw:      fn,
	}
}

// Draw implements the Box interface.
func (obj *GraphicBox) Draw(g *visual.Group, xPos, yPos float64) {
	if obj.draw != nil {
		obj.draw(g, xPos, yPos)
	}
}

// Ship draws box into a new group with the given name.  The top-left
// corner of the box is placed at (x, y).
func Ship(name string, box Box, x, y float64) *visual.Group {
	g := &visual.Group{Name: name}
	box.Draw(g, x, y+box.Extent().Height)
	return g
}
