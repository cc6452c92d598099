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

// Package visual defines the visual tree which describes the appearance of
// one virtual page.
//
// Coordinates are in virtual units, with the origin in the top-left corner
// of the page and the y-axis pointing down.  Text positions refer to the
// baseline.
package visual

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cv/font/gofont"
)

// Tree is the visual representation of one virtual page.
type Tree struct {
	// Page is the 0-based index of the page in the document.
	Page int

	Width, Height float64

	// Background is painted over the whole page before any node.
	Background color.NRGBA

	Root *Group
}

// Node is an element of the visual tree.
// The concrete types are [*Group], [*Rect], [*Circle], [*Star],
// [*Polygon], [*Text] and [*Image].
type Node interface {
	// Bounds returns the area covered by the node.
	Bounds() rect.Rect
}

// Group collects nodes which are painted in order.
type Group struct {
	Name     string
	Children []Node
}

// Add appends nodes to the group.
func (g *Group) Add(nodes ...Node) {
	g.Children = append(g.Children, nodes...)
}

// Bounds implements the [Node] interface.
func (g *Group) Bounds() rect.Rect {
	var res rect.Rect
	first := true
	for _, child := range g.Children {
		b := child.Bounds()
		if first {
			res = b
			first = false
			continue
		}
		res.LLx = min(res.LLx, b.LLx)
		res.LLy = min(res.LLy, b.LLy)
		res.URx = max(res.URx, b.URx)
		res.URy = max(res.URy, b.URy)
	}
	return res
}

// Rect is a filled rectangle, optionally with rounded corners.
// If LineWidth is positive, the outline is drawn using Stroke.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Fill       color.NRGBA
	Stroke     color.NRGBA
	LineWidth  float64
}

// Bounds implements the [Node] interface.
func (r *Rect) Bounds() rect.Rect {
	return rect.Rect{LLx: r.X, LLy: r.Y, URx: r.X + r.W, URy: r.Y + r.H}
}

// Circle is a filled circle.
// If LineWidth is positive, a ring of this width is drawn inside the
// circle using Stroke.
type Circle struct {
	CX, CY, R float64
	Fill      color.NRGBA
	Stroke    color.NRGBA
	LineWidth float64
}

// Bounds implements the [Node] interface.
func (c *Circle) Bounds() rect.Rect {
	return rect.Rect{LLx: c.CX - c.R, LLy: c.CY - c.R, URx: c.CX + c.R, URy: c.CY + c.R}
}

// Star is a filled five-pointed star with outer radius R, pointing up.
type Star struct {
	CX, CY, R float64
	Fill      color.NRGBA
}

// Bounds implements the [Node] interface.
func (s *Star) Bounds() rect.Rect {
	return rect.Rect{LLx: s.CX - s.R, LLy: s.CY - s.R, URx: s.CX + s.R, URy: s.CY + s.R}
}

// Polygon is a closed, filled polygon.
type Polygon struct {
	Points []vec.Vec2
	Fill   color.NRGBA
}

// Bounds implements the [Node] interface.
func (p *Polygon) Bounds() rect.Rect {
	if len(p.Points) == 0 {
		return rect.Rect{}
	}
	res := rect.Rect{LLx: p.Points[0].X, LLy: p.Points[0].Y, URx: p.Points[0].X, URy: p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		res.LLx = min(res.LLx, pt.X)
		res.LLy = min(res.LLy, pt.Y)
		res.URx = max(res.URx, pt.X)
		res.URy = max(res.URy, pt.Y)
	}
	return res
}

// Text is a single line of text.
type Text struct {
	X, Y  float64 // start of the baseline
	Text  string
	Font  gofont.Font
	Size  float64
	Color color.NRGBA

	// Width is the advance width of the text, as measured during layout.
	Width float64
}

// Bounds implements the [Node] interface.
func (t *Text) Bounds() rect.Rect {
	face, err := t.Font.Face()
	if err != nil {
		return rect.Rect{LLx: t.X, LLy: t.Y - t.Size, URx: t.X + t.Width, URy: t.Y}
	}
	return rect.Rect{
		LLx: t.X,
		LLy: t.Y - face.Ascent(t.Size),
		URx: t.X + t.Width,
		URy: t.Y + face.Descent(t.Size),
	}
}

// Clip selects the shape an image is clipped to.
type Clip int

// These are the supported clip shapes.
const (
	ClipNone Clip = iota
	ClipCircle
)

// Image is a raster image, scaled to cover the box X, Y, W, H.
// The image keeps its aspect ratio; parts outside the box are cut off.
type Image struct {
	X, Y, W, H float64
	Src        image.Image
	Clip       Clip
}

// Bounds implements the [Node] interface.
func (im *Image) Bounds() rect.Rect {
	return rect.Rect{LLx: im.X, LLy: im.Y, URx: im.X + im.W, URy: im.Y + im.H}
}

// Walk calls fn for every node of the tree, in painting order.
// Groups are visited before their children.
func Walk(n Node, fn func(Node) error) error {
	if n == nil {
		return nil
	}
	if g, ok := n.(*Group); ok && g == nil {
		return nil
	}
	err := fn(n)
	if err != nil {
		return err
	}
	if g, ok := n.(*Group); ok {
		for _, child := range g.Children {
			err := Walk(child, fn)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
