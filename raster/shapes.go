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

package raster

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/geom/matrix"
	geompath "seehuhn.de/go/geom/path"

	"seehuhn.de/go/cv/visual"
)

// kappa is the distance of the Bézier control points for a quarter
// circle of radius 1.
const kappa = 0.5522847498

func (r *renderer) moveTo(x, y float64) {
	px, py := r.m.Apply(x, y)
	r.ras.MoveTo(float32(px), float32(py))
}

func (r *renderer) lineTo(x, y float64) {
	px, py := r.m.Apply(x, y)
	r.ras.LineTo(float32(px), float32(py))
}

func (r *renderer) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	p1x, p1y := r.m.Apply(x1, y1)
	p2x, p2y := r.m.Apply(x2, y2)
	p3x, p3y := r.m.Apply(x3, y3)
	r.ras.CubeTo(float32(p1x), float32(p1y), float32(p2x), float32(p2y), float32(p3x), float32(p3y))
}

// roundedRect adds the outline of a rectangle with rounded corners to the
// current path.  If reverse is set, the outline is traversed in the
// opposite direction, which cuts the shape out of an enclosing one.
func (r *renderer) roundedRect(x, y, w, h, rad float64, reverse bool) {
	rad = min(max(rad, 0), w/2, h/2)
	k := rad * kappa

	if rad == 0 {
		if !reverse {
			r.moveTo(x, y)
			r.lineTo(x+w, y)
			r.lineTo(x+w, y+h)
			r.lineTo(x, y+h)
		} else {
			r.moveTo(x, y)
			r.lineTo(x, y+h)
			r.lineTo(x+w, y+h)
			r.lineTo(x+w, y)
		}
		r.ras.ClosePath()
		return
	}

	x1, y1 := x+w, y+h
	if !reverse {
		r.moveTo(x+rad, y)
		r.lineTo(x1-rad, y)
		r.cubeTo(x1-rad+k, y, x1, y+rad-k, x1, y+rad)
		r.lineTo(x1, y1-rad)
		r.cubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
		r.lineTo(x+rad, y1)
		r.cubeTo(x+rad-k, y1, x, y1-rad+k, x, y1-rad)
		r.lineTo(x, y+rad)
		r.cubeTo(x, y+rad-k, x+rad-k, y, x+rad, y)
	} else {
		r.moveTo(x+rad, y)
		r.cubeTo(x+rad-k, y, x, y+rad-k, x, y+rad)
		r.lineTo(x, y1-rad)
		r.cubeTo(x, y1-rad+k, x+rad-k, y1, x+rad, y1)
		r.lineTo(x1-rad, y1)
		r.cubeTo(x1-rad+k, y1, x1, y1-rad+k, x1, y1-rad)
		r.lineTo(x1, y+rad)
		r.cubeTo(x1, y+rad-k, x1-rad+k, y, x1-rad, y)
	}
	r.ras.ClosePath()
}

// circle adds a circle to the current path.
func (r *renderer) circle(cx, cy, rad float64, reverse bool) {
	k := rad * kappa
	if !reverse {
		r.moveTo(cx+rad, cy)
		r.cubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
		r.cubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
		r.cubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
		r.cubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	} else {
		r.moveTo(cx+rad, cy)
		r.cubeTo(cx+rad, cy-k, cx+k, cy-rad, cx, cy-rad)
		r.cubeTo(cx-k, cy-rad, cx-rad, cy-k, cx-rad, cy)
		r.cubeTo(cx-rad, cy+k, cx-k, cy+rad, cx, cy+rad)
		r.cubeTo(cx+k, cy+rad, cx+rad, cy+k, cx+rad, cy)
	}
	r.ras.ClosePath()
}

func (r *renderer) drawRect(n *visual.Rect) {
	if n.W <= 0 || n.H <= 0 {
		return
	}
	area := r.begin(n.Bounds(), 1)
	if area.Empty() {
		return
	}
	if n.Fill.A > 0 {
		r.roundedRect(n.X, n.Y, n.W, n.H, n.Radius, false)
		r.paint(area, n.Fill)
	}
	lw := n.LineWidth
	if lw > 0 && n.Stroke.A > 0 {
		r.ras.Reset(area.Dx(), area.Dy())
		r.roundedRect(n.X, n.Y, n.W, n.H, n.Radius, false)
		if 2*lw < n.W && 2*lw < n.H {
			r.roundedRect(n.X+lw, n.Y+lw, n.W-2*lw, n.H-2*lw, n.Radius-lw, true)
		}
		r.paint(area, n.Stroke)
	}
}

func (r *renderer) drawCircle(n *visual.Circle) {
	if n.R <= 0 {
		return
	}
	area := r.begin(n.Bounds(), 1)
	if area.Empty() {
		return
	}
	if n.Fill.A > 0 {
		r.circle(n.CX, n.CY, n.R, false)
		r.paint(area, n.Fill)
	}
	lw := n.LineWidth
	if lw > 0 && n.Stroke.A > 0 {
		r.ras.Reset(area.Dx(), area.Dy())
		r.circle(n.CX, n.CY, n.R, false)
		if lw < n.R {
			r.circle(n.CX, n.CY, n.R-lw, true)
		}
		r.paint(area, n.Stroke)
	}
}

// starInner is the ratio of inner to outer radius of a regular
// five-pointed star.
var starInner = math.Sin(math.Pi/10) / math.Sin(3*math.Pi/10)

func (r *renderer) drawStar(n *visual.Star) {
	if n.R <= 0 || n.Fill.A == 0 {
		return
	}
	area := r.begin(n.Bounds(), 1)
	if area.Empty() {
		return
	}
	for i := range 10 {
		phi := -math.Pi/2 + float64(i)*math.Pi/5
		rad := n.R
		if i%2 == 1 {
			rad *= starInner
		}
		x, y := n.CX+rad*math.Cos(phi), n.CY+rad*math.Sin(phi)
		if i == 0 {
			r.moveTo(x, y)
		} else {
			r.lineTo(x, y)
		}
	}
	r.ras.ClosePath()
	r.paint(area, n.Fill)
}

func (r *renderer) drawPolygon(n *visual.Polygon) {
	if len(n.Points) < 3 || n.Fill.A == 0 {
		return
	}
	area := r.begin(n.Bounds(), 1)
	if area.Empty() {
		return
	}
	for i, p := range n.Points {
		if i == 0 {
			r.moveTo(p.X, p.Y)
		} else {
			r.lineTo(p.X, p.Y)
		}
	}
	r.ras.ClosePath()
	r.paint(area, n.Fill)
}

func (r *renderer) drawText(n *visual.Text) error {
	if n.Text == "" || n.Color.A == 0 || n.Size <= 0 {
		return nil
	}
	face, err := n.Font.Face()
	if err != nil {
		return err
	}
	if face.Font.Outlines == nil {
		return nil
	}

	area := r.begin(n.Bounds(), n.Size/4)
	if area.Empty() {
		return nil
	}
	device := r.m

	q := face.Scale(n.Size)
	for _, g := range face.Layout(n.Text, n.Size) {
		// glyph space has the y-axis pointing up
		mGlyph := matrix.Matrix{q, 0, 0, -q, n.X + g.X, n.Y}.Mul(device)
		for cmd, pts := range face.Font.Outlines.Path(g.GID) {
			switch cmd {
			case geompath.CmdMoveTo:
				px, py := mGlyph.Apply(pts[0].X, pts[0].Y)
				r.ras.MoveTo(float32(px), float32(py))
			case geompath.CmdLineTo:
				px, py := mGlyph.Apply(pts[0].X, pts[0].Y)
				r.ras.LineTo(float32(px), float32(py))
			case geompath.CmdQuadTo:
				p1x, p1y := mGlyph.Apply(pts[0].X, pts[0].Y)
				p2x, p2y := mGlyph.Apply(pts[1].X, pts[1].Y)
				r.ras.QuadTo(float32(p1x), float32(p1y), float32(p2x), float32(p2y))
			case geompath.CmdCubeTo:
				p1x, p1y := mGlyph.Apply(pts[0].X, pts[0].Y)
				p2x, p2y := mGlyph.Apply(pts[1].X, pts[1].Y)
				p3x, p3y := mGlyph.Apply(pts[2].X, pts[2].Y)
				r.ras.CubeTo(float32(p1x), float32(p1y), float32(p2x), float32(p2y), float32(p3x), float32(p3y))
			case geompath.CmdClose:
				r.ras.ClosePath()
			}
		}
	}
	r.paint(area, n.Color)
	return nil
}

// drawImage scales the image to cover the node's box, keeping the aspect
// ratio.  Nothing is drawn outside the box.
func (r *renderer) drawImage(n *visual.Image) error {
	if n.Src == nil {
		return ErrNoImage
	}
	b := n.Src.Bounds()
	if b.Empty() {
		return ErrNoImage
	}
	if n.W <= 0 || n.H <= 0 {
		return nil
	}
	area := r.device(n.Bounds(), 0)
	if area.Empty() {
		return nil
	}

	iw, ih := float64(b.Dx()), float64(b.Dy())
	sc := max(n.W/iw, n.H/ih)
	offX := n.X + (n.W-iw*sc)/2
	offY := n.Y + (n.H-ih*sc)/2

	s := r.scale
	m := f64.Aff3{
		s * sc, 0, s * (offX - sc*float64(b.Min.X)),
		0, s * sc, s * (offY - sc*float64(b.Min.Y)),
	}

	var opts *xdraw.Options
	if n.Clip == visual.ClipCircle {
		mask := image.NewAlpha(area)
		r.begin(n.Bounds(), 0)
		r.circle(n.X+n.W/2, n.Y+n.H/2, min(n.W, n.H)/2, false)
		r.ras.Draw(mask, area, image.Opaque, image.Point{})
		opts = &xdraw.Options{DstMask: mask}
	}

	dst := r.img.SubImage(area).(*image.RGBA)
	xdraw.BiLinear.Transform(dst, m, n.Src, b, draw.Over, opts)
	return nil
}
